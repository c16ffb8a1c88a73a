package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/prefs"
	"github.com/aaronzipp/impostor/internal/words"
)

func baseView(phase models.Phase, lang string) game.View {
	return game.View{
		Phase: phase,
		Config: game.Config{Prefs: prefs.Prefs{
			Language:      lang,
			PlayerCount:   4,
			ImpostorCount: 1,
			TimerDuration: 180,
			SoundEnabled:  true,
		}},
		PlayerCount: 4,
	}
}

func testRound() *models.Round {
	return &models.Round{
		MajorityWord: "Messi",
		MinorityWord: "<Ronaldo>",
		Category:     "Futbolistas",
		Players: []models.Player{
			{ID: 1, Word: "Messi"},
			{ID: 2, IsImpostor: true, Word: "<Ronaldo>"},
			{ID: 3, Word: "Messi"},
		},
	}
}

func TestScreenPerPhase(t *testing.T) {
	tests := []struct {
		phase models.Phase
		want  string
	}{
		{models.PhaseSetup, `class="screen setup"`},
		{models.PhaseCategoryBrowser, `class="screen categories"`},
		{models.PhaseRoleReveal, `class="screen reveal"`},
		{models.PhaseDiscussion, `class="screen discussion"`},
		{models.PhaseResults, `class="screen results`},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			assert.Contains(t, Screen(baseView(tt.phase, "en"), ""), tt.want)
		})
	}
}

func TestSetupTranslatesAndShowsError(t *testing.T) {
	v := baseView(models.PhaseSetup, "es")
	v.Categories = []game.CategoryInfo{{Name: "A", Selected: true}, {Name: "B"}}

	out := Setup(v, ErrorMessage("es", game.ErrTooFewPlayers))
	assert.Contains(t, out, "Empezar partida")
	assert.Contains(t, out, "1 de 2 seleccionadas")
	assert.Contains(t, out, "Se necesitan al menos 3 jugadores.")
	assert.Contains(t, out, `<option value="es" selected>`)
	assert.NotContains(t, out, "Start game")
}

func TestSetupCustomWordsEscaped(t *testing.T) {
	v := baseView(models.PhaseSetup, "en")
	v.Config.UseCustomWords = true
	v.Config.CustomMajority = `"quoted"`
	v.Config.CustomMinority = "<b>"

	out := Setup(v, "")
	assert.Contains(t, out, `value="&#34;quoted&#34;"`)
	assert.Contains(t, out, `value="&lt;b&gt;"`)
	assert.NotContains(t, out, "<b>")
}

func TestCategoriesEditOnlyForCustom(t *testing.T) {
	v := baseView(models.PhaseCategoryBrowser, "en")
	v.Categories = []game.CategoryInfo{
		{Name: "Futbolistas", BuiltIn: true, Pairs: 10, Selected: true},
		{Name: "Mine & Yours", Pairs: 3, PairList: []models.Pair{{Majority: "Sol", Minority: "Luna"}}},
	}

	out := Categories(v, "")
	assert.Contains(t, out, "Mine &amp; Yours")
	assert.Contains(t, out, `value="Sol"`)
	assert.Contains(t, out, "10 pairs")
	assert.Equal(t, 1, strings.Count(out, `hx-post="/categories/delete"`))
	assert.Equal(t, 1, strings.Count(out, `hx-post="/categories/update"`))
	assert.Equal(t, 2, strings.Count(out, `hx-post="/categories/pairs"`))
	assert.Contains(t, out, `hx-post="/categories/search"`)
}

func TestCategoriesPreviewBuiltInPairs(t *testing.T) {
	v := baseView(models.PhaseCategoryBrowser, "en")
	v.Categories = []game.CategoryInfo{
		{Name: "Futbolistas", BuiltIn: true, Pairs: 1, PairList: []models.Pair{{Majority: "Messi", Minority: "<Maradona>"}}},
	}

	out := Categories(v, "")
	assert.Contains(t, out, `class="preview-pairs"`)
	assert.Contains(t, out, "<span>Messi</span>")
	assert.Contains(t, out, "&lt;Maradona&gt;")
}

func TestCategoryListFilters(t *testing.T) {
	v := baseView(models.PhaseCategoryBrowser, "en")
	v.Categories = []game.CategoryInfo{
		{Name: "Futbolistas", BuiltIn: true},
		{Name: "Países", BuiltIn: true},
		{Name: "Mis palabras"},
	}

	out := CategoryList(v, " PAÍ ")
	assert.Contains(t, out, `id="category-list"`)
	assert.Contains(t, out, "Países")
	assert.NotContains(t, out, "Futbolistas")

	assert.Len(t, FilterCategories(v.Categories, ""), 3)
	assert.Len(t, FilterCategories(v.Categories, "mis"), 1)
	assert.Empty(t, FilterCategories(v.Categories, "zzz"))
}

func TestRevealHidesWordUntilRevealed(t *testing.T) {
	v := baseView(models.PhaseRoleReveal, "en")
	v.CurrentPlayer = 2
	v.Cursor = models.RevealCursor{Index: 1, Step: models.StepReady}
	out := Reveal(v)
	assert.Contains(t, out, "Player 2 of 4")
	assert.Contains(t, out, "Tap to see your word")
	assert.NotContains(t, out, "secret-word")

	v.Cursor.Step = models.StepRevealed
	v.CurrentWord = "<Messi>"
	out = Reveal(v)
	assert.Contains(t, out, "&lt;Messi&gt;")

	v.Cursor.Step = models.StepPassing
	v.CurrentWord = ""
	out = Reveal(v)
	assert.Contains(t, out, "Pass the phone to player 3")

	v.IsLastPlayer = true
	out = Reveal(v)
	assert.Contains(t, out, "Start discussion")
}

func TestTimerControls(t *testing.T) {
	v := baseView(models.PhaseDiscussion, "en")

	v.Timer = game.TimerSnapshot{State: models.TimerSetup, Duration: 180, Remaining: 180}
	out := Timer(v)
	assert.Contains(t, out, "3:00")
	assert.Contains(t, out, `/timer/start`)
	assert.Contains(t, out, `/timer/skip`)

	v.Timer = game.TimerSnapshot{State: models.TimerRunning, Duration: 180, Remaining: 9}
	out = Timer(v)
	assert.Contains(t, out, "timer-urgent")
	assert.Contains(t, out, `/timer/pause`)

	v.Timer = game.TimerSnapshot{State: models.TimerPaused, Duration: 180, Remaining: 90}
	out = Timer(v)
	assert.Contains(t, out, `/timer/resume`)
	assert.NotContains(t, out, "timer-urgent")

	v.Timer = game.TimerSnapshot{State: models.TimerDone, Duration: 180}
	out = Timer(v)
	assert.Contains(t, out, "Time&#39;s up!")
	assert.Contains(t, out, `/game/finish`)

	assert.Contains(t, Discussion(v), `sse-swap="timer"`)
}

func TestResultsFollowStages(t *testing.T) {
	v := baseView(models.PhaseResults, "en")
	v.Round = testRound()

	out := Results(v, "")
	assert.NotContains(t, out, "Futbolistas")
	assert.NotContains(t, out, "is-impostor")
	assert.Contains(t, out, "button-stack pending")

	v.Stage = game.StageCategory
	out = Results(v, "")
	assert.Contains(t, out, "Futbolistas")
	assert.Contains(t, out, "&lt;Ronaldo&gt;")
	assert.NotContains(t, out, "is-impostor")

	v.Stage = game.StageComplete
	out = Results(v, "")
	assert.Contains(t, out, `<p class="results-impostors">Player 2</p>`)
	assert.Equal(t, 1, strings.Count(out, "is-impostor"))
	assert.Equal(t, 2, strings.Count(out, "is-innocent"))
	assert.NotContains(t, out, "pending")
}

func TestResultsShowsError(t *testing.T) {
	v := baseView(models.PhaseResults, "en")
	v.Round = testRound()
	v.Stage = game.StageComplete

	out := Screen(v, ErrorMessage("en", game.ErrCustomEmpty))
	assert.Contains(t, out, `class="error-message"`)
	assert.Contains(t, out, "Enter both custom words.")
	assert.NotContains(t, Results(v, ""), "error-message")
}

func TestResultsCustomCategory(t *testing.T) {
	v := baseView(models.PhaseResults, "es")
	v.Round = testRound()
	v.Round.Category = models.CustomCategory
	v.Stage = game.StageComplete
	assert.Contains(t, Results(v, ""), `<p class="results-category">Personalizada</p>`)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{game.ErrTooManyImpostors, "Too many impostors for the number of players."},
		{fmt.Errorf("generating round: %w", words.ErrNoContent), "No word pairs are available."},
		{words.ErrTooFewPairs, "Add at least 3 complete pairs."},
		{words.ErrNotCustom, "Built-in categories cannot be changed."},
		{errors.New("disk on fire"), "Something went wrong."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorMessage("en", tt.err))
	}
	assert.Equal(t, "Las dos palabras deben ser distintas.", ErrorMessage("es", game.ErrCustomSame))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0:00", FormatSeconds(0))
	assert.Equal(t, "0:00", FormatSeconds(-3))
	assert.Equal(t, "0:09", FormatSeconds(9))
	assert.Equal(t, "3:00", FormatSeconds(180))
	assert.Equal(t, "10:00", FormatSeconds(600))
}
