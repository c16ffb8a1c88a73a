package render

import (
	"fmt"
	htmlpkg "html"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/message"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
)

// Screen renders the fragment for the current phase. errMsg is shown inline
// on the setup, category and results screens.
func Screen(v game.View, errMsg string) string {
	switch v.Phase {
	case models.PhaseSetup:
		return Setup(v, errMsg)
	case models.PhaseCategoryBrowser:
		return Categories(v, errMsg)
	case models.PhaseRoleReveal:
		return Reveal(v)
	case models.PhaseDiscussion:
		return Discussion(v)
	case models.PhaseResults:
		return Results(v, errMsg)
	}
	return ""
}

// Setup renders the configuration screen
func Setup(v game.View, errMsg string) string {
	p := printer(v.Config.Language)
	cfg := v.Config
	var b strings.Builder

	b.WriteString(`<section class="screen setup">`)
	b.WriteString(`<header class="top-bar"><h1>`)
	b.WriteString(p.Sprintf("Impostor"))
	b.WriteString(`</h1><div class="toggles">`)
	toggle(&b, "/setup/dark", p.Sprintf("Dark mode"), cfg.DarkMode)
	toggle(&b, "/setup/sound", p.Sprintf("Sound"), cfg.SoundEnabled)
	b.WriteString(`<select name="lang" hx-post="/setup/language" hx-trigger="change" aria-label="`)
	b.WriteString(p.Sprintf("Language"))
	b.WriteString(`">`)
	for _, lang := range []struct{ code, label string }{{"en", "English"}, {"es", "Español"}} {
		b.WriteString(`<option value="` + lang.code + `"`)
		if cfg.Language == lang.code {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + lang.label + `</option>`)
	}
	b.WriteString(`</select></div></header>`)

	counter(&b, "/setup/players", p.Sprintf("Players"), cfg.PlayerCount)
	counter(&b, "/setup/impostors", p.Sprintf("Impostors"), cfg.ImpostorCount)

	selected := 0
	for _, c := range v.Categories {
		if c.Selected {
			selected++
		}
	}
	b.WriteString(`<div class="card categories-summary"><h2>`)
	b.WriteString(p.Sprintf("Categories"))
	b.WriteString(`</h2><p class="text-muted">`)
	b.WriteString(htmlpkg.EscapeString(p.Sprintf("%d of %d selected", selected, len(v.Categories))))
	b.WriteString(`</p><button class="btn btn-secondary" hx-post="/categories/open">`)
	b.WriteString(p.Sprintf("Categories"))
	b.WriteString(`</button></div>`)

	b.WriteString(`<form class="card custom-words" hx-post="/setup/custom" hx-trigger="change">`)
	b.WriteString(`<label><input type="checkbox" name="use" value="1"`)
	if cfg.UseCustomWords {
		b.WriteString(` checked`)
	}
	b.WriteString(`> `)
	b.WriteString(p.Sprintf("Custom words"))
	b.WriteString(`</label>`)
	if cfg.UseCustomWords {
		textInput(&b, "majority", p.Sprintf("Majority word"), cfg.CustomMajority)
		textInput(&b, "minority", p.Sprintf("Impostor word"), cfg.CustomMinority)
	}
	b.WriteString(`</form>`)

	errorBox(&b, errMsg)

	b.WriteString(`<div class="button-stack"><button class="btn btn-primary" hx-post="/game/start">`)
	b.WriteString(p.Sprintf("Start game"))
	b.WriteString(`</button><button class="btn btn-link" hx-post="/setup/reset">`)
	b.WriteString(p.Sprintf("Reset settings"))
	b.WriteString(`</button></div>`)

	b.WriteString(`<figure class="qr"><img src="/qr.png" alt="QR" width="128" height="128"><figcaption class="text-muted">`)
	b.WriteString(p.Sprintf("Scan to open on another device"))
	b.WriteString(`</figcaption></figure></section>`)
	return b.String()
}

// Categories renders the category browser with the create, edit and delete forms
func Categories(v game.View, errMsg string) string {
	p := printer(v.Config.Language)
	var b strings.Builder

	b.WriteString(`<section class="screen categories"><header class="top-bar"><button class="btn btn-link" hx-post="/categories/close">`)
	b.WriteString(p.Sprintf("Back"))
	b.WriteString(`</button><h1>`)
	b.WriteString(p.Sprintf("Categories"))
	b.WriteString(`</h1></header><div class="button-row">`)
	b.WriteString(`<button class="btn btn-secondary" hx-post="/categories/select" hx-vals='{"which":"all"}'>`)
	b.WriteString(p.Sprintf("Select all"))
	b.WriteString(`</button><button class="btn btn-secondary" hx-post="/categories/select" hx-vals='{"which":"none"}'>`)
	b.WriteString(p.Sprintf("Select none"))
	b.WriteString(`</button></div>`)

	errorBox(&b, errMsg)

	b.WriteString(`<input type="search" class="category-search" name="q" placeholder="`)
	b.WriteString(htmlpkg.EscapeString(p.Sprintf("Search")))
	b.WriteString(`" hx-post="/categories/search" hx-trigger="input changed delay:200ms, search" hx-target="#category-list" hx-swap="outerHTML">`)
	categoryList(&b, p, v.Categories)

	b.WriteString(`<form class="card new-category" hx-post="/categories/create"><h2>`)
	b.WriteString(p.Sprintf("New category"))
	b.WriteString(`</h2>`)
	textInput(&b, "name", p.Sprintf("Name"), "")
	pairInputs(&b, p, 3)
	submit(&b, p.Sprintf("Create"))
	b.WriteString(`</form></section>`)
	return b.String()
}

// CategoryList renders the category list filtered by a search query, for
// swapping in while the user types.
func CategoryList(v game.View, query string) string {
	p := printer(v.Config.Language)
	var b strings.Builder
	categoryList(&b, p, FilterCategories(v.Categories, query))
	return b.String()
}

// FilterCategories keeps the categories whose name contains query, ignoring case
func FilterCategories(cats []game.CategoryInfo, query string) []game.CategoryInfo {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return cats
	}
	var out []game.CategoryInfo
	for _, c := range cats {
		if strings.Contains(fold.String(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

func categoryList(b *strings.Builder, p *message.Printer, cats []game.CategoryInfo) {
	b.WriteString(`<ul class="category-list" id="category-list">`)
	for _, c := range cats {
		name := htmlpkg.EscapeString(c.Name)
		b.WriteString(`<li class="category-item"><form hx-post="/categories/toggle" hx-trigger="change">`)
		hidden(b, "name", c.Name)
		b.WriteString(`<label><input type="checkbox"`)
		if c.Selected {
			b.WriteString(` checked`)
		}
		b.WriteString(`> <span class="category-name">`)
		b.WriteString(name)
		b.WriteString(`</span></label></form> <span class="badge-pill">`)
		if c.BuiltIn {
			b.WriteString(p.Sprintf("Built-in"))
		} else {
			b.WriteString(p.Sprintf("Custom"))
		}
		b.WriteString(`</span> <span class="text-muted">`)
		b.WriteString(p.Sprintf("%d pairs", c.Pairs))
		b.WriteString(`</span>`)

		if c.BuiltIn {
			b.WriteString(`<details class="preview"><summary>`)
			b.WriteString(p.Sprintf("Preview"))
			b.WriteString(`</summary><ul class="preview-pairs">`)
			for _, pair := range c.PairList {
				b.WriteString(`<li class="preview-pair"><span>`)
				b.WriteString(htmlpkg.EscapeString(pair.Majority))
				b.WriteString(`</span> <span class="preview-vs">vs</span> <span>`)
				b.WriteString(htmlpkg.EscapeString(pair.Minority))
				b.WriteString(`</span></li>`)
			}
			b.WriteString(`</ul></details>`)
		}

		b.WriteString(`<details><summary>`)
		b.WriteString(p.Sprintf("Add pairs"))
		b.WriteString(`</summary><form hx-post="/categories/pairs">`)
		hidden(b, "name", c.Name)
		pairInputs(b, p, 1)
		submit(b, p.Sprintf("Add pairs"))
		b.WriteString(`</form></details>`)

		if !c.BuiltIn {
			b.WriteString(`<details><summary>`)
			b.WriteString(p.Sprintf("Edit"))
			b.WriteString(`</summary><form hx-post="/categories/update">`)
			hidden(b, "name", c.Name)
			for _, pair := range c.PairList {
				pairRow(b, p, pair)
			}
			pairRow(b, p, models.Pair{})
			submit(b, p.Sprintf("Save"))
			b.WriteString(`</form><form hx-post="/categories/delete">`)
			hidden(b, "name", c.Name)
			b.WriteString(`<button type="submit" class="btn btn-danger">`)
			b.WriteString(p.Sprintf("Delete"))
			b.WriteString(`</button></form></details>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

// Reveal renders the pass-and-play reveal step for the current player
func Reveal(v game.View) string {
	p := printer(v.Config.Language)
	var b strings.Builder

	b.WriteString(`<section class="screen reveal"><div class="reveal-progress-bar"><div class="reveal-progress-fill" style="width: `)
	b.WriteString(strconv.Itoa(v.Progress))
	b.WriteString(`%"></div></div><p class="reveal-counter">`)
	b.WriteString(p.Sprintf("Player %d of %d", v.CurrentPlayer, v.PlayerCount))
	b.WriteString(`</p>`)

	switch v.Cursor.Step {
	case models.StepReady:
		b.WriteString(`<h2>`)
		b.WriteString(p.Sprintf("Player %d", v.CurrentPlayer))
		b.WriteString(`</h2><button class="btn btn-primary btn-large" hx-post="/game/reveal">`)
		b.WriteString(p.Sprintf("Tap to see your word"))
		b.WriteString(`</button>`)
	case models.StepRevealed:
		b.WriteString(`<div class="card word-card"><p class="text-muted">`)
		b.WriteString(p.Sprintf("Your word"))
		b.WriteString(`</p><p class="secret-word">`)
		b.WriteString(htmlpkg.EscapeString(v.CurrentWord))
		b.WriteString(`</p></div><button class="btn btn-primary" hx-post="/game/hide">`)
		b.WriteString(p.Sprintf("Hide"))
		b.WriteString(`</button>`)
	case models.StepPassing:
		if v.IsLastPlayer {
			b.WriteString(`<button class="btn btn-primary" hx-post="/game/next">`)
			b.WriteString(p.Sprintf("Start discussion"))
			b.WriteString(`</button>`)
		} else {
			b.WriteString(`<h2>`)
			b.WriteString(p.Sprintf("Pass the phone to player %d", v.CurrentPlayer+1))
			b.WriteString(`</h2><button class="btn btn-primary" hx-post="/game/next">`)
			b.WriteString(p.Sprintf("Next player"))
			b.WriteString(`</button>`)
		}
	}
	b.WriteString(`</section>`)
	return b.String()
}

// Discussion renders the discussion screen around the timer
func Discussion(v game.View) string {
	p := printer(v.Config.Language)
	var b strings.Builder
	b.WriteString(`<section class="screen discussion"><h1>`)
	b.WriteString(p.Sprintf("Discussion"))
	b.WriteString(`</h1><div id="timer" sse-swap="timer">`)
	b.WriteString(Timer(v))
	b.WriteString(`</div><button class="btn btn-secondary" hx-post="/game/challenge-done">`)
	b.WriteString(p.Sprintf("Challenge done"))
	b.WriteString(`</button></section>`)
	return b.String()
}

// Timer renders the countdown and the controls valid in its state
func Timer(v game.View) string {
	p := printer(v.Config.Language)
	t := v.Timer
	var b strings.Builder

	b.WriteString(`<div class="timer timer-`)
	b.WriteString(t.State.String())
	if t.State == models.TimerRunning && t.Remaining <= game.CueWindowSeconds {
		b.WriteString(` timer-urgent`)
	}
	b.WriteString(`"><span class="timer-display">`)
	b.WriteString(FormatSeconds(t.Remaining))
	b.WriteString(`</span></div><div class="button-row">`)

	switch t.State {
	case models.TimerSetup:
		b.WriteString(`<button class="btn btn-secondary" hx-post="/timer/adjust" hx-vals='{"delta":"-30"}'>-30s</button>`)
		b.WriteString(`<button class="btn btn-secondary" hx-post="/timer/adjust" hx-vals='{"delta":"30"}'>+30s</button>`)
		timerButton(&b, "start", p.Sprintf("Start timer"), "btn-primary")
		timerButton(&b, "skip", p.Sprintf("Skip timer"), "btn-link")
	case models.TimerRunning:
		timerButton(&b, "pause", p.Sprintf("Pause"), "btn-secondary")
		timerButton(&b, "stop", p.Sprintf("Stop"), "btn-secondary")
	case models.TimerPaused:
		timerButton(&b, "resume", p.Sprintf("Resume"), "btn-primary")
		timerButton(&b, "stop", p.Sprintf("Stop"), "btn-secondary")
	case models.TimerDone:
		if t.Remaining == 0 {
			b.WriteString(`<p class="timer-over">`)
			b.WriteString(htmlpkg.EscapeString(p.Sprintf("Time's up!")))
			b.WriteString(`</p>`)
		}
		b.WriteString(`<button class="btn btn-primary" hx-post="/game/finish">`)
		b.WriteString(p.Sprintf("Show results"))
		b.WriteString(`</button>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Results renders the round as far as the reveal stages have progressed
func Results(v game.View, errMsg string) string {
	p := printer(v.Config.Language)
	r := v.Round
	var b strings.Builder
	b.WriteString(`<section class="screen results stage-`)
	if v.Stage == "" {
		b.WriteString("start")
	} else {
		b.WriteString(v.Stage)
	}
	b.WriteString(`"><h1>`)
	b.WriteString(p.Sprintf("Results"))
	b.WriteString(`</h1>`)
	errorBox(&b, errMsg)

	if r != nil && stageReached(v.Stage, game.StageCategory) {
		b.WriteString(`<div class="card"><p class="text-muted">`)
		b.WriteString(p.Sprintf("The category was"))
		b.WriteString(`</p><p class="results-category">`)
		if r.IsCustom() {
			b.WriteString(p.Sprintf("Custom"))
		} else {
			b.WriteString(htmlpkg.EscapeString(r.Category))
		}
		b.WriteString(`</p><p>`)
		b.WriteString(p.Sprintf("Majority"))
		b.WriteString(`: <strong>`)
		b.WriteString(htmlpkg.EscapeString(r.MajorityWord))
		b.WriteString(`</strong> · `)
		b.WriteString(p.Sprintf("Impostor"))
		b.WriteString(`: <strong>`)
		b.WriteString(htmlpkg.EscapeString(r.MinorityWord))
		b.WriteString(`</strong></p></div>`)
	}

	if r != nil && stageReached(v.Stage, game.StageImpostors) {
		b.WriteString(`<h2>`)
		b.WriteString(p.Sprintf("The impostors were"))
		b.WriteString(`</h2><p class="results-impostors">`)
		for i, pl := range r.Impostors() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Sprintf("Player %d", pl.ID))
		}
		b.WriteString(`</p><div class="results-players-grid">`)
		for _, pl := range r.Players {
			class := "is-innocent"
			if pl.IsImpostor {
				class = "is-impostor"
			}
			b.WriteString(`<div class="results-player-card ` + class + `"><span class="results-player-name">`)
			b.WriteString(p.Sprintf("Player %d", pl.ID))
			b.WriteString(`</span><span class="results-player-word">`)
			b.WriteString(htmlpkg.EscapeString(pl.Word))
			b.WriteString(`</span></div>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div class="button-stack`)
	if !stageReached(v.Stage, game.StageComplete) {
		b.WriteString(` pending`)
	}
	b.WriteString(`"><button class="btn btn-primary" hx-post="/game/play-again">`)
	b.WriteString(p.Sprintf("Play again"))
	b.WriteString(`</button><button class="btn btn-secondary" hx-post="/game/new">`)
	b.WriteString(p.Sprintf("New game"))
	b.WriteString(`</button></div></section>`)
	return b.String()
}

// FormatSeconds renders a duration as m:ss
func FormatSeconds(s int) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func stageReached(current, want string) bool {
	ci, wi := -1, -1
	for i, st := range game.ResultStages {
		if st.Name == current {
			ci = i
		}
		if st.Name == want {
			wi = i
		}
	}
	return ci >= 0 && ci >= wi
}

func toggle(b *strings.Builder, path, label string, on bool) {
	b.WriteString(`<button class="icon-btn`)
	if on {
		b.WriteString(` active`)
	}
	b.WriteString(`" hx-post="` + path + `" aria-pressed="` + strconv.FormatBool(on) + `">`)
	b.WriteString(htmlpkg.EscapeString(label))
	b.WriteString(`</button>`)
}

func counter(b *strings.Builder, path, label string, value int) {
	b.WriteString(`<div class="card counter"><span class="counter-label">`)
	b.WriteString(htmlpkg.EscapeString(label))
	b.WriteString(`</span><button class="counter-btn" hx-post="` + path + `" hx-vals='{"delta":"-1"}'>−</button><span class="counter-value">`)
	b.WriteString(strconv.Itoa(value))
	b.WriteString(`</span><button class="counter-btn" hx-post="` + path + `" hx-vals='{"delta":"1"}'>+</button></div>`)
}

func timerButton(b *strings.Builder, action, label, class string) {
	b.WriteString(`<button class="btn ` + class + `" hx-post="/timer/` + action + `">`)
	b.WriteString(htmlpkg.EscapeString(label))
	b.WriteString(`</button>`)
}

func textInput(b *strings.Builder, name, placeholder, value string) {
	b.WriteString(`<input type="text" name="` + name + `" placeholder="`)
	b.WriteString(htmlpkg.EscapeString(placeholder))
	b.WriteString(`" value="`)
	b.WriteString(htmlpkg.EscapeString(value))
	b.WriteString(`">`)
}

func hidden(b *strings.Builder, name, value string) {
	b.WriteString(`<input type="hidden" name="` + name + `" value="`)
	b.WriteString(htmlpkg.EscapeString(value))
	b.WriteString(`">`)
}

func submit(b *strings.Builder, label string) {
	b.WriteString(`<button type="submit" class="btn btn-primary">`)
	b.WriteString(htmlpkg.EscapeString(label))
	b.WriteString(`</button>`)
}

func pairInputs(b *strings.Builder, p *message.Printer, n int) {
	for i := 0; i < n; i++ {
		pairRow(b, p, models.Pair{})
	}
}

func pairRow(b *strings.Builder, p *message.Printer, pair models.Pair) {
	b.WriteString(`<div class="pair-row">`)
	textInput(b, "majority", p.Sprintf("Majority word"), pair.Majority)
	textInput(b, "minority", p.Sprintf("Impostor word"), pair.Minority)
	b.WriteString(`</div>`)
}

func errorBox(b *strings.Builder, msg string) {
	if msg == "" {
		return
	}
	b.WriteString(`<p class="error-message" role="alert">`)
	b.WriteString(htmlpkg.EscapeString(msg))
	b.WriteString(`</p>`)
}
