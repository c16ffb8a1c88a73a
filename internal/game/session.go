package game

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/aaronzipp/impostor/internal/clock"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/prefs"
	"github.com/aaronzipp/impostor/internal/random"
	"github.com/aaronzipp/impostor/internal/words"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// WordSource is the content library the session draws from and edits
type WordSource interface {
	words.Content
	IsBuiltIn(name string) bool
	Pick(src random.Source, selected []string) (models.Pick, error)
	CreateCategory(name string, pairs []models.Pair) (string, error)
	UpdateCategory(name string, pairs []models.Pair) error
	DeleteCategory(name string) error
	AddPairs(name string, pairs []models.Pair) (int, error)
}

// Option configures a Session
type Option func(*Session)

func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

func WithRandom(src random.Source) Option {
	return func(s *Session) { s.rand = src }
}

// WithNotifier sets the function receiving session events. It is called
// without the session lock held and may read the session.
func WithNotifier(f func(Event)) Option {
	return func(s *Session) { s.notify = f }
}

// Session is the game state machine for one device. All methods are safe for
// concurrent use; user actions and scheduled callbacks apply one at a time.
type Session struct {
	mu     sync.Mutex
	clock  clock.Clock
	rand   random.Source
	words  WordSource
	store  *prefs.Store
	notify func(Event)

	cfg     Config
	phase   models.Phase
	round   *models.Round
	cursor  models.RevealCursor
	timer   *DiscussionTimer
	results *Sequence
	queued  []Event
}

// NewSession loads the stored preferences and starts in Setup
func NewSession(ws WordSource, store *prefs.Store, opts ...Option) *Session {
	s := &Session{
		clock:  clock.Real(),
		rand:   random.NewSecure(),
		words:  ws,
		store:  store,
		notify: func(Event) {},
		phase:  models.PhaseSetup,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cfg.Prefs = store.Load(ws.Categories())
	s.timer = NewDiscussionTimer(s.clock, s.cfg.TimerDuration, s.onTimer)
	s.results = NewSequence(s.clock, ResultStages, s.onStage)
	return s
}

// unlock releases s.mu and then delivers the events queued while it was held
func (s *Session) unlock() {
	events := s.queued
	s.queued = nil
	s.mu.Unlock()
	for _, ev := range events {
		s.notify(ev)
	}
}

// must be called with s.mu held
func (s *Session) emit(ev Event) {
	if !s.cfg.SoundEnabled {
		ev.Cue = ""
	}
	ev.Phase = s.phase
	s.queued = append(s.queued, ev)
}

func (s *Session) changed(cue Cue) {
	s.emit(Event{Type: EventState, Cue: cue})
}

// setPhase moves to another phase, cancelling the callbacks of the phase
// being left and preparing the one being entered. must be called with s.mu held
func (s *Session) setPhase(to models.Phase) bool {
	if !CanTransition(s.phase, to) {
		return false
	}
	switch s.phase {
	case models.PhaseDiscussion:
		s.timer.Cancel()
	case models.PhaseResults:
		s.results.Cancel()
	}

	s.phase = to
	switch to {
	case models.PhaseSetup, models.PhaseCategoryBrowser:
		s.round = nil
		s.cursor = models.RevealCursor{}
	case models.PhaseRoleReveal:
		s.cursor = models.RevealCursor{Index: 0, Step: models.StepReady}
	case models.PhaseDiscussion:
		s.timer.Reset(s.cfg.TimerDuration)
	case models.PhaseResults:
		s.results.Start()
	}
	if debug {
		log.Printf("DEBUG: session phase -> %s", to)
	}
	return true
}

func (s *Session) onTimer(ev TimerEvent) {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseDiscussion {
		return
	}
	s.emit(Event{Type: EventTimer, Timer: ev.TimerSnapshot, Cue: ev.Cue})
}

func (s *Session) onStage(st Stage) {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseResults {
		return
	}
	s.emit(Event{Type: EventStage, Stage: st.Name, Cue: st.Cue})
}

// Close stops every scheduled callback
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Cancel()
	s.results.Cancel()
}

// +++ read side +++

// CategoryInfo describes one category for the setup and browser screens
type CategoryInfo struct {
	Name     string
	BuiltIn  bool
	Pairs    int
	PairList []models.Pair
	Selected bool
}

// View is a safe snapshot for presentation. The words of the round are only
// present for the current player while their word is revealed, and in Results.
type View struct {
	Phase         models.Phase
	Config        Config
	Categories    []CategoryInfo
	PlayerCount   int
	Cursor        models.RevealCursor
	CurrentPlayer int
	CurrentWord   string
	IsLastPlayer  bool
	Progress      int
	Timer         TimerSnapshot
	Stage         string
	Round         *models.Round
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Phase:      s.phase,
		Config:     s.config(),
		Categories: s.categoryInfo(),
		Timer:      s.timer.Snapshot(),
	}
	if s.phase.HasRound() && s.round != nil {
		n := len(s.round.Players)
		v.PlayerCount = n
		v.Cursor = s.cursor
		v.CurrentPlayer = s.cursor.Index + 1
		v.IsLastPlayer = s.cursor.Index == n-1
		v.Progress = RevealProgress(s.cursor, n)
	}
	if s.phase == models.PhaseRoleReveal && s.cursor.Step == models.StepRevealed {
		v.CurrentWord = s.round.Players[s.cursor.Index].Word
	}
	if s.phase == models.PhaseResults {
		v.Round = s.round.Clone()
		v.Stage = s.results.Current()
	}
	return v
}

func (s *Session) Phase() models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config()
}

func (s *Session) config() Config {
	c := s.cfg
	c.SelectedCategories = slices.Clone(s.cfg.SelectedCategories)
	return c
}

func (s *Session) categoryInfo() []CategoryInfo {
	names := s.words.Categories()
	out := make([]CategoryInfo, 0, len(names))
	for _, name := range names {
		pairs := s.words.Pairs(name)
		out = append(out, CategoryInfo{
			Name:     name,
			BuiltIn:  s.words.IsBuiltIn(name),
			Pairs:    len(pairs),
			PairList: pairs,
			Selected: slices.Contains(s.cfg.SelectedCategories, name),
		})
	}
	return out
}

// +++ configuration +++

// must be called with s.mu held
func (s *Session) savePrefs() {
	s.store.Save(s.cfg.Prefs)
	s.changed("")
}

func (s *Session) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.Language = prefs.NormalizeLanguage(lang)
	s.savePrefs()
}

// SetPlayerCount clamps n into range and lowers the impostor count if needed
func (s *Session) SetPlayerCount(n int) {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.PlayerCount = prefs.ClampPlayers(n)
	s.cfg.ImpostorCount = prefs.ClampImpostors(s.cfg.ImpostorCount, s.cfg.PlayerCount)
	s.savePrefs()
}

func (s *Session) SetImpostorCount(n int) {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.ImpostorCount = prefs.ClampImpostors(n, s.cfg.PlayerCount)
	s.savePrefs()
}

// SetSelectedCategories replaces the selection. Unknown names are dropped; an
// empty selection means any category.
func (s *Session) SetSelectedCategories(names []string) {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.SelectedCategories = prefs.FilterKnown(names, s.words.Categories())
	s.savePrefs()
}

// ToggleCategory adds or removes one known category from the selection
func (s *Session) ToggleCategory(name string) bool {
	s.mu.Lock()
	defer s.unlock()
	if !slices.Contains(s.words.Categories(), name) {
		return false
	}
	if i := slices.Index(s.cfg.SelectedCategories, name); i >= 0 {
		s.cfg.SelectedCategories = slices.Delete(slices.Clone(s.cfg.SelectedCategories), i, i+1)
	} else {
		s.cfg.SelectedCategories = append(slices.Clone(s.cfg.SelectedCategories), name)
	}
	s.savePrefs()
	return true
}

func (s *Session) SetUseCustomWords(on bool) {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.UseCustomWords = on
	s.changed("")
}

func (s *Session) SetCustomWords(majority, minority string) {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.CustomMajority = majority
	s.cfg.CustomMinority = minority
	s.changed("")
}

// SetTimerDuration sets the discussion length. An idle timer picks it up at once.
func (s *Session) SetTimerDuration(seconds int) {
	s.mu.Lock()
	defer s.unlock()
	s.setTimerDuration(seconds)
}

// AdjustTimerDuration moves the discussion length by delta seconds
func (s *Session) AdjustTimerDuration(delta int) {
	s.mu.Lock()
	defer s.unlock()
	s.setTimerDuration(s.cfg.TimerDuration + delta)
}

func (s *Session) setTimerDuration(seconds int) {
	s.cfg.TimerDuration = prefs.ClampTimer(seconds)
	if s.phase == models.PhaseDiscussion {
		s.timer.SetDuration(s.cfg.TimerDuration)
	}
	s.store.Save(s.cfg.Prefs)
	s.changed(CueTap)
}

func (s *Session) ToggleDarkMode() {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.DarkMode = !s.cfg.DarkMode
	s.savePrefs()
}

func (s *Session) ToggleSound() {
	s.mu.Lock()
	defer s.unlock()
	s.cfg.SoundEnabled = !s.cfg.SoundEnabled
	s.savePrefs()
}

// ResetDefaults clears the stored preferences and the custom words
func (s *Session) ResetDefaults() {
	s.mu.Lock()
	defer s.unlock()
	s.cfg = Config{Prefs: s.store.Reset(s.words.Categories())}
	if s.phase == models.PhaseDiscussion {
		s.timer.SetDuration(s.cfg.TimerDuration)
	}
	s.changed("")
}

// +++ categories +++

func (s *Session) OpenCategories() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseSetup || !s.setPhase(models.PhaseCategoryBrowser) {
		return false
	}
	s.changed(CueTap)
	return true
}

func (s *Session) CloseCategories() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseCategoryBrowser || !s.setPhase(models.PhaseSetup) {
		return false
	}
	s.changed(CueTap)
	return true
}

// CreateCategory adds a custom category and selects it
func (s *Session) CreateCategory(name string, pairs []models.Pair) (string, error) {
	s.mu.Lock()
	defer s.unlock()
	created, err := s.words.CreateCategory(name, pairs)
	if err != nil {
		return "", err
	}
	if !slices.Contains(s.cfg.SelectedCategories, created) {
		s.cfg.SelectedCategories = append(slices.Clone(s.cfg.SelectedCategories), created)
	}
	s.store.Save(s.cfg.Prefs)
	s.changed(CueTap)
	return created, nil
}

func (s *Session) UpdateCategory(name string, pairs []models.Pair) error {
	s.mu.Lock()
	defer s.unlock()
	if err := s.words.UpdateCategory(name, pairs); err != nil {
		return err
	}
	s.changed(CueTap)
	return nil
}

// DeleteCategory removes a custom category and drops it from the selection
func (s *Session) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.unlock()
	if err := s.words.DeleteCategory(name); err != nil {
		return err
	}
	s.cfg.SelectedCategories = slices.DeleteFunc(slices.Clone(s.cfg.SelectedCategories), func(n string) bool {
		return n == name
	})
	s.store.Save(s.cfg.Prefs)
	s.changed(CueTap)
	return nil
}

func (s *Session) AddPairs(name string, pairs []models.Pair) (int, error) {
	s.mu.Lock()
	defer s.unlock()
	n, err := s.words.AddPairs(name, pairs)
	if err != nil {
		return 0, err
	}
	s.changed(CueTap)
	return n, nil
}

// +++ round lifecycle +++

// generate builds a new round from the current configuration. must be called with s.mu held
func (s *Session) generate() error {
	cfg := s.cfg
	if err := Validate(cfg); err != nil {
		return err
	}

	var majority, minority, category string
	if cfg.UseCustomWords {
		majority = strings.TrimSpace(cfg.CustomMajority)
		minority = strings.TrimSpace(cfg.CustomMinority)
		category = models.CustomCategory
	} else {
		pick, err := s.words.Pick(s.rand, cfg.SelectedCategories)
		if err != nil {
			return fmt.Errorf("generating round: %w", err)
		}
		majority, minority, category = pick.Pair.Majority, pick.Pair.Minority, pick.Category
	}

	seats := Assign(s.rand, cfg.PlayerCount, cfg.ImpostorCount)
	s.round = &models.Round{
		ID:           uuid.New(),
		MajorityWord: majority,
		MinorityWord: minority,
		Category:     category,
		Players:      BuildPlayers(cfg.PlayerCount, seats, majority, minority),
		CreatedAt:    s.clock.Now(),
	}
	log.Printf("Round %s: %d players, %d impostors, category %q", s.round.ID, cfg.PlayerCount, cfg.ImpostorCount, category)
	return nil
}

// StartGame generates a round and begins the reveal. A validation error
// leaves the session in Setup. Calling it outside Setup does nothing.
func (s *Session) StartGame() error {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseSetup {
		return nil
	}
	if err := s.generate(); err != nil {
		return err
	}
	s.setPhase(models.PhaseRoleReveal)
	s.changed(CueTap)
	return nil
}

// PlayAgain starts a fresh round from Results with the same configuration
func (s *Session) PlayAgain() error {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseResults {
		return nil
	}
	if err := s.generate(); err != nil {
		return err
	}
	s.setPhase(models.PhaseRoleReveal)
	s.changed(CueTap)
	return nil
}

// NewGame returns to Setup. Counts, categories and display settings are
// kept; custom word mode and the custom words are cleared.
func (s *Session) NewGame() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseResults || !s.setPhase(models.PhaseSetup) {
		return false
	}
	s.cfg.UseCustomWords = false
	s.cfg.CustomMajority = ""
	s.cfg.CustomMinority = ""
	s.changed(CueTap)
	return true
}

// +++ reveal +++

// Reveal shows the current player's word
func (s *Session) Reveal() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseRoleReveal || s.cursor.Step != models.StepReady {
		return false
	}
	s.cursor.Step = models.StepRevealed
	s.changed(CueReveal)
	return true
}

// Hide covers the word again before the device is passed on
func (s *Session) Hide() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseRoleReveal || s.cursor.Step != models.StepRevealed {
		return false
	}
	s.cursor.Step = models.StepPassing
	s.changed(CueTap)
	return true
}

// Advance hands over to the next player, or starts the discussion after the last one
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseRoleReveal || s.cursor.Step != models.StepPassing {
		return false
	}
	next, done := advanceCursor(s.cursor, len(s.round.Players))
	s.cursor = next
	if done {
		s.setPhase(models.PhaseDiscussion)
	}
	s.changed(CueTap)
	return true
}

// +++ discussion +++

func (s *Session) timerOp(op func() bool, cue Cue) bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseDiscussion || !op() {
		return false
	}
	s.changed(cue)
	return true
}

func (s *Session) StartTimer() bool {
	return s.timerOp(s.timer.Start, CueTap)
}

func (s *Session) PauseTimer() bool {
	return s.timerOp(s.timer.Pause, CuePause)
}

func (s *Session) ResumeTimer() bool {
	return s.timerOp(s.timer.Resume, CueTap)
}

func (s *Session) StopTimer() bool {
	return s.timerOp(s.timer.Stop, CueTap)
}

func (s *Session) SkipTimer() bool {
	return s.timerOp(s.timer.Skip, CueTap)
}

// Finish ends the discussion and shows the results
func (s *Session) Finish() bool {
	return s.finish(CueTap)
}

// ChallengeDone ends the discussion at once, whatever the timer is doing
func (s *Session) ChallengeDone() bool {
	return s.finish(CueSuccess)
}

func (s *Session) finish(cue Cue) bool {
	s.mu.Lock()
	defer s.unlock()
	if s.phase != models.PhaseDiscussion {
		return false
	}
	s.timer.Stop()
	s.setPhase(models.PhaseResults)
	s.changed(cue)
	return true
}
