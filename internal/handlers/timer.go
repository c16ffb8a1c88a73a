package handlers

import (
	"net/http"

	"github.com/aaronzipp/impostor/internal/prefs"
)

// HandleTimer routes the discussion timer controls under /timer/
func (ctx *Context) HandleTimer(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	s := ctx.Session

	switch a := action(r, "/timer/"); a {
	case "adjust":
		delta, ok := formInt(r, "delta")
		if !ok {
			http.Error(w, "delta is required", http.StatusBadRequest)
			return
		}
		// one step per press whatever the client sends
		switch {
		case delta > 0:
			s.AdjustTimerDuration(prefs.TimerStepSeconds)
		case delta < 0:
			s.AdjustTimerDuration(-prefs.TimerStepSeconds)
		}
	case "start":
		rejected(a, s.StartTimer())
	case "pause":
		rejected(a, s.PauseTimer())
	case "resume":
		rejected(a, s.ResumeTimer())
	case "stop":
		rejected(a, s.StopTimer())
	case "skip":
		rejected(a, s.SkipTimer())
	default:
		http.NotFound(w, r)
		return
	}
	ctx.writeScreen(w, "")
}
