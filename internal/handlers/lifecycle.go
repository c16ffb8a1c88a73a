package handlers

import (
	"log"
	"net/http"
)

// handleStart deals a round from the setup screen. Validation errors keep the
// player on setup with the reason shown.
func (ctx *Context) handleStart(w http.ResponseWriter) {
	if err := ctx.Session.StartGame(); err != nil {
		ctx.writeError(w, err)
		return
	}
	log.Printf("Game started: phase=%s", ctx.Session.Phase())
	ctx.writeScreen(w, "")
}

// handleFinish ends the discussion. challenge skips the timer entirely.
func (ctx *Context) handleFinish(w http.ResponseWriter, challenge bool) {
	if challenge {
		rejected("challenge done", ctx.Session.ChallengeDone())
	} else {
		rejected("finish", ctx.Session.Finish())
	}
	ctx.writeScreen(w, "")
}
