package handlers

import (
	"net/http"
)

// handlePlayAgain deals a new round with the same settings
func (ctx *Context) handlePlayAgain(w http.ResponseWriter) {
	ctx.writeError(w, ctx.Session.PlayAgain())
}

// handleNewGame goes back to setup
func (ctx *Context) handleNewGame(w http.ResponseWriter) {
	rejected("new game", ctx.Session.NewGame())
	ctx.writeScreen(w, "")
}
