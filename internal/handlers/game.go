package handlers

import (
	"log"
	"net/http"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// HandleGame routes the round actions under /game/
func (ctx *Context) HandleGame(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if debug {
		log.Printf("handleGame: %s in phase %s", r.URL.Path, ctx.Session.Phase())
	}

	switch action(r, "/game/") {
	case "start":
		ctx.handleStart(w)
	case "reveal":
		rejected("reveal", ctx.Session.Reveal())
		ctx.writeScreen(w, "")
	case "hide":
		rejected("hide", ctx.Session.Hide())
		ctx.writeScreen(w, "")
	case "next":
		rejected("next player", ctx.Session.Advance())
		ctx.writeScreen(w, "")
	case "finish":
		ctx.handleFinish(w, false)
	case "challenge-done":
		ctx.handleFinish(w, true)
	case "play-again":
		ctx.handlePlayAgain(w)
	case "new":
		ctx.handleNewGame(w)
	default:
		http.NotFound(w, r)
	}
}
