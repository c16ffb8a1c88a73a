package handlers

import (
	"log"
	"net/http"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/render"
	"github.com/aaronzipp/impostor/internal/sse"
)

// HandleSSE streams timer ticks, result stages and sound cues to the page
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	client, clientID := ctx.Hub.AddClient()
	defer ctx.Hub.RemoveClient(client)
	if debug {
		log.Printf("handleSSE: client %s connected, now have %d total clients", clientID, ctx.Hub.ClientCount())
	}

	// a reconnecting page may have missed events; resync the whole screen
	initial := sse.Message{Event: sse.EventScreen, Data: render.Screen(ctx.Session.View(), "")}
	if err := sse.Write(w, initial); err != nil {
		return
	}
	flusher.Flush()

	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			if debug {
				log.Printf("handleSSE: client %s disconnected", clientID)
			}
			return
		case msg := <-client:
			if debug {
				log.Printf("handleSSE: sending event=%s to client %s", msg.Event, clientID)
			}
			if err := sse.Write(w, msg); err != nil {
				log.Printf("WARN: writing to client %s: %v", clientID, err)
				return
			}
			flusher.Flush()
		}
	}
}

// Notify forwards session events to the connected pages. Changes made by a
// request are already in that request's response, so only the timer, the
// result stages and cues are pushed.
func (ctx *Context) Notify(ev game.Event) {
	switch ev.Type {
	case game.EventTimer:
		v := ctx.Session.View()
		if v.Phase == models.PhaseDiscussion {
			ctx.Hub.Broadcast(sse.EventTimer, render.Timer(v))
		}
	case game.EventStage:
		ctx.Hub.Broadcast(sse.EventScreen, render.Screen(ctx.Session.View(), ""))
	}
	if ev.Cue != "" {
		ctx.Hub.Broadcast(sse.EventCue, string(ev.Cue))
	}
}
