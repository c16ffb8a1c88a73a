package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/render"
	"github.com/aaronzipp/impostor/internal/sse"
)

// Context holds shared application dependencies
type Context struct {
	Session   *game.Session
	Hub       *sse.Hub
	Templates *template.Template
	PublicURL string
}

// HandleIndex serves the page shell with the current screen already rendered
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	v := ctx.Session.View()
	data := struct {
		Lang   string
		Dark   bool
		Screen template.HTML
	}{
		Lang:   v.Config.Language,
		Dark:   v.Config.DarkMode,
		Screen: template.HTML(render.Screen(v, "")),
	}
	if err := ctx.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("ERROR: rendering index: %v", err)
	}
}

// HandleScreen returns the fragment for the current phase
func (ctx *Context) HandleScreen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx.writeScreen(w, "")
}

// Routes registers every handler on a new mux
func (ctx *Context) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ctx.HandleIndex)
	mux.HandleFunc("/screen", ctx.HandleScreen)
	mux.HandleFunc("/events", ctx.HandleSSE)
	mux.HandleFunc("/qr.png", ctx.HandleQR)
	mux.HandleFunc("/setup/", ctx.HandleSetup)
	mux.HandleFunc("/categories/", ctx.HandleCategories)
	mux.HandleFunc("/game/", ctx.HandleGame)
	mux.HandleFunc("/timer/", ctx.HandleTimer)
	return mux
}
