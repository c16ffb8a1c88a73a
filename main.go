package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaronzipp/impostor/internal/config"
	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/handlers"
	"github.com/aaronzipp/impostor/internal/prefs"
	"github.com/aaronzipp/impostor/internal/sse"
	"github.com/aaronzipp/impostor/internal/words"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	kv, err := cfg.OpenStore()
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer kv.Close()

	packs, err := cfg.Packs()
	if err != nil {
		log.Fatal("Failed to load word packs:", err)
	}
	library := words.NewLibrary(kv, packs)
	log.Printf("Loaded %d categories (store=%s)", len(library.Categories()), cfg.Store)

	// Parse templates
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	ctx := &handlers.Context{
		Hub:       sse.NewHub(),
		Templates: templates,
		PublicURL: cfg.PublicURL,
	}
	ctx.Session = game.NewSession(library, prefs.NewStore(kv), game.WithNotifier(ctx.Notify))
	defer ctx.Session.Close()

	// cancelling the base context ends open event streams on shutdown
	baseCtx, closeStreams := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           ctx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	go func() {
		log.Printf("Server starting on %s", cfg.PublicURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("Shutting down")
	closeStreams()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: shutdown: %v", err)
	}
}
