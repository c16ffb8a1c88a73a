package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/render"
)

// requirePost rejects anything but a POST and parses the form
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// action returns the last path segment after prefix
func action(r *http.Request, prefix string) string {
	return strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
}

func formInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// formPairs zips the repeated majority and minority fields into pairs.
// Blank rows are left for the session to drop.
func formPairs(r *http.Request) []models.Pair {
	majority := r.Form["majority"]
	minority := r.Form["minority"]
	n := min(len(majority), len(minority))
	pairs := make([]models.Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, models.Pair{Majority: majority[i], Minority: minority[i]})
	}
	return pairs
}

// writeScreen renders the current phase, with errMsg shown inline
func (ctx *Context) writeScreen(w http.ResponseWriter, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, render.Screen(ctx.Session.View(), errMsg))
}

// writeError renders the current phase with err translated for the player
func (ctx *Context) writeError(w http.ResponseWriter, err error) {
	if err == nil {
		ctx.writeScreen(w, "")
		return
	}
	if debug {
		log.Printf("DEBUG: rejected: %v", err)
	}
	ctx.writeScreen(w, render.ErrorMessage(ctx.Session.Config().Language, err))
}

// rejected logs an operation that did not apply in the current phase. The
// screen is still rendered so the page catches up with the session.
func rejected(op string, ok bool) {
	if !ok && debug {
		log.Printf("DEBUG: %s ignored in the current phase", op)
	}
}
