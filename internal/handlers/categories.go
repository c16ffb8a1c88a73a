package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aaronzipp/impostor/internal/render"
)

// HandleCategories routes the category browser actions under /categories/
func (ctx *Context) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	s := ctx.Session
	name := strings.TrimSpace(r.FormValue("name"))

	var err error
	switch action(r, "/categories/") {
	case "open":
		rejected("open categories", s.OpenCategories())
	case "close":
		rejected("close categories", s.CloseCategories())
	case "select":
		if r.FormValue("which") == "all" {
			var all []string
			for _, c := range s.View().Categories {
				all = append(all, c.Name)
			}
			s.SetSelectedCategories(all)
		} else {
			s.SetSelectedCategories(nil)
		}
	case "toggle":
		rejected("toggle category "+name, s.ToggleCategory(name))
	case "create":
		_, err = s.CreateCategory(name, formPairs(r))
	case "update":
		err = s.UpdateCategory(name, formPairs(r))
	case "delete":
		err = s.DeleteCategory(name)
	case "pairs":
		_, err = s.AddPairs(name, formPairs(r))
	case "search":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, render.CategoryList(s.View(), r.FormValue("q")))
		return
	default:
		http.NotFound(w, r)
		return
	}
	ctx.writeError(w, err)
}
