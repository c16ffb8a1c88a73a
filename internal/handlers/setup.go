package handlers

import (
	"net/http"
)

// HandleSetup routes the configuration actions under /setup/
func (ctx *Context) HandleSetup(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	s := ctx.Session

	switch action(r, "/setup/") {
	case "dark":
		s.ToggleDarkMode()
		// the theme class lives on <body>, outside the swapped fragment
		w.Header().Set("HX-Refresh", "true")
	case "sound":
		s.ToggleSound()
	case "language":
		s.SetLanguage(r.FormValue("lang"))
		w.Header().Set("HX-Refresh", "true")
	case "players":
		if delta, ok := formInt(r, "delta"); ok {
			s.SetPlayerCount(s.Config().PlayerCount + delta)
		} else if n, ok := formInt(r, "value"); ok {
			s.SetPlayerCount(n)
		}
	case "impostors":
		if delta, ok := formInt(r, "delta"); ok {
			s.SetImpostorCount(s.Config().ImpostorCount + delta)
		} else if n, ok := formInt(r, "value"); ok {
			s.SetImpostorCount(n)
		}
	case "custom":
		s.SetUseCustomWords(r.FormValue("use") != "")
		// the word inputs only exist once custom mode is on
		if _, ok := r.Form["majority"]; ok {
			s.SetCustomWords(r.FormValue("majority"), r.FormValue("minority"))
		}
	case "timer":
		if n, ok := formInt(r, "value"); ok {
			s.SetTimerDuration(n)
		}
	case "reset":
		s.ResetDefaults()
		w.Header().Set("HX-Refresh", "true")
	default:
		http.NotFound(w, r)
		return
	}
	ctx.writeScreen(w, "")
}
