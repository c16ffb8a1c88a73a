package handlers

import (
	"log"
	"net/http"

	"github.com/skip2/go-qrcode"
)

// QRSize is the edge length in pixels of the served QR code
const QRSize = 256

// HandleQR serves a QR code of the public URL so another device can open the game
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	png, err := qrcode.Encode(ctx.PublicURL, qrcode.Medium, QRSize)
	if err != nil {
		log.Printf("ERROR: encoding QR for %s: %v", ctx.PublicURL, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
