package sse

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

const (
	// BufferSize is the buffer size of each client channel
	BufferSize = 16

	// SendTimeout bounds how long Broadcast waits on a slow client
	SendTimeout = time.Second
)

// Message is one server-sent event
type Message struct {
	Event string
	Data  string
}

// Hub fans messages out to every connected page
type Hub struct {
	mu      sync.RWMutex
	clients map[chan Message]string // channel -> client ID
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan Message]string)}
}

// AddClient registers a new client and returns its channel and ID
func (h *Hub) AddClient() (chan Message, string) {
	client := make(chan Message, BufferSize)
	id := uuid.NewString()

	h.mu.Lock()
	h.clients[client] = id
	n := len(h.clients)
	h.mu.Unlock()

	if n > 1 {
		log.Printf("WARN: %d pages are connected to the same session", n)
	}
	return client, id
}

// RemoveClient removes a client from the hub
func (h *Hub) RemoveClient(client chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	if debug {
		log.Printf("sse: client removed, now have %d total clients", len(h.clients))
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to all connected clients
func (h *Hub) Broadcast(event, data string) {
	h.mu.RLock()
	// Collect all client channels while holding the lock
	clients := make([]chan Message, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if debug {
		log.Printf("sse: broadcast event=%s to %d clients", event, len(clients))
	}

	// Send messages WITHOUT holding the lock
	msg := Message{Event: event, Data: data}
	for _, client := range clients {
		select {
		case client <- msg:
		case <-time.After(SendTimeout):
			if debug {
				log.Printf("sse: timeout sending %s to client", event)
			}
		}
	}
}

// Write encodes msg in the event stream format. Multi-line data is split
// over several data lines.
func Write(w io.Writer, msg Message) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(msg.Event)
	b.WriteString("\n")
	for _, line := range strings.Split(msg.Data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	_, err := fmt.Fprint(w, b.String())
	return err
}
