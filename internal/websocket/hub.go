package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType names the events pushed to connected clients.
type EventType string

const (
	TypePing EventType = "ping"
	TypePong EventType = "pong"

	// TypeMessageNew goes to the recipient when a message is created.
	TypeMessageNew EventType = "message.new"
	// TypeMessageRead goes to the sender when the recipient marks a
	// message read.
	TypeMessageRead EventType = "message.read"
)

type Event struct {
	Type      EventType       `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Hub tracks connected clients per username. A user may hold several
// connections at once; events go to all of them.
type Hub struct {
	clients     map[uuid.UUID]*Client
	userClients map[string]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[uuid.UUID]*Client),
		userClients: make(map[string]map[uuid.UUID]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run processes registrations and keeps connections alive with pings.
func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.ping()
		}
	}
}

// Stop closes every connection and shuts the hub down.
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	if _, ok := h.userClients[client.Username]; !ok {
		h.userClients[client.Username] = make(map[uuid.UUID]*Client)
	}
	h.userClients[client.Username][client.ID] = client

	log.Printf("Client registered: %s (user: %s)", client.ID, client.Username)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	if userClients, ok := h.userClients[client.Username]; ok {
		delete(userClients, client.ID)
		if len(userClients) == 0 {
			delete(h.userClients, client.Username)
		}
	}

	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("Client unregistered: %s (user: %s)", client.ID, client.Username)
}

// SendToUser delivers payload to every connection the user holds.
// Clients with a full queue miss the event.
func (h *Hub) SendToUser(username string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.userClients[username]; ok {
		for _, client := range clients {
			if err := client.queue(payload); err != nil {
				log.Printf("Client %s: %v", client.ID, err)
			}
		}
	}
}

// Notify marshals data into an Event and sends it to the user.
func (h *Hub) Notify(username string, eventType EventType, data interface{}) error {
	event := Event{
		Type:      eventType,
		Timestamp: time.Now(),
	}
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return err
		}
		event.Data = jsonData
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	h.SendToUser(username, payload)
	return nil
}

// ConnectedUsers returns the usernames with at least one connection.
func (h *Hub) ConnectedUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	users := make([]string, 0, len(h.userClients))
	for username := range h.userClients {
		users = append(users, username)
	}
	return users
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event := Event{
		Type:      TypePing,
		Timestamp: time.Now(),
	}

	if payload, err := json.Marshal(event); err == nil {
		for _, client := range h.clients {
			_ = client.queue(payload)
		}
	}
}
