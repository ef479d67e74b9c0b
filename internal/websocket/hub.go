package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"talentflow-be/internal/model"
	"talentflow-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans notifications out to connected clients. There is no user table:
// clients are keyed by recipient display name, the same strings the engines
// receive as acting identities. One name may hold several connections
// (multi-device).
type Hub struct {
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Recipient] = append(h.clients[client.Recipient], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"recipient": client.Recipient})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Recipient]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Recipient] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Recipient]) == 0 {
					delete(h.clients, client.Recipient)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"recipient": client.Recipient})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a notification to ALL connected clients.
func (h *Hub) Broadcast(notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				close(client.Send)
				h.unregister <- client
			}
		}
	}
	h.mu.RUnlock()

	// Relay to other instances; "*" marks a broadcast.
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_recipient": "*",
			"message":          data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Send (NotificationDelivery interface implementation)
func (h *Hub) Send(recipient string, notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	clients, localFound := h.clients[recipient]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"recipient": recipient})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	// Always publish so other instances reach the recipient's other devices.
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_recipient": recipient,
			"message":          data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// subscribeToRedis listens on the shared cluster channel. Every instance
// subscribes to "cluster_events" and delivers locally-held recipients only.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetRecipient string          `json:"target_recipient"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetRecipient == "*" {
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						close(client.Send)
						h.unregister <- client
					}
				}
			}
			h.mu.RUnlock()
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[payload.TargetRecipient]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
