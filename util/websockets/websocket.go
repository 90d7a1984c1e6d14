package websockets

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewFeedManager initializes a FeedManager
func NewFeedManager() *FeedManager {
	return &FeedManager{
		clients:    make(map[*websocket.Conn]*Client),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
		events:     make(chan GroupEvent),
	}
}

// Run starts the feed manager loop
func (manager *FeedManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if client, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
				log.Printf("Client %s disconnected", client.UserID)
			}
			manager.mu.Unlock()

		case event := <-manager.events:
			manager.mu.Lock()
			for _, client := range manager.clients {
				if !client.Groups[event.GroupID] {
					continue
				}
				if err := client.Conn.WriteMessage(websocket.TextMessage, event.Payload); err != nil {
					client.Conn.Close()
					delete(manager.clients, client.Conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// HandleConnections upgrades HTTP requests to WebSocket connections.
// The caller is expected to have authenticated the request already;
// allowed holds the group ids the user may subscribe to.
func (manager *FeedManager) HandleConnections(w http.ResponseWriter, r *http.Request, userID string, allowed map[string]bool) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn, UserID: userID, Groups: make(map[string]bool)}
	manager.register <- client

	defer func() {
		manager.unregister <- conn
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var message Message
		if err := json.Unmarshal(msg, &message); err != nil {
			log.Println("Invalid JSON:", err)
			continue
		}

		switch message.Type {
		case MsgTypeSubscribe:
			manager.mu.Lock()
			for _, groupID := range message.Groups {
				if allowed[groupID] {
					client.Groups[groupID] = true
				}
			}
			manager.mu.Unlock()

		case MsgTypeUnsubscribe:
			manager.mu.Lock()
			for _, groupID := range message.Groups {
				delete(client.Groups, groupID)
			}
			manager.mu.Unlock()
		}
	}
}

// BroadcastNewPost sends a post event to clients subscribed to its group.
func (manager *FeedManager) BroadcastNewPost(groupID string, payload []byte) {
	manager.events <- GroupEvent{GroupID: groupID, Type: MsgTypeNewPost, Payload: payload}
}
