package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe   = "subscribe"
	MsgTypeUnsubscribe = "unsubscribe"
	MsgTypeNewPost     = "new_post"
)

// Client represents a connected WebSocket user
type Client struct {
	Conn   *websocket.Conn
	UserID string
	Groups map[string]bool
}

type FeedManager struct {
	clients    map[*websocket.Conn]*Client
	register   chan *Client
	unregister chan *websocket.Conn
	events     chan GroupEvent
	mu         sync.Mutex
}

// GroupEvent is fanned out to every client subscribed to the group.
type GroupEvent struct {
	GroupID string `json:"id_group"`
	Type    string `json:"type"`
	Payload []byte `json:"-"`
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type   string   `json:"type"`
	Groups []string `json:"groups,omitempty"`
}
