package service

import (
	"encoding/json"
	"sync"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"

	"github.com/gorilla/websocket"
)

// ActivityEvent is pushed to dashboard subscribers after a lifecycle
// transaction commits.
type ActivityEvent struct {
	Kind     string         `json:"kind"`
	AssetIds []string       `json:"assetIds"`
	At       utils.JsonTime `json:"at"`
}

// Hub fans activity events out to websocket clients. Best effort only:
// a client that cannot keep up is dropped, never waited on.
type Hub struct {
	Broadcast chan ActivityEvent

	mutex   sync.Mutex
	clients map[*websocket.Conn]bool
}

var ActivityHub *Hub

func SetupHub() {
	ActivityHub = &Hub{
		Broadcast: make(chan ActivityEvent, 64),
		clients:   make(map[*websocket.Conn]bool),
	}
	go ActivityHub.run()
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	h.mutex.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Hub) run() {
	for event := range h.Broadcast {
		data, err := json.Marshal(event)
		if err != nil {
			log.Errorf("marshal activity event failed: %v", err)
			continue
		}
		h.mutex.Lock()
		for conn := range h.clients {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				delete(h.clients, conn)
				_ = conn.Close()
			}
		}
		h.mutex.Unlock()
	}
}
