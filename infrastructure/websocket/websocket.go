package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type WebSocketManager struct {
	clients         map[*websocket.Conn]Client
	userConnections map[uuid.UUID]*websocket.Conn // 1 user = 1 connection (prevent duplicates)
	register        chan Client
	unregister      chan *websocket.Conn
	broadcast       chan BroadcastMessage
	mutex           sync.RWMutex
}

type Client struct {
	Conn   *websocket.Conn
	UserID uuid.UUID
}

type Message struct {
	Type   string      `json:"type"`
	Data   interface{} `json:"data"`
	UserID string      `json:"userId,omitempty"`
}

type BroadcastMessage struct {
	Message Message
	UserID  *uuid.UUID
}

var Manager *WebSocketManager

func init() {
	Manager = &WebSocketManager{
		clients:         make(map[*websocket.Conn]Client),
		userConnections: make(map[uuid.UUID]*websocket.Conn),
		register:        make(chan Client),
		unregister:      make(chan *websocket.Conn),
		broadcast:       make(chan BroadcastMessage),
	}
	go Manager.run()
}

func (m *WebSocketManager) run() {
	for {
		select {
		case client := <-m.register:
			m.mutex.Lock()

			// Close old connection if user already has one (prevent duplicates from StrictMode)
			if oldConn, exists := m.userConnections[client.UserID]; exists {
				log.Printf("[WebSocket] Closing old connection for user (new connection incoming): %s", client.UserID.String())
				delete(m.clients, oldConn)
				oldConn.Close()
			}

			m.clients[client.Conn] = client
			m.userConnections[client.UserID] = client.Conn
			m.mutex.Unlock()

			log.Printf("[WebSocket] Client connected: UserID=%s", client.UserID)

		case conn := <-m.unregister:
			m.mutex.Lock()
			if client, ok := m.clients[conn]; ok {
				delete(m.clients, conn)

				// Only remove from userConnections if this is the current connection for this user
				if currentConn, exists := m.userConnections[client.UserID]; exists && currentConn == conn {
					delete(m.userConnections, client.UserID)
				}

				conn.Close()
				log.Printf("[WebSocket] Client disconnected: UserID=%s", client.UserID)
			}
			m.mutex.Unlock()

		case message := <-m.broadcast:
			m.mutex.RLock()
			if message.UserID != nil {
				// Use userConnections map for direct lookup (1 message per user)
				if conn, exists := m.userConnections[*message.UserID]; exists {
					m.sendMessage(conn, message.Message)
				}
			} else {
				for conn := range m.clients {
					m.sendMessage(conn, message.Message)
				}
			}
			m.mutex.RUnlock()
		}
	}
}

func (m *WebSocketManager) sendMessage(conn *websocket.Conn, message Message) {
	if err := conn.WriteJSON(message); err != nil {
		log.Printf("[WebSocket] Error sending message: %v", err)
		m.unregister <- conn
	}
}

func (m *WebSocketManager) RegisterClient(conn *websocket.Conn, userID uuid.UUID) {
	m.register <- Client{
		Conn:   conn,
		UserID: userID,
	}
}

func (m *WebSocketManager) UnregisterClient(conn *websocket.Conn) {
	m.unregister <- conn
}

func (m *WebSocketManager) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {
	m.broadcast <- BroadcastMessage{
		Message: Message{
			Type: messageType,
			Data: data,
		},
		UserID: &userID,
	}
}

func (m *WebSocketManager) BroadcastToAll(messageType string, data interface{}) {
	m.broadcast <- BroadcastMessage{
		Message: Message{
			Type: messageType,
			Data: data,
		},
	}
}

func (m *WebSocketManager) GetTotalClients() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.clients)
}

func HandleWebSocketMessage(conn *websocket.Conn, messageType int, data []byte) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Printf("[WebSocket] Error unmarshaling message: %v", err)
		return
	}

	switch message.Type {
	case "ping":
		conn.WriteJSON(Message{
			Type: "pong",
			Data: "pong",
		})

	default:
		log.Printf("[WebSocket] Unknown message type: %s", message.Type)
	}
}
