package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"matchify/db"
	"matchify/middleware"
	"matchify/models"
	"matchify/rdx"
	"matchify/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	Room   string // mission id
	UserID string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// inboundPayload represents what clients send us:
type inboundPayload struct {
	Action  string `json:"action"` // "chat"
	Content string `json:"content,omitempty"`
}

// outboundPayload is what we broadcast to every client:
type outboundPayload struct {
	Action     string `json:"action"`
	ID         string `json:"id"`
	Room       string `json:"room,omitempty"`
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Content    string `json:"content,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// senderName resolves a display name from the username cache written at
// registration. Best effort; an empty name just means the client falls
// back to the id.
func senderName(userID string) string {
	name, err := rdx.RdxGet("users:" + userID)
	if err != nil {
		return ""
	}
	return name
}

// missionMember reports whether a user belongs to a mission conversation
// (the recruiter or the hired talent).
func missionMember(userID, missionID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cnt, _ := db.MissionsCollection.CountDocuments(ctx, bson.M{
		"missionid": missionID,
		"$or": bson.A{
			bson.M{"recruiterid": userID},
			bson.M{"hired_talentid": userID},
		},
	})
	return cnt > 0
}

func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("missionid")

		token := r.Header.Get("Authorization")
		if token == "" {
			// Browsers cannot set headers on websocket dials
			token = "Bearer " + r.URL.Query().Get("token")
		}
		claims, err := middleware.ValidateJWT(token)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		userID := claims.UserID

		if !missionMember(userID, room) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn:   conn,
			Send:   make(chan []byte, 256),
			Room:   room,
			UserID: userID,
		}

		rdx.ClearUnread(userID, room)

		// send last 30 messages as chat actions
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			opts := options.Find().
				SetSort(bson.D{{Key: "createdAt", Value: -1}}).
				SetLimit(30)

			cur, err := db.MessagesCollection.Find(ctx, bson.M{"missionid": room}, opts)
			if err != nil {
				log.Println("history find:", err)
				return
			}
			defer cur.Close(ctx)

			var history []models.Message
			if err := cur.All(ctx, &history); err != nil {
				log.Println("history decode:", err)
				return
			}
			// send oldest first
			for i := len(history) - 1; i >= 0; i-- {
				m := history[i]
				out := outboundPayload{
					Action:     "chat",
					ID:         m.MessageID,
					Room:       m.MissionID,
					SenderID:   m.SenderID,
					SenderName: senderName(m.SenderID),
					Content:    m.Content,
					Timestamp:  m.CreatedAt.Unix(),
				}
				if data, err := json.Marshal(out); err == nil {
					client.Send <- data
				}
			}
		}()

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Println("invalid payload:", err)
			continue
		}

		if in.Action != "chat" || in.Content == "" {
			continue
		}

		msg := models.Message{
			MessageID: "msg" + utils.GenerateRandomString(10),
			ChatID:    c.Room,
			MissionID: c.Room,
			SenderID:  c.UserID,
			Content:   in.Content,
			CreatedAt: time.Now(),
		}
		// Buffered write: the flush worker bulk-inserts to Mongo.
		if err := rdx.BufferChatMessage(c.Room, msg); err != nil {
			log.Println("buffer message:", err)
			continue
		}

		bumpUnread(c.Room, c.UserID)

		out := outboundPayload{
			Action:     "chat",
			ID:         msg.MessageID,
			Room:       msg.MissionID,
			SenderID:   msg.SenderID,
			SenderName: senderName(msg.SenderID),
			Content:    msg.Content,
			Timestamp:  msg.CreatedAt.Unix(),
		}
		if data, _ := json.Marshal(out); data != nil {
			hub.broadcast <- broadcastMsg{Room: c.Room, Data: data}
		}
	}
}

// bumpUnread increments the badge counter for the other mission party.
func bumpUnread(missionID, senderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m models.Mission
	if err := db.MissionsCollection.FindOne(ctx, bson.M{"missionid": missionID}).Decode(&m); err != nil {
		return
	}
	if m.RecruiterID != senderID {
		rdx.IncrUnread(m.RecruiterID, missionID)
	}
	if m.HiredTalentID != "" && m.HiredTalentID != senderID {
		rdx.IncrUnread(m.HiredTalentID, missionID)
	}
}
