package chat

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubBroadcastReachesRoomMembers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c1 := &Client{Send: make(chan []byte, 1), Room: "m1", UserID: "u1"}
	c2 := &Client{Send: make(chan []byte, 1), Room: "m1", UserID: "u2"}
	other := &Client{Send: make(chan []byte, 1), Room: "m2", UserID: "u3"}

	hub.register <- c1
	hub.register <- c2
	hub.register <- other

	out := outboundPayload{Action: "chat", ID: "msg1", Room: "m1", SenderID: "u1", Content: "hello", Timestamp: time.Now().Unix()}
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	hub.broadcast <- broadcastMsg{Room: "m1", Data: data}

	for _, c := range []*Client{c1, c2} {
		select {
		case got := <-c.Send:
			var p outboundPayload
			if err := json.Unmarshal(got, &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.Content != "hello" || p.Room != "m1" {
				t.Fatalf("unexpected payload: %+v", p)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %s did not receive broadcast", c.UserID)
		}
	}

	select {
	case <-other.Send:
		t.Fatal("client in another room received the broadcast")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := &Client{Send: make(chan []byte, 1), Room: "m1", UserID: "u1"}
	hub.register <- c
	hub.unregister <- c

	select {
	case _, open := <-c.Send:
		if open {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}
