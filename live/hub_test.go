package live

import (
	"encoding/json"
	"testing"
	"time"
)

func waitForMessage(t *testing.T, hub *Hub, client *Client, message interface{}) []byte {
	t.Helper()

	// Registration goes through the hub's run loop, so retry the broadcast
	// until the client is actually in the room.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.BroadcastToRoom(client.Room, message)
		select {
		case msg := <-client.Send:
			return msg
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatal("message was not delivered before deadline")
	return nil
}

func TestHub_BroadcastReachesRegisteredClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: RoomMatches}
	hub.Register <- client

	raw := waitForMessage(t, hub, client, Message{
		Type:    EventMatchCreated,
		Payload: map[string]int{"id": 1},
	})

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("unmarshal broadcast: %v", err)
	}
	if msg.Type != EventMatchCreated {
		t.Fatalf("unexpected event type: %q", msg.Type)
	}
}

func TestHub_BroadcastToEmptyRoomIsNoOp(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	hub.BroadcastToRoom("nobody-here", Message{Type: EventMatchUpdated})
}

func TestHub_BroadcastSkipsRoomsOfOtherClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	other := &Client{Hub: hub, Send: make(chan []byte, 1), Room: "other-room"}
	hub.Register <- other

	subscriber := &Client{Hub: hub, Send: make(chan []byte, 1), Room: RoomMatches}
	hub.Register <- subscriber

	waitForMessage(t, hub, subscriber, Message{Type: EventMatchUpdated})

	select {
	case msg := <-other.Send:
		t.Fatalf("client in another room received %s", msg)
	default:
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: RoomMatches}
	hub.Register <- client
	waitForMessage(t, hub, client, Message{Type: EventMatchUpdated})

	hub.Unregister <- client

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-client.Send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("send channel was not closed after unregister")
		}
	}
}

func TestHub_BroadcastDoesNotBlockOnFullBuffer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: RoomMatches}
	hub.Register <- client
	waitForMessage(t, hub, client, Message{Type: EventMatchUpdated})

	// Fill the buffer and make sure further broadcasts drop instead of hang.
	client.Send <- []byte("pending")
	done := make(chan struct{})
	go func() {
		hub.BroadcastToRoom(RoomMatches, Message{Type: EventMatchUpdated})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a client with a full buffer")
	}
}
