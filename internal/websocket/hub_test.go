package websocket

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHub(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Mock client
	client := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
	}

	// Test registration
	hub.register <- client
	if len(hub.clients) != 1 {
		t.Fatalf("Expected 1 client after registration, got %d", len(hub.clients))
	}

	// Test broadcast
	message := []byte("hello")
	hub.broadcast <- message

	select {
	case received := <-client.send:
		if string(received) != "hello" {
			t.Errorf("Client received wrong message: got %s, want %s", received, message)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Client did not receive broadcast message in time")
	}

	// Test unregistration
	hub.unregister <- client
	// Allow the hub to process the unregister message
	time.Sleep(10 * time.Millisecond)
	if len(hub.clients) != 0 {
		t.Fatalf("Expected 0 clients after unregistration, got %d", len(hub.clients))
	}
}

func TestHubBroadcastJSON(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
	}
	hub.register <- client

	payload := map[string]interface{}{"download_id": float64(42), "progress": float64(75)}
	hub.BroadcastJSON(payload)

	select {
	case received := <-client.send:
		var decoded map[string]interface{}
		if err := json.Unmarshal(received, &decoded); err != nil {
			t.Fatalf("Broadcast payload is not valid JSON: %v", err)
		}
		if decoded["download_id"] != payload["download_id"] || decoded["progress"] != payload["progress"] {
			t.Errorf("Decoded payload %v does not match %v", decoded, payload)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Client did not receive JSON broadcast in time")
	}
}

func TestHubDropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// A client with a full send buffer cannot accept the next broadcast.
	slow := &Client{
		hub:  hub,
		send: make(chan []byte), // unbuffered and never drained
	}
	hub.register <- slow

	hub.broadcast <- []byte("first")
	// Give the hub a moment to process the broadcast and evict the client.
	time.Sleep(50 * time.Millisecond)

	if len(hub.clients) != 0 {
		t.Fatalf("Expected slow client to be dropped, still have %d clients", len(hub.clients))
	}
}
