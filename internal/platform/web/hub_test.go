package web

import (
	"testing"
	"time"
)

func TestHubRegisterUnregister(t *testing.T) {
	h := NewHub()

	c1 := &Client{ID: "a", Send: make(chan []byte, 4)}
	c2 := &Client{ID: "b", Send: make(chan []byte, 4)}
	h.Register(c1)
	h.Register(c2)

	if h.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", h.Count())
	}

	h.Unregister("a")
	if h.Count() != 1 {
		t.Errorf("Count() = %d after Unregister, want 1", h.Count())
	}

	// c1's Send channel should be closed
	select {
	case _, ok := <-c1.Send:
		if ok {
			t.Fatal("c1.Send should be closed")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("c1.Send was not closed")
	}

	// Unknown IDs are ignored
	h.Unregister("missing")
	if h.Count() != 1 {
		t.Errorf("Count() = %d, want 1", h.Count())
	}
}

func TestClientTrySendDropsWhenFull(t *testing.T) {
	c := &Client{ID: "a", Send: make(chan []byte, 1)}

	if !c.TrySend([]byte("one")) {
		t.Fatal("first send should be queued")
	}
	if c.TrySend([]byte("two")) {
		t.Error("second send should be dropped while the queue is full")
	}
	if got := string(<-c.Send); got != "one" {
		t.Errorf("queued message = %q, want one", got)
	}
}

func TestHubCloseAllWithoutConnections(t *testing.T) {
	h := NewHub()
	h.Register(&Client{ID: "a", Send: make(chan []byte, 1)})

	// Clients without a connection are skipped
	h.CloseAll("test")
	if h.Count() != 1 {
		t.Errorf("CloseAll should not unregister clients, Count() = %d", h.Count())
	}
}
