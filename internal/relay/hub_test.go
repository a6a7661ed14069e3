package relay

import "testing"

func newTestClient(id string) *Client {
	return &Client{
		ID:   id,
		send: make(chan []byte, 4),
	}
}

func receives(c *Client) bool {
	select {
	case <-c.send:
		return true
	default:
		return false
	}
}

func TestBroadcast_ExcludesSenderAndOtherRooms(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	b := newTestClient("b")
	c := newTestClient("c")

	hub.Register(a)
	hub.Register(b)
	hub.Register(c)
	hub.Join(a, "T1")
	hub.Join(b, "T1")
	hub.Join(c, "T2")

	delivered := hub.Broadcast(a, "T1", []byte(`{"lat":1}`))
	if delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}
	if !receives(b) {
		t.Error("room member did not receive the message")
	}
	if receives(a) {
		t.Error("message echoed back to sender")
	}
	if receives(c) {
		t.Error("message leaked into another room")
	}
}

func TestBroadcast_EmptyRoom(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	hub.Register(a)

	if delivered := hub.Broadcast(a, "nobody", []byte("x")); delivered != 0 {
		t.Errorf("delivered = %d, want 0", delivered)
	}
}

func TestJoin_Idempotent(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	b := newTestClient("b")

	hub.Register(a)
	hub.Register(b)
	hub.Join(b, "T1")
	hub.Join(b, "T1")

	delivered := hub.Broadcast(a, "T1", []byte("x"))
	if delivered != 1 {
		t.Fatalf("delivered = %d, want 1 after double join", delivered)
	}
	<-b.send
	if receives(b) {
		t.Error("double join produced a duplicate delivery")
	}
}

func TestJoin_MultipleRooms(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	b := newTestClient("b")

	hub.Register(a)
	hub.Register(b)
	hub.Join(b, "T1")
	hub.Join(b, "T2")

	hub.Broadcast(a, "T1", []byte("one"))
	hub.Broadcast(a, "T2", []byte("two"))

	if got := len(b.send); got != 2 {
		t.Errorf("queued = %d, want 2", got)
	}
}

func TestDisconnect_PurgesAllRooms(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	b := newTestClient("b")

	hub.Register(a)
	hub.Register(b)
	hub.Join(b, "T1")
	hub.Join(b, "T2")

	hub.Disconnect(b)

	if delivered := hub.Broadcast(a, "T1", []byte("x")); delivered != 0 {
		t.Errorf("delivered = %d after disconnect, want 0", delivered)
	}
	if delivered := hub.Broadcast(a, "T2", []byte("x")); delivered != 0 {
		t.Errorf("delivered = %d after disconnect, want 0", delivered)
	}

	// Send queue is closed exactly once; a second disconnect is a no-op
	if _, ok := <-b.send; ok {
		t.Error("send queue not closed on disconnect")
	}
	hub.Disconnect(b)

	rooms, connections := hub.Stats()
	if rooms != 0 {
		t.Errorf("rooms = %d, want 0 (empty rooms are dropped)", rooms)
	}
	if connections != 1 {
		t.Errorf("connections = %d, want 1", connections)
	}
}

func TestBroadcast_DropsForSlowConsumer(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	slow := &Client{ID: "slow", send: make(chan []byte)}

	hub.Register(a)
	hub.Register(slow)
	hub.Join(slow, "T1")

	// Nothing drains the queue; delivery must not block
	if delivered := hub.Broadcast(a, "T1", []byte("x")); delivered != 0 {
		t.Errorf("delivered = %d, want 0 for a full queue", delivered)
	}
}

func TestStats(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a")
	b := newTestClient("b")

	hub.Register(a)
	hub.Register(b)
	hub.Join(a, "T1")
	hub.Join(b, "T1")
	hub.Join(b, "T2")

	rooms, connections := hub.Stats()
	if rooms != 2 {
		t.Errorf("rooms = %d, want 2", rooms)
	}
	if connections != 2 {
		t.Errorf("connections = %d, want 2", connections)
	}
}
