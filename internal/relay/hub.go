package relay

import (
	"log"
	"sync"
)

// Hub owns the room membership table. Rooms are keyed by tracker id, exist
// exactly while non-empty, and are only touched through Register, Join,
// Broadcast and Disconnect. Transport handlers never reach into the table.
type Hub struct {
	mutex sync.RWMutex

	// rooms maps a tracker id to its current members
	rooms map[string]map[*Client]struct{}

	// joined maps every registered connection to the rooms it is in
	joined map[*Client]map[string]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		joined: make(map[*Client]map[string]struct{}),
	}
}

// Register adds a connection to the hub before it joins any room
func (h *Hub) Register(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.joined[client]; !exists {
		h.joined[client] = make(map[string]struct{})
	}
}

// Join adds the connection to the room keyed by trackerID. Joining a room the
// connection is already in has no effect.
func (h *Hub) Join(client *Client, trackerID string) {
	if trackerID == "" {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	memberships, registered := h.joined[client]
	if !registered {
		memberships = make(map[string]struct{})
		h.joined[client] = memberships
	}
	memberships[trackerID] = struct{}{}

	room, exists := h.rooms[trackerID]
	if !exists {
		room = make(map[*Client]struct{})
		h.rooms[trackerID] = room
	}
	room[client] = struct{}{}

	log.Printf("Connection %s joined room %s (%d members)", client.ID, trackerID, len(room))
}

// Broadcast delivers message to every member of the room except the sender.
// Delivery is best effort: a member whose outbound queue is full misses this
// message. Returns the number of members the message was handed to.
func (h *Hub) Broadcast(sender *Client, trackerID string, message []byte) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	delivered := 0
	for member := range h.rooms[trackerID] {
		if member == sender {
			continue
		}
		select {
		case member.send <- message:
			delivered++
		default:
			// Slow consumer, drop the message for this member
		}
	}
	return delivered
}

// Disconnect removes the connection from every room it joined and closes its
// outbound queue. Safe to call more than once.
func (h *Hub) Disconnect(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	memberships, registered := h.joined[client]
	if !registered {
		return
	}
	delete(h.joined, client)

	for trackerID := range memberships {
		room := h.rooms[trackerID]
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, trackerID)
		}
	}

	close(client.send)
	log.Printf("Connection %s disconnected from %d room(s)", client.ID, len(memberships))
}

// Stats returns the current room and connection counts
func (h *Hub) Stats() (rooms int, connections int) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.rooms), len(h.joined)
}
