package relay

import "encoding/json"

// Inbound and outbound event names of the persistent-connection contract
const (
	EventJoinTrackerRoom = "joinTrackerRoom"
	EventLocationUpdate  = "locationUpdate"
)

// Envelope is the wire frame: an event name plus its raw payload. The payload
// bytes of a location update are rebroadcast verbatim.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// locationTarget extracts just the room key from a location update payload
type locationTarget struct {
	TrackerID string `json:"trackerId"`
}

// DecodeEnvelope parses a raw inbound frame
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	env := &Envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		return nil, err
	}
	return env, nil
}

// JoinRoomID decodes the trackerId string carried by a joinTrackerRoom event
func (e *Envelope) JoinRoomID() (string, error) {
	var trackerID string
	if err := json.Unmarshal(e.Data, &trackerID); err != nil {
		return "", err
	}
	return trackerID, nil
}

// LocationTrackerID decodes the trackerId field of a locationUpdate payload
func (e *Envelope) LocationTrackerID() (string, error) {
	var target locationTarget
	if err := json.Unmarshal(e.Data, &target); err != nil {
		return "", err
	}
	return target.TrackerID, nil
}

// EncodeLocationUpdate builds the outbound locationUpdate frame around the
// untouched inbound payload bytes
func EncodeLocationUpdate(data json.RawMessage) ([]byte, error) {
	return json.Marshal(Envelope{Event: EventLocationUpdate, Data: data})
}
