package domain

import (
	"errors"
	"strings"
	"time"
)

// SchemaVersion is the current queue-state document version. Loading an older
// or missing version normalizes additively: absent fields get defaults, no
// field is ever dropped or renamed.
const SchemaVersion = 2

const (
	// HistoryLimit caps the combined call history (FIFO eviction beyond it).
	HistoryLimit = 15
	// LaneHistoryLimit caps each per-lane recent-call bucket.
	LaneHistoryLimit = 50
)

const (
	LaneMale   = "male"
	LaneFemale = "female"
)

var ErrNoPrevious = errors.New("no previous call")
var ErrInvalidImage = errors.New("invalid image payload")
var ErrMissingFields = errors.New("missing required fields")

// ValidLane reports whether lane is one of the two calling lanes.
func ValidLane(lane string) bool {
	return lane == LaneMale || lane == LaneFemale
}

// TicketCall records a single called ticket.
type TicketCall struct {
	Number   string    `json:"number" bson:"number"`
	Lane     string    `json:"gender" bson:"gender"`
	CalledBy string    `json:"by" bson:"by"`
	CalledAt time.Time `json:"at" bson:"at"`
}

// Broadcast is a free-text side-channel field shown on the display screen.
type Broadcast struct {
	Text      string    `json:"text" bson:"text"`
	Active    bool      `json:"active" bson:"active"`
	SetBy     string    `json:"set_by,omitempty" bson:"set_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Message is a one-slot mailbox between the staff and admin screens.
type Message struct {
	Text   string    `json:"text" bson:"text"`
	From   string    `json:"from,omitempty" bson:"from,omitempty"`
	SentAt time.Time `json:"sent_at,omitempty" bson:"sent_at,omitempty"`
}

// QueueState is the single shared mutable document behind every display and
// calling screen. It is mutated exclusively through the queue service; the
// store layer treats it as an opaque value.
type QueueState struct {
	Version int `json:"version" bson:"version"`

	Current *TicketCall  `json:"current" bson:"current"`
	History []TicketCall `json:"history" bson:"history"`

	// Per-lane recent calls, display data only. Recall never consults these.
	Men   []TicketCall `json:"men" bson:"men"`
	Women []TicketCall `json:"women" bson:"women"`

	Ticker         Broadcast `json:"ticker" bson:"ticker"`
	DisplayMessage Broadcast `json:"display_message" bson:"display_message"`
	Note           Broadcast `json:"note" bson:"note"`
	CenterImage    string    `json:"center_image,omitempty" bson:"center_image,omitempty"`
	StaffMessage   Message   `json:"staff_message" bson:"staff_message"`
	AdminMessage   Message   `json:"admin_message" bson:"admin_message"`
}

// NewQueueState returns the empty default document.
func NewQueueState() *QueueState {
	return &QueueState{
		Version: SchemaVersion,
		History: []TicketCall{},
		Men:     []TicketCall{},
		Women:   []TicketCall{},
	}
}

// Normalize upgrades a loaded document to the current schema. Missing slices
// become empty, over-long slices are clamped to their bounds.
func (q *QueueState) Normalize() {
	if q.History == nil {
		q.History = []TicketCall{}
	}
	if q.Men == nil {
		q.Men = []TicketCall{}
	}
	if q.Women == nil {
		q.Women = []TicketCall{}
	}
	if len(q.History) > HistoryLimit {
		q.History = q.History[:HistoryLimit]
	}
	if len(q.Men) > LaneHistoryLimit {
		q.Men = q.Men[:LaneHistoryLimit]
	}
	if len(q.Women) > LaneHistoryLimit {
		q.Women = q.Women[:LaneHistoryLimit]
	}
	q.Version = SchemaVersion
}

// CallNext makes call the new current ticket. The previous current, if any,
// is pushed onto the front of the combined history (bounded, oldest evicted).
// The call itself is recorded in its lane bucket.
func (q *QueueState) CallNext(call TicketCall) {
	if q.Current != nil {
		q.History = prepend(q.History, *q.Current, HistoryLimit)
	}
	c := call
	q.Current = &c

	if call.Lane == LaneFemale {
		q.Women = prepend(q.Women, call, LaneHistoryLimit)
	} else {
		q.Men = prepend(q.Men, call, LaneHistoryLimit)
	}
}

// Recall undoes one call: the most recent history entry becomes current again
// and the displaced current is pushed back onto the front of history. A call
// followed by a recall restores the prior current exactly.
func (q *QueueState) Recall() error {
	if len(q.History) == 0 {
		return ErrNoPrevious
	}
	popped := q.History[0]
	rest := append([]TicketCall{}, q.History[1:]...)
	if q.Current != nil {
		rest = prepend(rest, *q.Current, HistoryLimit)
	}
	q.History = rest
	q.Current = &popped
	return nil
}

// ResetQueue clears the current ticket, the combined history, and both lane
// buckets. Side-channel fields are untouched.
func (q *QueueState) ResetQueue() {
	q.Current = nil
	q.History = []TicketCall{}
	q.Men = []TicketCall{}
	q.Women = []TicketCall{}
}

// SetCenterImage stores a data-URL image for the display center slot.
func (q *QueueState) SetCenterImage(image string) error {
	if !strings.HasPrefix(image, "data:image/") {
		return ErrInvalidImage
	}
	q.CenterImage = image
	return nil
}

func prepend(calls []TicketCall, call TicketCall, limit int) []TicketCall {
	out := make([]TicketCall, 0, len(calls)+1)
	out = append(out, call)
	out = append(out, calls...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
