package domain

import (
	"fmt"
	"testing"
	"time"
)

func call(number, lane string) TicketCall {
	return TicketCall{Number: number, Lane: lane, CalledBy: "staff1", CalledAt: time.Now().UTC()}
}

func TestQueueState_CallNext_First(t *testing.T) {
	q := NewQueueState()
	q.CallNext(call("1", LaneMale))

	if q.Current == nil || q.Current.Number != "1" {
		t.Fatalf("unexpected current: %+v", q.Current)
	}
	if len(q.History) != 0 {
		t.Fatalf("first call must not touch history, got %d entries", len(q.History))
	}
	if len(q.Men) != 1 || len(q.Women) != 0 {
		t.Fatalf("unexpected lane buckets: men=%d women=%d", len(q.Men), len(q.Women))
	}
}

func TestQueueState_CallNext_PushesPreviousCurrent(t *testing.T) {
	q := NewQueueState()
	q.CallNext(call("42", LaneMale))
	q.CallNext(call("43", LaneFemale))

	if q.Current.Number != "43" {
		t.Fatalf("expected current 43, got %s", q.Current.Number)
	}
	if len(q.History) != 1 || q.History[0].Number != "42" {
		t.Fatalf("expected history [42], got %+v", q.History)
	}
	if len(q.Women) != 1 || q.Women[0].Number != "43" {
		t.Fatalf("unexpected women bucket: %+v", q.Women)
	}
}

func TestQueueState_HistoryBound(t *testing.T) {
	q := NewQueueState()
	for i := 0; i < HistoryLimit+10; i++ {
		q.CallNext(call(fmt.Sprintf("%d", i), LaneMale))
	}

	if len(q.History) != HistoryLimit {
		t.Fatalf("expected history capped at %d, got %d", HistoryLimit, len(q.History))
	}
	// history[0] is always the immediately preceding current.
	want := fmt.Sprintf("%d", HistoryLimit+10-2)
	if q.History[0].Number != want {
		t.Fatalf("expected history[0]=%s, got %s", want, q.History[0].Number)
	}
}

func TestQueueState_Recall_RoundTrip(t *testing.T) {
	q := NewQueueState()
	q.CallNext(call("A", LaneMale))
	q.CallNext(call("B", LaneFemale))

	if err := q.Recall(); err != nil {
		t.Fatalf("recall failed: %v", err)
	}
	if q.Current.Number != "A" {
		t.Fatalf("expected current A after recall, got %s", q.Current.Number)
	}
	if len(q.History) != 1 || q.History[0].Number != "B" {
		t.Fatalf("expected B pushed back to history, got %+v", q.History)
	}
}

func TestQueueState_Recall_EmptyHistory(t *testing.T) {
	q := NewQueueState()
	q.CallNext(call("7", LaneMale))

	if err := q.Recall(); err != ErrNoPrevious {
		t.Fatalf("expected ErrNoPrevious, got %v", err)
	}
	if q.Current == nil || q.Current.Number != "7" {
		t.Fatalf("current must be unchanged on empty recall, got %+v", q.Current)
	}
}

func TestQueueState_Recall_NoCurrent(t *testing.T) {
	q := NewQueueState()
	q.History = []TicketCall{call("5", LaneMale)}

	if err := q.Recall(); err != nil {
		t.Fatalf("recall failed: %v", err)
	}
	if q.Current.Number != "5" {
		t.Fatalf("expected current 5, got %+v", q.Current)
	}
	if len(q.History) != 0 {
		t.Fatalf("expected empty history, got %+v", q.History)
	}
}

func TestQueueState_ResetQueue_KeepsSideChannels(t *testing.T) {
	q := NewQueueState()
	q.CallNext(call("1", LaneMale))
	q.CallNext(call("2", LaneFemale))
	q.Ticker = Broadcast{Text: "welcome", Active: true}
	q.CenterImage = "data:image/png;base64,xyz"

	q.ResetQueue()

	if q.Current != nil || len(q.History) != 0 || len(q.Men) != 0 || len(q.Women) != 0 {
		t.Fatalf("reset must clear all call data: %+v", q)
	}
	if q.Ticker.Text != "welcome" || !q.Ticker.Active {
		t.Fatalf("reset must not touch the ticker: %+v", q.Ticker)
	}
	if q.CenterImage == "" {
		t.Fatalf("reset must not touch the center image")
	}
}

func TestQueueState_SetCenterImage(t *testing.T) {
	q := NewQueueState()

	if err := q.SetCenterImage("data:image/png;base64,abcd"); err != nil {
		t.Fatalf("valid image rejected: %v", err)
	}
	if err := q.SetCenterImage("https://example.com/x.png"); err != ErrInvalidImage {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
	if err := q.SetCenterImage(""); err != ErrInvalidImage {
		t.Fatalf("expected ErrInvalidImage for empty payload, got %v", err)
	}
}

func TestQueueState_Normalize(t *testing.T) {
	q := &QueueState{Version: 1}
	q.History = make([]TicketCall, HistoryLimit+5)

	q.Normalize()

	if q.Version != SchemaVersion {
		t.Fatalf("expected version %d, got %d", SchemaVersion, q.Version)
	}
	if q.Men == nil || q.Women == nil {
		t.Fatalf("missing slices must default to empty")
	}
	if len(q.History) != HistoryLimit {
		t.Fatalf("expected history clamped to %d, got %d", HistoryLimit, len(q.History))
	}
}

func TestRoleSatisfies(t *testing.T) {
	cases := []struct {
		have, need string
		want       bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleStaff, true},
		{RoleStaff, RoleStaff, true},
		{RoleStaff, RoleAdmin, false},
		{"", RoleStaff, false},
		{RoleAdmin, "other", false},
	}
	for _, tc := range cases {
		if got := RoleSatisfies(tc.have, tc.need); got != tc.want {
			t.Fatalf("RoleSatisfies(%q, %q) = %v, want %v", tc.have, tc.need, got, tc.want)
		}
	}
}
