package ports

import (
	"context"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

// CallInput is a single ticket call issued from the staff screen.
type CallInput struct {
	Number   string
	Lane     string
	CalledBy string
}

// BroadcastField selects which side-channel slot a broadcast write targets.
type BroadcastField string

const (
	FieldTicker         BroadcastField = "ticker"
	FieldDisplayMessage BroadcastField = "display_message"
	FieldNote           BroadcastField = "note"
	FieldStaffMessage   BroadcastField = "staff_message"
	FieldAdminMessage   BroadcastField = "admin_message"
)

type QueueService interface {
	State(ctx context.Context) (*domain.QueueState, error)
	CallNext(ctx context.Context, input CallInput) (*domain.QueueState, error)
	Recall(ctx context.Context) (*domain.QueueState, error)
	ResetQueue(ctx context.Context) error
	SetBroadcast(ctx context.Context, field BroadcastField, text, setBy string) error
	ClearBroadcast(ctx context.Context, field BroadcastField) error
	SetCenterImage(ctx context.Context, image string) error
	ClearCenterImage(ctx context.Context) error
}
