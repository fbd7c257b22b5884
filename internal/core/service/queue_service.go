package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

const commandBuffer = 64

// stateCommand is one read-modify-write step against the queue document.
type stateCommand struct {
	ctx   context.Context
	apply func(st *domain.QueueState) error
	reply chan stateResult
}

type stateResult struct {
	state *domain.QueueState
	err   error
}

// QueueService owns every mutation of the queue document. All writes flow
// through a single-consumer command loop, so two simultaneous calls can never
// interleave their read-modify-write steps and corrupt history ordering.
// Reads go straight to the repository.
type QueueService struct {
	states ports.StateRepository
	cmds   chan stateCommand
	log    zerolog.Logger
}

func NewQueueService(states ports.StateRepository, log zerolog.Logger) *QueueService {
	return &QueueService{
		states: states,
		cmds:   make(chan stateCommand, commandBuffer),
		log:    log,
	}
}

// Start launches the command loop. The loop stops when ctx is cancelled;
// commands still queued at that point are answered with the context error.
func (s *QueueService) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *QueueService) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case cmd := <-s.cmds:
					cmd.reply <- stateResult{err: ctx.Err()}
				default:
					return
				}
			}
		case cmd := <-s.cmds:
			state, err := s.execute(cmd.ctx, cmd.apply)
			cmd.reply <- stateResult{state: state, err: err}
		}
	}
}

// execute performs one load → mutate → store cycle. Mutations that fail
// validation leave the stored document untouched.
func (s *QueueService) execute(ctx context.Context, apply func(st *domain.QueueState) error) (*domain.QueueState, error) {
	state, err := s.states.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queue state: %w", err)
	}
	state.Normalize()

	if err := apply(state); err != nil {
		return nil, err
	}

	if err := s.states.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("store queue state: %w", err)
	}
	return state, nil
}

// mutate submits a command to the loop and waits for its result.
func (s *QueueService) mutate(ctx context.Context, apply func(st *domain.QueueState) error) (*domain.QueueState, error) {
	cmd := stateCommand{ctx: ctx, apply: apply, reply: make(chan stateResult, 1)}

	select {
	case s.cmds <- cmd:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res.state, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// State returns the current snapshot for the public display screen.
func (s *QueueService) State(ctx context.Context) (*domain.QueueState, error) {
	state, err := s.states.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queue state: %w", err)
	}
	state.Normalize()
	return state, nil
}

func (s *QueueService) CallNext(ctx context.Context, input ports.CallInput) (*domain.QueueState, error) {
	if input.Number == "" || !domain.ValidLane(input.Lane) {
		return nil, domain.ErrMissingFields
	}

	call := domain.TicketCall{
		Number:   input.Number,
		Lane:     input.Lane,
		CalledBy: input.CalledBy,
		CalledAt: time.Now().UTC(),
	}
	state, err := s.mutate(ctx, func(st *domain.QueueState) error {
		st.CallNext(call)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("number", call.Number).Str("lane", call.Lane).Str("by", call.CalledBy).Msg("ticket called")
	return state, nil
}

func (s *QueueService) Recall(ctx context.Context) (*domain.QueueState, error) {
	state, err := s.mutate(ctx, func(st *domain.QueueState) error {
		return st.Recall()
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("number", state.Current.Number).Msg("ticket recalled")
	return state, nil
}

func (s *QueueService) ResetQueue(ctx context.Context) error {
	_, err := s.mutate(ctx, func(st *domain.QueueState) error {
		st.ResetQueue()
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Msg("queue reset")
	return nil
}

func (s *QueueService) SetBroadcast(ctx context.Context, field ports.BroadcastField, text, setBy string) error {
	if text == "" {
		return domain.ErrMissingFields
	}
	_, err := s.mutate(ctx, func(st *domain.QueueState) error {
		return writeBroadcast(st, field, text, setBy, true)
	})
	return err
}

func (s *QueueService) ClearBroadcast(ctx context.Context, field ports.BroadcastField) error {
	_, err := s.mutate(ctx, func(st *domain.QueueState) error {
		return writeBroadcast(st, field, "", "", false)
	})
	return err
}

func (s *QueueService) SetCenterImage(ctx context.Context, image string) error {
	_, err := s.mutate(ctx, func(st *domain.QueueState) error {
		return st.SetCenterImage(image)
	})
	return err
}

func (s *QueueService) ClearCenterImage(ctx context.Context) error {
	_, err := s.mutate(ctx, func(st *domain.QueueState) error {
		st.CenterImage = ""
		return nil
	})
	return err
}

func writeBroadcast(st *domain.QueueState, field ports.BroadcastField, text, setBy string, active bool) error {
	now := time.Now().UTC()

	switch field {
	case ports.FieldTicker:
		st.Ticker = domain.Broadcast{Text: text, Active: active, SetBy: setBy, UpdatedAt: now}
	case ports.FieldDisplayMessage:
		st.DisplayMessage = domain.Broadcast{Text: text, Active: active, SetBy: setBy, UpdatedAt: now}
	case ports.FieldNote:
		st.Note = domain.Broadcast{Text: text, Active: active, SetBy: setBy, UpdatedAt: now}
	case ports.FieldStaffMessage:
		st.StaffMessage = domain.Message{Text: text, From: setBy, SentAt: now}
	case ports.FieldAdminMessage:
		st.AdminMessage = domain.Message{Text: text, From: setBy, SentAt: now}
	default:
		return fmt.Errorf("unknown broadcast field %q", field)
	}
	return nil
}
