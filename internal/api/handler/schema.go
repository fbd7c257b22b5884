package handler

import "github.com/receptionhq/queue-calling/internal/core/domain"

// Request bodies. Malformed JSON binds to the zero value and fails the
// field-level validation instead of erroring outright.

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type callNextRequest struct {
	Number string `json:"number" validate:"required"`
	Gender string `json:"gender" validate:"required,oneof=male female"`
}

// recallRequest is accepted for compatibility with older clients that send a
// lane. Recall works on the combined history, so the field is ignored.
type recallRequest struct {
	Gender string `json:"gender"`
}

type broadcastRequest struct {
	Text string `json:"text" validate:"required"`
}

type imageRequest struct {
	Image string `json:"image"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

// Response envelopes. Every response carries the mandatory ok flag.

type okResponse struct {
	OK bool `json:"ok"`
}

var responseOK = okResponse{OK: true}

type loginResponse struct {
	OK       bool   `json:"ok"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type stateResponse struct {
	OK    bool               `json:"ok"`
	State *domain.QueueState `json:"state"`
}

type currentResponse struct {
	OK      bool               `json:"ok"`
	Current *domain.TicketCall `json:"current"`
}

type usersResponse struct {
	OK    bool          `json:"ok"`
	Users []domain.User `json:"users"`
}
