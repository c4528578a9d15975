package handler

import "time"

type createMessageRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending read responded"`
}

type listMessagesQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending read responded"`
	Limit  int    `query:"limit"  validate:"min=0"`
	Offset int    `query:"offset" validate:"min=0"`
}

type contactMessageResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
