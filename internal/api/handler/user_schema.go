package handler

import "time"

type createUserRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Username  string `json:"username"  validate:"required"`
	Password  string `json:"password"  validate:"required,pwbytes"`
}

// updateUserRequest has no role field; a client-supplied role is
// dropped during binding.
type updateUserRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"    validate:"omitempty,email"`
	Username  string `json:"username"`
	Password  string `json:"password" validate:"omitempty,pwbytes"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// userResponse mirrors the stored document. Password carries the bcrypt
// hash, never the plaintext.
type userResponse struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}
