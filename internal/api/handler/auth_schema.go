package handler

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyUserResponse struct {
	Message bool   `json:"message"`
	Token   string `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
