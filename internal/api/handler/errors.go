package handler

// OpError attaches the operation a handler was performing to an error, so an
// unexpected failure can be reported as e.g. "Failed to create user".
type OpError struct {
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func fail(message string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Message: message, Err: err}
}

// ErrorResponse is the body of every failed request. Error carries the
// detail and is omitted for 5xx responses in production.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
