package dto

// ErrorResponse is the error envelope: always {success:false, message}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error builds an error envelope.
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
