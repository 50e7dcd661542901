package dto

// APIResponse is the envelope every handler returns; callers always receive
// a structured success/failure payload, never a raw fault.
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKWithMessage wraps data and a message in a success envelope.
func OKWithMessage(data any, message string) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope with a message.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// FailWithErrors builds a failure envelope with a message and detail lines.
func FailWithErrors(message string, errs []string) APIResponse {
	return APIResponse{Success: false, Message: message, Errors: errs}
}
