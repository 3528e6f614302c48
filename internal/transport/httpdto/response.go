package httpdto

type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    data,
	}
}

func NewErrorResponse(err string, code string) Response[any] {
	return Response[any]{
		Success: false,
		Error:   err,
		Code:    code,
	}
}

// ServerErrorMessage is the production body's nested error.
type ServerErrorMessage struct {
	Message string `json:"message"`
}

// ServerErrorResponse is the body of an unexpected 500.
// Production hides the cause; other environments expose it.
type ServerErrorResponse struct {
	Error   any    `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewServerErrorResponse(err error, production bool) ServerErrorResponse {
	if production {
		return ServerErrorResponse{Error: ServerErrorMessage{Message: "server error"}}
	}
	return ServerErrorResponse{Error: err.Error(), Message: err.Error()}
}
