package services

// ErrorKind classifies service failures so controllers can map them to HTTP
// status codes without string matching.
type ErrorKind int

const (
	ErrorValidation ErrorKind = iota
	ErrorNotFound
	ErrorInvalidState
	ErrorConflict
	ErrorForbidden
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func validationErr(message string) *ServiceError {
	return &ServiceError{Kind: ErrorValidation, Message: message}
}

func notFoundErr(message string) *ServiceError {
	return &ServiceError{Kind: ErrorNotFound, Message: message}
}

func invalidStateErr(message string) *ServiceError {
	return &ServiceError{Kind: ErrorInvalidState, Message: message}
}

func conflictErr(message string) *ServiceError {
	return &ServiceError{Kind: ErrorConflict, Message: message}
}

func forbiddenErr(message string) *ServiceError {
	return &ServiceError{Kind: ErrorForbidden, Message: message}
}
