package services

// ServiceError carries an HTTP status alongside a user-facing message so
// controllers stay a thin translation layer.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
