package status

// Service reports the backend status.
type Service struct{}

// NewService constructs a new status service.
func NewService() *Service {
	return &Service{}
}

// Status returns a fresh status payload on every call.
func (s *Service) Status() StatusResponse {
	return StatusResponse{
		Status:  StateRunning,
		Message: ActiveMessage,
	}
}
