package status

const (
	StateRunning  = "running"
	ActiveMessage = "Backend is active"
)

// StatusResponse is the payload served by GET /api/status.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
