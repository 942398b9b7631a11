package toggle_service

// ToggleServiceRequest HTTP request model
type ToggleServiceRequest struct {
	PersonIndex int    `json:"personIndex"`
	ServiceID   string `json:"serviceId"`
}
