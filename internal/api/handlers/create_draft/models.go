package create_draft

// CreateDraftRequest HTTP request model
type CreateDraftRequest struct {
	SalonID string `json:"salonId"`
}
