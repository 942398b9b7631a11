package set_schedule

// SetScheduleRequest HTTP request model
// Поля опциональны: можно выбрать сначала дату, затем время
type SetScheduleRequest struct {
	Date      *string `json:"date,omitempty"`      // YYYY-MM-DD
	SlotStart *string `json:"slotStart,omitempty"` // HH:MM
}
