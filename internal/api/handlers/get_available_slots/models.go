package get_available_slots

import (
	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	getAvailableSlots "github.com/zied7316-tech/Xaura-sub000/internal/usecase/get_available_slots"
)

// SlotResponse временной слот на сетке отображения
type SlotResponse struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	DraftID              string         `json:"draftId"`
	Date                 string         `json:"date"`
	TotalDurationMinutes int            `json:"totalDurationMinutes"`
	NumberOfPeople       int            `json:"numberOfPeople"`
	Slots                []SlotResponse `json:"slots"`
	Stale                bool           `json:"stale,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{Start: s.Start.String(), Available: s.Available}
	}
	return &SlotsResponse{
		DraftID:              resp.DraftID,
		Date:                 resp.Date.Format(domain.DateFormat),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		NumberOfPeople:       resp.NumberOfPeople,
		Slots:                slots,
		Stale:                resp.Stale,
	}
}
