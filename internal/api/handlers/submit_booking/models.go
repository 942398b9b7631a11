package submit_booking

import (
	"time"

	submitBooking "github.com/zied7316-tech/Xaura-sub000/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// PersonOutcomeResponse результат создания записи для одного участника
type PersonOutcomeResponse struct {
	PersonIndex   int     `json:"personIndex"`
	AppointmentID *string `json:"appointmentId,omitempty"`
	Error         *string `json:"error,omitempty"`
	Success       bool    `json:"success"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	SubmissionID string                  `json:"submissionId"`
	DraftID      string                  `json:"draftId"`
	Kind         string                  `json:"kind"`
	Requested    int                     `json:"requested"`
	Created      int                     `json:"created"`
	SeriesID     *string                 `json:"seriesId,omitempty"`
	People       []PersonOutcomeResponse `json:"people,omitempty"`
	SubmittedAt  string                  `json:"submittedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	people := make([]PersonOutcomeResponse, len(resp.People))
	for i, o := range resp.People {
		people[i] = PersonOutcomeResponse(o)
	}
	return &SubmitBookingResponse{
		SubmissionID: resp.SubmissionID,
		DraftID:      resp.DraftID,
		Kind:         resp.Kind,
		Requested:    resp.Requested,
		Created:      resp.Created,
		SeriesID:     resp.SeriesID,
		People:       people,
		SubmittedAt:  resp.SubmittedAt.Format(time.RFC3339),
	}
}
