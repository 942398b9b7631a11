package models

import (
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
)

// Request модели

// CreateDraftRequest запрос на создание черновика записи
type CreateDraftRequest struct {
	UserID  int64  `json:"userId"`
	SalonID string `json:"salonId"`
}

// SetScheduleRequest запрос на выбор даты и/или времени
// Поля опциональны: можно выбрать сначала дату, затем слот
type SetScheduleRequest struct {
	UserID    int64   `json:"userId"`
	Date      *string `json:"date,omitempty"`      // YYYY-MM-DD
	SlotStart *string `json:"slotStart,omitempty"` // HH:MM
}

// Response модели

// SelectedService выбранная услуга
type SelectedService struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageRef        string  `json:"imageRef,omitempty"`
}

// PersonSelectionView выбор услуг одного участника
type PersonSelectionView struct {
	PersonIndex          int               `json:"personIndex"`
	Services             []SelectedService `json:"services"`
	TotalDurationMinutes int               `json:"totalDurationMinutes"`
	TotalPrice           float64           `json:"totalPrice"`
}

// WorkerView выбранный мастер
type WorkerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CurrentStatus string `json:"currentStatus"`
}

// SlotView временной слот на сетке отображения
type SlotView struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
}

// RecurrenceView правило повторяющейся записи
type RecurrenceView struct {
	Enabled   bool    `json:"enabled"`
	Frequency string  `json:"frequency,omitempty"`
	StartDate string  `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	DayOfWeek int     `json:"dayOfWeek"`
}

// DraftResponse полное состояние черновика записи
type DraftResponse struct {
	ID             string                `json:"id"`
	SalonID        string                `json:"salonId"`
	Step           int                   `json:"step"`
	NumberOfPeople int                   `json:"numberOfPeople"`
	People         []PersonSelectionView `json:"people"`
	Worker         *WorkerView           `json:"worker,omitempty"`
	Date           *string               `json:"date,omitempty"`
	SlotStart      *string               `json:"slotStart,omitempty"`
	Slots          []SlotView            `json:"slots,omitempty"`
	Recurrence     *RecurrenceView       `json:"recurrence,omitempty"`

	// Производные поля для удобства клиента
	RequiredDurationMinutes int     `json:"requiredDurationMinutes"`
	PrimaryServiceID        *string `json:"primaryServiceId,omitempty"`

	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainDraft конвертирует domain модель черновика в DTO
func FromDomainDraft(d *domain.BookingDraft) *DraftResponse {
	if d == nil {
		return nil
	}

	people := make([]PersonSelectionView, len(d.People))
	for i := range d.People {
		p := &d.People[i]
		services := make([]SelectedService, len(p.Services))
		for j, s := range p.Services {
			services[j] = SelectedService{
				ID:              s.ID,
				Name:            s.Name,
				Category:        s.Category,
				DurationMinutes: s.DurationMinutes,
				Price:           s.Price,
				ImageRef:        s.ImageRef,
			}
		}
		people[i] = PersonSelectionView{
			PersonIndex:          p.PersonIndex,
			Services:             services,
			TotalDurationMinutes: p.TotalDuration(),
			TotalPrice:           p.TotalPrice(),
		}
	}

	resp := &DraftResponse{
		ID:                      d.ID,
		SalonID:                 d.SalonID,
		Step:                    int(d.Step),
		NumberOfPeople:          d.NumberOfPeople,
		People:                  people,
		RequiredDurationMinutes: d.RequiredDuration(),
		Status:                  string(d.Status),
		ExpiresAt:               d.ExpiresAt,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}

	if d.Worker != nil {
		resp.Worker = &WorkerView{
			ID:            d.Worker.ID,
			Name:          d.Worker.Name,
			CurrentStatus: string(d.Worker.CurrentStatus),
		}
	}

	if d.Date != nil {
		date := d.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if d.SlotStart != nil {
		start := d.SlotStart.String()
		resp.SlotStart = &start
	}

	if d.Slots != nil {
		slots := make([]SlotView, len(d.Slots))
		for i, s := range d.Slots {
			slots[i] = SlotView{Start: s.Start.String(), Available: s.Available}
		}
		resp.Slots = slots
	}

	if d.Recurrence != nil {
		view := &RecurrenceView{
			Enabled:   d.Recurrence.Enabled,
			Frequency: string(d.Recurrence.Frequency),
			DayOfWeek: d.Recurrence.DayOfWeek,
		}
		if !d.Recurrence.StartDate.IsZero() {
			view.StartDate = d.Recurrence.StartDate.Format(domain.DateFormat)
		}
		if d.Recurrence.EndDate != nil {
			end := d.Recurrence.EndDate.Format(domain.DateFormat)
			view.EndDate = &end
		}
		resp.Recurrence = view
	}

	if primary := d.PrimaryService(); primary != nil {
		resp.PrimaryServiceID = &primary.ID
	}

	return resp
}
