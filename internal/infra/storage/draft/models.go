package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

// jsonb-представления вложенных структур черновика

type serviceJSON struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageRef        string  `json:"imageRef"`
}

type personSelectionJSON struct {
	PersonIndex int           `json:"personIndex"`
	Services    []serviceJSON `json:"services"`
}

type workerJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CurrentStatus string `json:"currentStatus"`
}

type slotJSON struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
}

type recurrenceJSON struct {
	Enabled             bool       `json:"enabled"`
	Frequency           string     `json:"frequency"`
	StartDate           time.Time  `json:"startDate"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	DayOfWeek           int        `json:"dayOfWeek"`
	DayOfWeekOverridden bool       `json:"dayOfWeekOverridden"`
}

func marshalPeople(people []domain.PersonSelection) ([]byte, error) {
	rows := make([]personSelectionJSON, len(people))
	for i, p := range people {
		services := make([]serviceJSON, len(p.Services))
		for j, s := range p.Services {
			services[j] = serviceJSON(s)
		}
		rows[i] = personSelectionJSON{PersonIndex: p.PersonIndex, Services: services}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: people: %v", ErrMarshal, err)
	}
	return data, nil
}

func unmarshalPeople(data []byte) ([]domain.PersonSelection, error) {
	var rows []personSelectionJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: people: %v", ErrUnmarshal, err)
	}

	people := make([]domain.PersonSelection, len(rows))
	for i, row := range rows {
		services := make([]domain.Service, len(row.Services))
		for j, s := range row.Services {
			services[j] = domain.Service(s)
		}
		people[i] = domain.PersonSelection{PersonIndex: row.PersonIndex, Services: services}
	}
	return people, nil
}

func marshalWorker(worker *domain.Worker) ([]byte, error) {
	if worker == nil {
		return nil, nil
	}
	data, err := json.Marshal(workerJSON{
		ID:            worker.ID,
		Name:          worker.Name,
		CurrentStatus: string(worker.CurrentStatus),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: worker: %v", ErrMarshal, err)
	}
	return data, nil
}

func unmarshalWorker(data []byte) (*domain.Worker, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var row workerJSON
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("%w: worker: %v", ErrUnmarshal, err)
	}
	return &domain.Worker{
		ID:            row.ID,
		Name:          row.Name,
		CurrentStatus: domain.WorkerStatus(row.CurrentStatus),
	}, nil
}

func marshalSlots(slots []domain.TimeSlot) ([]byte, error) {
	if slots == nil {
		return nil, nil
	}
	rows := make([]slotJSON, len(slots))
	for i, s := range slots {
		rows[i] = slotJSON{Start: s.Start.String(), Available: s.Available}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: slots: %v", ErrMarshal, err)
	}
	return data, nil
}

func unmarshalSlots(data []byte) ([]domain.TimeSlot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []slotJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: slots: %v", ErrUnmarshal, err)
	}
	slots := make([]domain.TimeSlot, len(rows))
	for i, row := range rows {
		slots[i] = domain.TimeSlot{Start: types.TimeString(row.Start), Available: row.Available}
	}
	return slots, nil
}

func parseSlotStart(s string) (*types.TimeString, error) {
	// Колонка VARCHAR(5) хранит строго "HH:MM"
	start, err := types.NewTimeStringFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: slot_start: %v", ErrUnmarshal, err)
	}
	return &start, nil
}

func marshalRecurrence(rule *domain.RecurrenceRule) ([]byte, error) {
	if rule == nil {
		return nil, nil
	}
	data, err := json.Marshal(recurrenceJSON{
		Enabled:             rule.Enabled,
		Frequency:           string(rule.Frequency),
		StartDate:           rule.StartDate,
		EndDate:             rule.EndDate,
		DayOfWeek:           rule.DayOfWeek,
		DayOfWeekOverridden: rule.DayOfWeekOverridden,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence: %v", ErrMarshal, err)
	}
	return data, nil
}

func unmarshalRecurrence(data []byte) (*domain.RecurrenceRule, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var row recurrenceJSON
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("%w: recurrence: %v", ErrUnmarshal, err)
	}
	return &domain.RecurrenceRule{
		Enabled:             row.Enabled,
		Frequency:           domain.Frequency(row.Frequency),
		StartDate:           row.StartDate,
		EndDate:             row.EndDate,
		DayOfWeek:           row.DayOfWeek,
		DayOfWeekOverridden: row.DayOfWeekOverridden,
	}, nil
}
