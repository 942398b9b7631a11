package domain

import (
	"fmt"

	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

// TimeSlot represents a discrete bookable start time on the display grid
type TimeSlot struct {
	Start     types.TimeString
	Available bool
}

// GridMarks возвращает почасовые отметки сетки отображения
// Последний слот начинается за час до закрытия: запись на 17:00 не успела бы завершиться
func GridMarks() []types.TimeString {
	marks := make([]types.TimeString, 0, GridCloseHour-GridOpenHour)
	for hour := GridOpenHour; hour < GridCloseHour; hour++ {
		marks = append(marks, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return marks
}

// MapToGrid раскладывает полученные от сервиса доступности слоты по фиксированной сетке
// Часы, которые сервис не вернул, считаются недоступными
func MapToGrid(fetched []TimeSlot) []TimeSlot {
	byStart := make(map[types.TimeString]bool, len(fetched))
	for _, slot := range fetched {
		byStart[slot.Start] = slot.Available
	}

	marks := GridMarks()
	result := make([]TimeSlot, len(marks))
	for i, mark := range marks {
		result[i] = TimeSlot{
			Start:     mark,
			Available: byStart[mark],
		}
	}
	return result
}

// SlotByStart ищет слот с указанным временем начала
func SlotByStart(slots []TimeSlot, start types.TimeString) (TimeSlot, bool) {
	for _, slot := range slots {
		if slot.Start.Equal(start) {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
