package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecurrenceRule_SetStartDate(t *testing.T) {
	rule := &RecurrenceRule{Enabled: true, Frequency: FrequencyWeekly}

	// 2026-03-09 - понедельник
	rule.SetStartDate(date(2026, time.March, 9))
	assert.Equal(t, 1, rule.DayOfWeek)

	// Перенос даты пересчитывает день недели
	rule.SetStartDate(date(2026, time.March, 14))
	assert.Equal(t, 6, rule.DayOfWeek)
}

func TestRecurrenceRule_OverrideDayOfWeek(t *testing.T) {
	rule := &RecurrenceRule{Enabled: true, Frequency: FrequencyWeekly}
	rule.SetStartDate(date(2026, time.March, 9))

	rule.OverrideDayOfWeek(5)
	assert.Equal(t, 5, rule.DayOfWeek)

	// Явно заданный день недели переживает смену даты начала
	rule.SetStartDate(date(2026, time.April, 1))
	assert.Equal(t, 5, rule.DayOfWeek)
}

func TestRecurrenceRule_ValidateDates(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	end := date(2026, time.March, 1)

	tests := []struct {
		name    string
		rule    RecurrenceRule
		wantErr error
	}{
		{
			name: "disabled rule is always valid",
			rule: RecurrenceRule{Enabled: false},
		},
		{
			name:    "enabled without start date",
			rule:    RecurrenceRule{Enabled: true},
			wantErr: ErrRecurrenceStartRequired,
		},
		{
			name: "start today is allowed",
			rule: RecurrenceRule{Enabled: true, StartDate: date(2026, time.March, 10)},
		},
		{
			name: "start in the future",
			rule: RecurrenceRule{Enabled: true, StartDate: date(2026, time.March, 20)},
		},
		{
			name:    "start in the past",
			rule:    RecurrenceRule{Enabled: true, StartDate: date(2026, time.March, 9)},
			wantErr: ErrRecurrenceStartInPast,
		},
		{
			name: "end before start",
			rule: RecurrenceRule{
				Enabled:   true,
				StartDate: date(2026, time.March, 20),
				EndDate:   &end,
			},
			wantErr: ErrRecurrenceEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.ValidateDates(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFrequency_IsValid(t *testing.T) {
	assert.True(t, FrequencyWeekly.IsValid())
	assert.True(t, FrequencyBiweekly.IsValid())
	assert.True(t, FrequencyMonthly.IsValid())
	assert.False(t, Frequency("daily").IsValid())
	assert.False(t, Frequency("").IsValid())
}
