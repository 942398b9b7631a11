package domain

// Business validation constants
const (
	MinNumberOfPeople = 1
	MaxNumberOfPeople = 10

	MaxNotesLength = 500
)

// Display grid bounds: слоты показываются почасовой сеткой
// с первого слота в 09:00 до закрытия салона в 17:00
const (
	GridOpenHour  = 9
	GridCloseHour = 17
)

// Default configuration values
const (
	DefaultDraftTTLHours = 24
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
