package domain

// Service represents a salon service from the catalog
// Immutable once fetched; selection state references services, never mutates them
type Service struct {
	ID              string
	Name            string
	Category        string
	DurationMinutes int
	Price           float64
	ImageRef        string
}

// WorkerStatus represents the current status of a salon worker
type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "available"
	WorkerOnBreak   WorkerStatus = "on_break"
	WorkerOffline   WorkerStatus = "offline"
)

// Worker represents a salon worker
// Статус носит информационный характер: работник в любом статусе доступен для выбора
type Worker struct {
	ID            string
	Name          string
	CurrentStatus WorkerStatus
}

// IsKnownStatus returns true for one of the three supported statuses
func (s WorkerStatus) IsKnownStatus() bool {
	return s == WorkerAvailable || s == WorkerOnBreak || s == WorkerOffline
}
