package domain

import (
	"time"

	"github.com/zied7316-tech/Xaura-sub000/pkg/types"
)

// DraftStatus статус черновика записи
type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusSubmitted DraftStatus = "submitted"
)

// Step шаг мастера записи
type Step int

const (
	StepSelectServices Step = 1 // выбор услуг (по участникам)
	StepSelectWorker   Step = 2 // выбор мастера
	StepSelectSchedule Step = 3 // выбор даты/времени и отправка
)

// IsValid returns true for one of the three wizard steps
func (s Step) IsValid() bool {
	return s >= StepSelectServices && s <= StepSelectSchedule
}

// PersonSelection выбор услуг одного участника групповой записи
// Порядок услуг - порядок добавления (влияет только на отображение,
// суммы длительности и цены от порядка не зависят)
type PersonSelection struct {
	PersonIndex int
	Services    []Service
}

// TotalDuration суммарная длительность услуг участника в минутах
func (p *PersonSelection) TotalDuration() int {
	total := 0
	for _, svc := range p.Services {
		total += svc.DurationMinutes
	}
	return total
}

// TotalPrice суммарная цена услуг участника
func (p *PersonSelection) TotalPrice() float64 {
	total := 0.0
	for _, svc := range p.Services {
		total += svc.Price
	}
	return total
}

// HasServices возвращает true, если участник выбрал хотя бы одну услугу
func (p *PersonSelection) HasServices() bool {
	return len(p.Services) > 0
}

// BookingDraft черновик записи - агрегат состояния мастера
//
// Инварианты:
//   - индексы участников непрерывны: 0..NumberOfPeople-1
//   - len(People) == NumberOfPeople в любой момент
//   - мастер один на всех участников независимо от их количества
type BookingDraft struct {
	ID             string
	UserID         int64
	SalonID        string
	Step           Step
	NumberOfPeople int
	People         []PersonSelection
	Worker         *Worker
	Date           *time.Time
	SlotStart      *types.TimeString

	// Слоты последней успешной загрузки доступности
	// SlotFetchGeneration растёт при каждом запросе; ответы устаревших
	// поколений отбрасываются и не могут перезаписать более новые
	Slots               []TimeSlot
	SlotFetchGeneration int64

	Recurrence *RecurrenceRule

	Status    DraftStatus
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingDraft создает черновик на первом шаге с одним участником без услуг
func NewBookingDraft(id string, userID int64, salonID string, now time.Time, ttl time.Duration) *BookingDraft {
	return &BookingDraft{
		ID:             id,
		UserID:         userID,
		SalonID:        salonID,
		Step:           StepSelectServices,
		NumberOfPeople: 1,
		People:         []PersonSelection{{PersonIndex: 0, Services: []Service{}}},
		Status:         DraftStatusDraft,
		ExpiresAt:      now.Add(ttl),
	}
}

// IsSubmitted возвращает true, если черновик уже отправлен
func (d *BookingDraft) IsSubmitted() bool {
	return d.Status == DraftStatusSubmitted
}

// IsExpired возвращает true, если срок жизни черновика истёк
func (d *BookingDraft) IsExpired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}

// ToggleService переключает услугу у участника: если услуга уже выбрана
// (по ID) - убирает её, иначе добавляет в конец списка
func (d *BookingDraft) ToggleService(personIndex int, svc Service) error {
	if personIndex < 0 || personIndex >= len(d.People) {
		return ErrPersonIndexOutOfRange
	}

	person := &d.People[personIndex]
	for i, selected := range person.Services {
		if selected.ID == svc.ID {
			person.Services = append(person.Services[:i], person.Services[i+1:]...)
			return nil
		}
	}

	person.Services = append(person.Services, svc)
	return nil
}

// SetNumberOfPeople изменяет количество участников с ресинхронизацией списка выборов
// Значение ограничивается диапазоном [MinNumberOfPeople, MaxNumberOfPeople]
// При увеличении добавляются участники с пустыми списками услуг,
// при уменьшении лишние отбрасываются с хвоста; выбор оставшихся сохраняется
func (d *BookingDraft) SetNumberOfPeople(n int) {
	if n < MinNumberOfPeople {
		n = MinNumberOfPeople
	}
	if n > MaxNumberOfPeople {
		n = MaxNumberOfPeople
	}

	for len(d.People) < n {
		d.People = append(d.People, PersonSelection{
			PersonIndex: len(d.People),
			Services:    []Service{},
		})
	}
	if len(d.People) > n {
		d.People = d.People[:n]
	}

	d.NumberOfPeople = n
}

// SelectWorker безусловно заменяет выбранного мастера
// Статус мастера не проверяется: он влияет только на подсказку в интерфейсе
func (d *BookingDraft) SelectWorker(w Worker) {
	worker := w
	d.Worker = &worker
}

// PrimaryService возвращает "основную" услугу - первую услугу первого участника
// Используется только для обратной совместимости со старыми потребителями API,
// которые ожидают единственную услугу
func (d *BookingDraft) PrimaryService() *Service {
	if len(d.People) == 0 || len(d.People[0].Services) == 0 {
		return nil
	}
	svc := d.People[0].Services[0]
	return &svc
}

// RequiredDuration вычисляет требуемую длительность слота в минутах
//
// Для одного участника - сумма длительностей его услуг
// Для группы - МАКСИМУМ из сумм по участникам, а не сумма по всем:
// все участники обслуживаются одновременно одним мастером, поэтому слот
// должен вместить самую долгую индивидуальную запись
func (d *BookingDraft) RequiredDuration() int {
	if len(d.People) == 0 {
		return 0
	}
	if d.NumberOfPeople == 1 {
		return d.People[0].TotalDuration()
	}

	max := 0
	for i := range d.People {
		if duration := d.People[i].TotalDuration(); duration > max {
			max = duration
		}
	}
	return max
}

// AllPeopleHaveServices возвращает true, когда каждый участник выбрал хотя бы одну услугу
func (d *BookingDraft) AllPeopleHaveServices() bool {
	for i := range d.People {
		if !d.People[i].HasServices() {
			return false
		}
	}
	return len(d.People) > 0
}

// CanEnterStep проверяет, выполнены ли условия входа на шаг
// Шаг 2 требует хотя бы одну услугу у каждого участника, шаг 3 - выбранного мастера
func (d *BookingDraft) CanEnterStep(step Step) bool {
	switch step {
	case StepSelectServices:
		return true
	case StepSelectWorker:
		return d.AllPeopleHaveServices()
	case StepSelectSchedule:
		return d.AllPeopleHaveServices() && d.Worker != nil
	default:
		return false
	}
}

// SetStep переводит мастер на указанный шаг
// Назад можно всегда, вперед - только при выполненных условиях шага
func (d *BookingDraft) SetStep(step Step) error {
	if !step.IsValid() {
		return ErrStepNotReachable
	}
	if step <= d.Step {
		d.Step = step
		return nil
	}
	if !d.CanEnterStep(step) {
		return ErrStepNotReachable
	}
	d.Step = step
	return nil
}

// InvalidateSlots сбрасывает загруженные слоты и выбранное время
// Вызывается при изменении входов запроса доступности (услуги, мастер, дата)
func (d *BookingDraft) InvalidateSlots() {
	d.Slots = nil
	d.SlotStart = nil
}

// SelectedSlot возвращает выбранный слот из текущего списка, если он там есть
func (d *BookingDraft) SelectedSlot() (TimeSlot, bool) {
	if d.SlotStart == nil {
		return TimeSlot{}, false
	}
	return SlotByStart(d.Slots, *d.SlotStart)
}
