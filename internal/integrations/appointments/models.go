package appointments

// ServiceItem элемент списка услуг в теле запроса
type ServiceItem struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration"`
}

// CreateAppointmentRequest запрос на создание одиночной записи
//
// ServiceID дублирует первую услугу из Services для старых потребителей,
// ожидающих единственную услугу. SkipAvailabilityCheck выставляется для
// всех запросов после первого при групповой записи: первый созданный
// appointment занимает слот, и повторная проверка доступности отклонила бы
// остальных участников
type CreateAppointmentRequest struct {
	WorkerID              string        `json:"workerId"`
	ServiceID             string        `json:"serviceId"`
	Services              []ServiceItem `json:"services"`
	DateTime              string        `json:"dateTime"` // ISO8601
	Notes                 *string       `json:"notes,omitempty"`
	SkipAvailabilityCheck bool          `json:"skipAvailabilityCheck,omitempty"`
}

// PersonServices услуги одного участника групповой записи
type PersonServices struct {
	PersonIndex int           `json:"personIndex"`
	Services    []ServiceItem `json:"services"`
}

// CreateRecurringRequest запрос на создание повторяющейся серии
type CreateRecurringRequest struct {
	SalonID        string           `json:"salonId"`
	WorkerID       string           `json:"workerId"`
	ServiceID      string           `json:"serviceId"`
	Services       []ServiceItem    `json:"services"`
	Frequency      string           `json:"frequency"` // weekly | biweekly | monthly
	StartDate      string           `json:"startDate"` // YYYY-MM-DD
	EndDate        *string          `json:"endDate,omitempty"`
	DayOfWeek      int              `json:"dayOfWeek"` // 0 = воскресенье
	TimeSlot       string           `json:"timeSlot"`  // HH:MM
	NumberOfPeople int              `json:"numberOfPeople"`
	PeopleServices []PersonServices `json:"peopleServices,omitempty"`
}

// Appointment созданная запись
type Appointment struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	DateTime string `json:"dateTime"`
}

// RecurringSeries созданная повторяющаяся серия
type RecurringSeries struct {
	ID        string `json:"id"`
	Frequency string `json:"frequency"`
}

type appointmentResponse struct {
	Data Appointment `json:"data"`
}

type recurringResponse struct {
	Data RecurringSeries `json:"data"`
}
