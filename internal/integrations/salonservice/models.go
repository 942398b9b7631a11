package salonservice

// Salon модель салона из SalonService
type Salon struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	QRCode  string `json:"qrCode"`
}

// Service модель услуги из каталога салона
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
}

// Worker модель работника салона
// currentStatus: available | on_break | offline
type Worker struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CurrentStatus string `json:"currentStatus"`
}

// Catalog каталог салона: сам салон, его услуги и работники
type Catalog struct {
	Salon    Salon     `json:"salon"`
	Services []Service `json:"services"`
	Workers  []Worker  `json:"workers"`
}

// catalogResponse обертка ответа SalonService
type catalogResponse struct {
	Data Catalog `json:"data"`
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
