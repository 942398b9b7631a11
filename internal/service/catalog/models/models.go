package models

import (
	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	"github.com/zied7316-tech/Xaura-sub000/internal/integrations/salonservice"
)

// Salon данные салона
type Salon struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Service услуга из каталога
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageRef        string  `json:"imageRef,omitempty"`
}

// Worker работник салона
type Worker struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CurrentStatus string `json:"currentStatus"`
}

// Catalog каталог салона: услуги и работники
type Catalog struct {
	Salon    Salon     `json:"salon"`
	Services []Service `json:"services"`
	Workers  []Worker  `json:"workers"`
}

// FromIntegrationCatalog конвертирует ответ SalonService в модель сервиса
func FromIntegrationCatalog(c *salonservice.Catalog) *Catalog {
	services := make([]Service, len(c.Services))
	for i, s := range c.Services {
		services[i] = Service{
			ID:              s.ID,
			Name:            s.Name,
			Category:        s.Category,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			ImageRef:        s.Image,
		}
	}

	workers := make([]Worker, len(c.Workers))
	for i, w := range c.Workers {
		workers[i] = Worker{
			ID:            w.ID,
			Name:          w.Name,
			CurrentStatus: w.CurrentStatus,
		}
	}

	return &Catalog{
		Salon: Salon{
			ID:      c.Salon.ID,
			Name:    c.Salon.Name,
			Address: c.Salon.Address,
			Phone:   c.Salon.Phone,
		},
		Services: services,
		Workers:  workers,
	}
}

// ServiceByID ищет услугу каталога и возвращает её domain-представление
func (c *Catalog) ServiceByID(id string) (*domain.Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return &domain.Service{
				ID:              s.ID,
				Name:            s.Name,
				Category:        s.Category,
				DurationMinutes: s.DurationMinutes,
				Price:           s.Price,
				ImageRef:        s.ImageRef,
			}, true
		}
	}
	return nil, false
}

// WorkerByID ищет работника каталога и возвращает его domain-представление
func (c *Catalog) WorkerByID(id string) (*domain.Worker, bool) {
	for _, w := range c.Workers {
		if w.ID == id {
			return &domain.Worker{
				ID:            w.ID,
				Name:          w.Name,
				CurrentStatus: domain.WorkerStatus(w.CurrentStatus),
			}, true
		}
	}
	return nil, false
}
