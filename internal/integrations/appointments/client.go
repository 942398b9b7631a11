package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом записей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса записей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateAppointment создает одиночную запись
func (c *Client) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	var parsed appointmentResponse
	if err := c.post(ctx, c.baseURL+"/appointments", req, &parsed); err != nil {
		return nil, err
	}

	c.log.Info("Appointments: created appointment id=%s, worker=%s, dateTime=%s",
		parsed.Data.ID, req.WorkerID, req.DateTime)

	return &parsed.Data, nil
}

// CreateRecurringSeries создает повторяющуюся серию записей
func (c *Client) CreateRecurringSeries(ctx context.Context, req *CreateRecurringRequest) (*RecurringSeries, error) {
	var parsed recurringResponse
	if err := c.post(ctx, c.baseURL+"/advanced-booking/recurring", req, &parsed); err != nil {
		return nil, err
	}

	c.log.Info("Appointments: created recurring series id=%s, worker=%s, frequency=%s",
		parsed.Data.ID, req.WorkerID, req.Frequency)

	return &parsed.Data, nil
}

func (c *Client) post(ctx context.Context, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return ErrSlotNotAvailable
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrValidation, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
