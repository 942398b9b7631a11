package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом доступности
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса доступности
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetWorkerSlots получает доступные слоты работника на дату
// под требуемую суммарную длительность
func (c *Client) GetWorkerSlots(ctx context.Context, req *SlotsRequest) ([]Slot, error) {
	reqURL := fmt.Sprintf("%s/availability/worker/%s/slots", c.baseURL, url.PathEscape(req.WorkerID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	query := httpReq.URL.Query()
	query.Set("date", req.Date)
	query.Set("serviceId", req.ServiceID)
	query.Set("totalDuration", strconv.Itoa(req.TotalDuration))
	// numberOfPeople передаётся только для групповых записей
	if req.NumberOfPeople > 1 {
		query.Set("numberOfPeople", strconv.Itoa(req.NumberOfPeople))
	}
	httpReq.URL.RawQuery = query.Encode()

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid request parameters", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrWorkerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var parsed slotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Availability: fetched %d slots for worker=%s, date=%s, duration=%d",
		len(parsed.Data), req.WorkerID, req.Date, req.TotalDuration)

	return parsed.Data, nil
}
