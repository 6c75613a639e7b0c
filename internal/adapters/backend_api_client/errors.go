package backend_api_client

import (
	"errors"
	"fmt"
)

// ErrBackendURLNotConfigured — ошибка конфигурации: серверный вызов
// backend невозможен без BACKEND_API_URL. Не ретраится, наружу уходит
// как HTTP 500.
var ErrBackendURLNotConfigured = errors.New("BACKEND_API_URL environment variable is required")

// BackendError — backend ответил не-2xx статусом.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned non-success status code %d: %s", e.Status, e.Body)
}

// NetworkError — транспорт не доставил запрос (DNS, таймаут, reset).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound сообщает, что backend ответил 404 — для читающих путей это
// "объекта нет", а не ошибка.
func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Status == 404
}
