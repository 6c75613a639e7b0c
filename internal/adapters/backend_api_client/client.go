package backend_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/port"

	lru "github.com/hashicorp/golang-lru/v2"
)

const responseCacheSize = 256

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// Client — обертка над HTTP-вызовами к backend каталога.
// Реализует порты чтения и отправки заявок: выполняет запрос,
// превращает не-2xx ответы в *BackendError, транспортные сбои в
// *NetworkError и адаптирует wire-формат в модель отображения.
//
// GET-ответы кэшируются рекомендательно (TTL по семейству endpoint'а);
// кэш хранит сырые байты тела, так что декодирование и адаптация
// ведут себя одинаково на кэшированных и свежих данных.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, cacheEntry]
}

// NewClient — конструктор. baseURL может быть пустым: тогда каждый
// вызов вернет ErrBackendURLNotConfigured (ошибка конфигурации
// всплывает на конкретном запросе, а не валит процесс на старте).
func NewClient(baseURL string) (*Client, error) {
	cache, err := lru.New[string, cacheEntry](responseCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		cache:      cache,
	}, nil
}

func (c *Client) resolveBaseURL() (string, error) {
	if c.baseURL == "" {
		return "", ErrBackendURLNotConfigured
	}
	return c.baseURL, nil
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, fullURL string, body io.Reader) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Пробрасываем трассировку в backend
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: fullURL, Err: err}
	}
	return resp, nil
}

// getJSON выполняет GET и декодирует 2xx ответ в out.
// ttl > 0 включает рекомендательный кэш по полному URL.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, ttl time.Duration, out interface{}) error {
	raw, err := c.getRaw(ctx, endpoint, params, ttl)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response from backend: %w", err)
	}
	return nil
}

// getRaw возвращает сырое тело 2xx ответа (для кэша и pass-through).
func (c *Client) getRaw(ctx context.Context, endpoint string, params url.Values, ttl time.Duration) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"endpoint":  endpoint,
	})

	baseURL, err := c.resolveBaseURL()
	if err != nil {
		logger.Error("Backend base URL is not configured", err, nil)
		return nil, err
	}

	fullURL := baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	if ttl > 0 {
		if entry, ok := c.cache.Get(fullURL); ok && time.Now().Before(entry.expiresAt) {
			logger.Debug("Serving backend response from cache", port.Fields{"url": fullURL})
			return entry.body, nil
		}
	}

	logger.Debug("Sending request to backend", port.Fields{"url": fullURL})

	resp, err := c.doRequest(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		logger.Error("Failed to perform request to backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		backendErr := &BackendError{Status: resp.StatusCode, Body: string(bodyBytes)}
		logger.Error("Received error response from backend", backendErr, port.Fields{"status_code": resp.StatusCode})
		return nil, backendErr
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read response body: %w", readErr)
	}

	if ttl > 0 {
		c.cache.Add(fullURL, cacheEntry{body: bodyBytes, expiresAt: time.Now().Add(ttl)})
	}

	return bodyBytes, nil
}

// postJSON выполняет POST с JSON-телом и возвращает сырое тело ответа.
// Заявки никогда не кэшируются.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload interface{}) (json.RawMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"endpoint":  endpoint,
	})

	baseURL, err := c.resolveBaseURL()
	if err != nil {
		logger.Error("Backend base URL is not configured", err, nil)
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	fullURL := baseURL + endpoint
	logger.Debug("Sending POST request to backend", port.Fields{"url": fullURL})

	resp, err := c.doRequest(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to perform request to backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		backendErr := &BackendError{Status: resp.StatusCode, Body: string(respBody)}
		logger.Error("Received error response from backend", backendErr, port.Fields{"status_code": resp.StatusCode})
		return nil, backendErr
	}

	return json.RawMessage(respBody), nil
}
