package rest

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/port"
)

// NewBackendProxy создает обратный прокси на backend каталога для
// запросов, у которых нет локального обработчика. Входящий путь
// /api/что-угодно уходит в backend как <target>/что-угодно.
//
// Если BACKEND_API_URL не задан, прокси отвечает 500 с JSON-ошибкой —
// тем же контрактом, что и локальные обработчики.
func NewBackendProxy(targetURL string, baseLogger port.LoggerPort) http.Handler {
	proxyLogger := baseLogger.WithFields(port.Fields{"component": "backend_proxy"})

	if targetURL == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			proxyLogger.Error("Proxy request rejected: backend URL is not configured", nil, port.Fields{
				"http_path": r.URL.Path,
			})
			WriteJSONError(w, http.StatusInternalServerError, "Backend is not configured")
		})
	}

	target, err := url.Parse(targetURL)
	if err != nil {
		proxyLogger.Error("Invalid backend URL, proxy disabled", err, port.Fields{"url": targetURL})
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			WriteJSONError(w, http.StatusInternalServerError, "Backend is not configured")
		})
	}

	proxy := httputil.NewSingleHostReverseProxy(target)

	proxy.Director = func(req *http.Request) {
		req.URL.Scheme = target.Scheme
		req.URL.Host = target.Host
		req.Host = target.Host

		// /api/v1/news → <target path>/v1/news
		// ВАЖНО: req.URL.Path не содержит query-параметров, они в req.URL.RawQuery
		req.URL.Path = target.Path + strings.TrimPrefix(req.URL.Path, "/api")

		// Пробрасываем трассировку в backend
		traceID := contextkeys.TraceIDFromContext(req.Context())
		if traceID != "" {
			req.Header.Set("X-Trace-ID", traceID)
		}
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		proxyLogger.Error("Proxy request to backend failed", err, port.Fields{
			"http_path": r.URL.Path,
		})
		WriteJSONError(w, http.StatusBadGateway, "Backend is unavailable")
	}

	return proxy
}
