package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zied7316-tech/Xaura-sub000/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const msgMissingUserHeader = "отсутствует заголовок X-User-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его в контекст
// Аутентификацию выполняет API gateway; сервис доверяет проставленному заголовку
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get("X-User-ID")
			if userIDStr == "" {
				logger.Warn("Auth: missing X-User-ID header for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingUserHeader)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("Auth: invalid X-User-ID header %q for %s %s", userIDStr, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingUserHeader)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
