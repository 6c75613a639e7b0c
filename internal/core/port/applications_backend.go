package port

import (
	"context"
	"encoding/json"

	"catalog-gateway/internal/core/domain"
)

// ApplicationsBackendPort — отправка заявок в backend.
// Форма должна быть уже провалидирована и с нормализованным телефоном:
// этот порт только формирует wire-тело и выполняет запрос.
// В отличие от портов чтения, ошибки отсюда всегда доходят до пользователя.
type ApplicationsBackendPort interface {
	SubmitRequest(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error)
	SubmitContactApplication(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error)
	SubmitLandPlotApplication(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error)
}
