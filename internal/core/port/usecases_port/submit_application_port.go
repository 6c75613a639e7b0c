package usecases_port

import (
	"context"
	"encoding/json"

	"catalog-gateway/internal/core/domain"
)

type SubmitApplicationUseCase interface {
	Execute(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error)
}
