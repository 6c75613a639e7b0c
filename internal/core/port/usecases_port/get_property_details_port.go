package usecases_port

import (
	"context"
	"encoding/json"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, slug string) (json.RawMessage, error)
}
