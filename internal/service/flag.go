package service

import (
	"context"
	"errors"

	"github.com/guttosm/candlepulse/internal/logger"
)

// ErrMissingFlag is returned when the flag value is absent or empty.
var ErrMissingFlag = errors.New("missing flag")

// FlagService acknowledges opaque flag signals. It is independent of the dataset.
type FlagService interface {
	Receive(ctx context.Context, flag any) (any, error)
}

type flagService struct{}

func NewFlagService() FlagService {
	return flagService{}
}

// Receive logs and echoes flag. JSON values that are falsy (null, "", false,
// 0, [] and {}) count as missing.
func (flagService) Receive(_ context.Context, flag any) (any, error) {
	if isEmptyFlag(flag) {
		logger.L().Warn().Msg("missing flag in the request")
		return nil, ErrMissingFlag
	}
	logger.L().Info().Interface("flag", flag).Msg("received flag")
	return flag, nil
}

func isEmptyFlag(v any) bool {
	switch f := v.(type) {
	case nil:
		return true
	case string:
		return f == ""
	case bool:
		return !f
	case float64:
		return f == 0
	case []any:
		return len(f) == 0
	case map[string]any:
		return len(f) == 0
	default:
		return false
	}
}
