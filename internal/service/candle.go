package service

import (
	"context"

	"github.com/guttosm/candlepulse/internal/aggregate"
	"github.com/guttosm/candlepulse/internal/domain/models"
)

// CandleService defines business logic for hourly candles.
// A nil candle with a nil error means the window holds no data.
type CandleService interface {
	GetCandle(ctx context.Context, code string, year, month, day, hour int) (*models.Candle, error)
}

type candleService struct {
	agg *aggregate.Aggregator
}

func NewCandleService(agg *aggregate.Aggregator) CandleService {
	return &candleService{agg: agg}
}

func (s *candleService) GetCandle(ctx context.Context, code string, year, month, day, hour int) (*models.Candle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.agg.Candle(code, year, month, day, hour)
}
