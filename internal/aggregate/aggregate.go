// Package aggregate reduces the trades of one hour window to an OHLC candle.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/candlepulse/internal/dataset"
	"github.com/guttosm/candlepulse/internal/domain/models"
)

// Compute builds the candle of w from store.
//
// Open and Close are the first and last matching records in ingestion order;
// High and Low are the extreme prices. All four are truncated toward zero.
// It returns (nil, nil) when no record matches.
func Compute(store *dataset.Store, w HourWindow) (*models.Candle, error) {
	records := store.Query(w.Code, w.Start, w.End)
	if len(records) == 0 {
		return nil, nil
	}

	high, low := records[0].Price, records[0].Price
	for _, r := range records[1:] {
		if r.Price.GreaterThan(high) {
			high = r.Price
		}
		if r.Price.LessThan(low) {
			low = r.Price
		}
	}

	return &models.Candle{
		Open:  truncate(records[0].Price),
		High:  truncate(high),
		Low:   truncate(low),
		Close: truncate(records[len(records)-1].Price),
	}, nil
}

func truncate(d decimal.Decimal) int64 {
	return d.Truncate(0).IntPart()
}

// Aggregator computes hourly candles over a fixed store and location.
// It holds no mutable state; concurrent calls are safe.
type Aggregator struct {
	store *dataset.Store
	loc   *time.Location
}

// NewAggregator binds a store to the location hour windows are read in.
func NewAggregator(store *dataset.Store, loc *time.Location) *Aggregator {
	return &Aggregator{store: store, loc: loc}
}

// Candle returns the candle of code for the given hour, (nil, nil) when there
// is no data, or ErrInvalidWindow for impossible calendar values.
func (a *Aggregator) Candle(code string, year, month, day, hour int) (*models.Candle, error) {
	w, err := NewHourWindow(code, year, month, day, hour, a.loc)
	if err != nil {
		return nil, err
	}
	return Compute(a.store, w)
}

// Location is the zone hour windows are interpreted in.
func (a *Aggregator) Location() *time.Location { return a.loc }
