// Package dataset holds the immutable, normalized trade records that candles
// are computed from.
package dataset

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/candlepulse/internal/domain/models"
)

// LoadOptions selects the malformed-row policy.
//
//   - SkipMalformed=false (default): the first malformed row aborts the load; no
//     partial dataset is ever returned.
//   - SkipMalformed=true: malformed rows are logged at warn level and dropped.
type LoadOptions struct {
	SkipMalformed bool
	Logger        *zerolog.Logger
}

// Store is a read-only sequence of trades in ingestion order.
// It is safe for concurrent use once constructed.
type Store struct {
	records []models.TradeRecord
	skipped int
}

// Load normalizes raw rows into a Store, preserving their order.
func Load(rows []models.RawTrade, opts LoadOptions) (*Store, error) {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	s := &Store{records: make([]models.TradeRecord, 0, len(rows))}
	for _, row := range rows {
		rec, err := normalizeRow(row)
		if err != nil {
			if !opts.SkipMalformed {
				return nil, err
			}
			log.Warn().Err(err).Str("source", row.Source).Int("line", row.Line).Msg("skipping malformed row")
			s.skipped++
			continue
		}
		s.records = append(s.records, rec)
	}
	return s, nil
}

// New builds a Store from already-normalized records. The slice is copied.
func New(records []models.TradeRecord) *Store {
	return &Store{records: append([]models.TradeRecord(nil), records...)}
}

func normalizeRow(row models.RawTrade) (models.TradeRecord, error) {
	wrap := func(err error) error {
		return &RowError{Source: row.Source, Line: row.Line, Err: err}
	}

	normalized, err := NormalizeTimestamp(row.Time)
	if err != nil {
		return models.TradeRecord{}, wrap(err)
	}
	ts, err := ParseTimestamp(normalized)
	if err != nil {
		return models.TradeRecord{}, wrap(err)
	}
	price, err := ParsePrice(row.Price)
	if err != nil {
		return models.TradeRecord{}, wrap(err)
	}
	return models.TradeRecord{Code: row.Code, Time: ts, Price: price}, nil
}

// Query returns the records of code whose time lies in [start, end], both ends
// inclusive, in ingestion order. Code comparison is exact and case-sensitive.
func (s *Store) Query(code string, start, end time.Time) []models.TradeRecord {
	var out []models.TradeRecord
	for _, r := range s.records {
		if r.Code != code {
			continue
		}
		if r.Time.Before(start) || r.Time.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Len is the number of loaded records.
func (s *Store) Len() int { return len(s.records) }

// Skipped is the number of malformed rows dropped under SkipMalformed.
func (s *Store) Skipped() int { return s.skipped }

// Codes lists distinct codes in first-seen order.
func (s *Store) Codes() []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, r := range s.records {
		if _, ok := seen[r.Code]; ok {
			continue
		}
		seen[r.Code] = struct{}{}
		codes = append(codes, r.Code)
	}
	return codes
}

// IsMalformed reports whether err came from a row the store rejected.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedTimestamp) || errors.Is(err, ErrMalformedPrice)
}
