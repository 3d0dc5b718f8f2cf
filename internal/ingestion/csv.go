package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/candlepulse/internal/domain/models"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// requiredColumns must appear in the header; order is free and extra columns are ignored.
var requiredColumns = []string{"code", "time", "price"}

// CSVSource reads order-book rows from a comma-separated file with a header line.
type CSVSource struct {
	Path string
}

func (s CSVSource) Name() string { return s.Path }

// Rows opens the file and reads it with ReadCSV.
func (s CSVSource) Rows(ctx context.Context) ([]models.RawTrade, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(ctx, s.Path, f)
}

// ReadCSV parses r into raw rows tagged with source.
//
// It fails on:
//   - a header without code, time or price columns
//   - a row with fewer fields than the header
//   - unrecoverable I/O errors
//
// Field contents are not validated here; the dataset package does that.
func ReadCSV(ctx context.Context, source string, r io.Reader) ([]models.RawTrade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked explicitly for a better message
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []models.RawTrade
	line := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) < len(header) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(header), len(rec))
		}

		out = append(out, models.RawTrade{
			Source: source,
			Line:   line,
			Code:   strings.TrimSpace(rec[idx["code"]]),
			Time:   strings.TrimSpace(rec[idx["time"]]),
			Price:  strings.TrimSpace(rec[idx["price"]]),
		})
	}

	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w %q in header %v", ErrMissingColumn, c, header)
		}
	}
	return idx, nil
}
