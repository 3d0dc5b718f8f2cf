package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTrade is one row of a tabular order-book source before normalization.
// Time and Price keep the source text verbatim.
//
// Columns:
//  1. code
//  2. time  (e.g. "2021-12-22 10:00:00 +0900 JST")
//  3. price (numeric or numeric string)
type RawTrade struct {
	Source string // file path or table the row came from
	Line   int    // 1-based data line (header excluded) or row position
	Code   string
	Time   string
	Price  string
}

// TradeRecord is a normalized, immutable trade.
//
// Time always carries an explicit UTC offset. Price keeps the exact source
// value so integer truncation happens only when a candle is built.
type TradeRecord struct {
	Code  string
	Time  time.Time
	Price decimal.Decimal
}
