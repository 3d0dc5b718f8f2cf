package models

// Candle is the OHLC summary of one code over one hour window.
// Prices are truncated toward zero to whole units.
type Candle struct {
	Open  int64
	High  int64
	Low   int64
	Close int64
}
