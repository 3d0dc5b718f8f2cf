package dto

// CandleQuery binds the GET /candle query string.
//
// Pointers distinguish a missing parameter from a legitimate zero (hour=0).
type CandleQuery struct {
	Code  string `form:"code" binding:"required"`
	Year  *int   `form:"year" binding:"required"`
	Month *int   `form:"month" binding:"required"`
	Day   *int   `form:"day" binding:"required"`
	Hour  *int   `form:"hour" binding:"required"`
}

// CandleResponse represents the JSON structure returned by GET /candle.
type CandleResponse struct {
	Open  int64 `json:"open" example:"100"`
	High  int64 `json:"high" example:"150"`
	Low   int64 `json:"low" example:"90"`
	Close int64 `json:"close" example:"120"`
}
