package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/candlepulse/internal/aggregate"
	"github.com/guttosm/candlepulse/internal/domain/dto"
	"github.com/guttosm/candlepulse/internal/middleware"
	"github.com/guttosm/candlepulse/internal/service"
)

// Client-facing error messages.
const (
	msgInvalidQuery  = "code, year, month, day and hour are required integers"
	msgInvalidWindow = "invalid window"
	msgNoData        = "No data found for the given parameters"
	msgCandleFailed  = "failed to compute candle"
	msgMissingFlag   = "Missing flag"
)

// Handler provides HTTP handlers for candle and flag endpoints.
//
// Responsibilities:
//   - Bind and validate query parameters and JSON bodies
//   - Delegate to the candle and flag services
//   - Map service outcomes to status codes and response DTOs
type Handler struct {
	candles service.CandleService
	flags   service.FlagService
}

// NewHandler constructs a Handler from its services.
func NewHandler(candles service.CandleService, flags service.FlagService) *Handler {
	return &Handler{candles: candles, flags: flags}
}

// GetCandle handles GET /candle requests.
//
// Responses:
//   - 200 OK: open/high/low/close of the hour, truncated to integers.
//   - 400 Bad Request: missing or non-integer parameters, or an impossible date/hour.
//   - 404 Not Found: no trade for the code inside the hour.
//   - 500 Internal Server Error: anything else.
//
// GetCandle godoc
// @Summary      Get hourly candle
// @Description  Returns the OHLC candle of one instrument over one clock hour (hh:00:00 to hh:59:59, Japan time)
// @Tags         candle
// @Produce      json
// @Param        code   query     string  true  "Instrument code" example(FX_BTC_JPY)
// @Param        year   query     int     true  "Year" example(2021)
// @Param        month  query     int     true  "Month (1-12)" example(12)
// @Param        day    query     int     true  "Day of month" example(22)
// @Param        hour   query     int     true  "Hour (0-23)" example(10)
// @Success      200    {object}  dto.CandleResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404    {object}  dto.ErrorResponse   "Not Found"
// @Failure      500    {object}  dto.ErrorResponse   "Internal Error"
// @Router       /candle [get]
func (h *Handler) GetCandle(c *gin.Context) {
	var q dto.CandleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, msgInvalidQuery, err)
		return
	}

	candle, err := h.candles.GetCandle(c.Request.Context(), q.Code, *q.Year, *q.Month, *q.Day, *q.Hour)
	switch {
	case errors.Is(err, aggregate.ErrInvalidWindow):
		middleware.AbortWithError(c, http.StatusBadRequest, msgInvalidWindow, err)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, msgCandleFailed, err)
		return
	case candle == nil:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(msgNoData, nil))
		return
	}

	c.JSON(http.StatusOK, dto.CandleResponse{
		Open:  candle.Open,
		High:  candle.High,
		Low:   candle.Low,
		Close: candle.Close,
	})
}

// PutFlag handles PUT /flag requests.
//
// PutFlag godoc
// @Summary      Receive a flag
// @Description  Logs and echoes an opaque flag value. Null, empty or false flags are rejected.
// @Tags         flag
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FlagRequest    true  "Flag payload"
// @Success      200   {object}  dto.FlagResponse   "Received"
// @Failure      400   {object}  dto.ErrorResponse  "Missing flag"
// @Router       /flag [put]
func (h *Handler) PutFlag(c *gin.Context) {
	var req dto.FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body carries no flag either.
		req.Flag = nil
	}

	flag, err := h.flags.Receive(c.Request.Context(), req.Flag)
	switch {
	case errors.Is(err, service.ErrMissingFlag):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgMissingFlag, nil))
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to receive flag", err)
		return
	}

	c.JSON(http.StatusOK, dto.FlagResponse{FlagReceived: flag})
}
