package dto

// FlagRequest is the PUT /flag body. The flag value is opaque.
type FlagRequest struct {
	Flag any `json:"flag" swaggertype:"string" example:"on"`
}

// FlagResponse acknowledges a received flag.
type FlagResponse struct {
	FlagReceived any `json:"flag_received" swaggertype:"string" example:"on"`
}
