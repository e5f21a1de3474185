package http

// Envelope is the uniform body of every API response.
// Success responses carry data and a null error; failures carry an error
// message and null data.
type Envelope struct {
	Success   bool        `json:"success" example:"true"`
	Data      interface{} `json:"data"`
	Error     *string     `json:"error"`
	Timestamp int64       `json:"timestamp,omitempty" example:"1743724800000"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"symbol"`
	Message string                 `json:"message,omitempty" example:"symbol is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
