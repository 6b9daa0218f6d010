package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OKResponse is returned by endpoints with nothing else to report
type OKResponse struct {
	OK bool `json:"ok"`
}
