package googledomain

import "fmt"

// ErrorResponse é o envelope de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type APIError struct {
	StatusCode int
	Details    ErrorDetails
	Body       string
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return fmt.Sprintf("google ads api: status %d: %s (%s)", e.StatusCode, e.Details.Message, e.Details.Status)
	}
	return fmt.Sprintf("google ads api: status %d: %s", e.StatusCode, e.Body)
}

// IsQuotaExceeded indica que a cota diária de operações do developer token acabou
func (e *APIError) IsQuotaExceeded() bool {
	return e.Details.Status == "RESOURCE_EXHAUSTED"
}
