package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited cobre os códigos de limite de chamadas da Marketing API
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80004:
		return true
	}
	return false
}

// APIError é o erro retornado pelo cliente quando a API responde com status diferente de 200
type APIError struct {
	StatusCode int
	Details    ErrorDetails
	Body       string
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return fmt.Sprintf("meta api: status %d: %s (code %d)", e.StatusCode, e.Details.Message, e.Details.Code)
	}
	return fmt.Sprintf("meta api: status %d: %s", e.StatusCode, e.Body)
}
