package domain

import "fmt"

// APIError representa um erro retornado pela API de anúncios
type APIError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	return fmt.Sprintf("ads api error %d (%s): %s", e.Code, e.Status, e.Message)
}
