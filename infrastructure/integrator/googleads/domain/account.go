// Package domain contém os tipos de transporte da API de anúncios
package domain

// Account representa uma conta de cliente como retornada pela API
type Account struct {
	CustomerID      string `json:"customerId"`
	DescriptiveName string `json:"descriptiveName"`
}

// AccountsResponse é o envelope da listagem de contas
type AccountsResponse struct {
	Results       []Account `json:"results"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}
