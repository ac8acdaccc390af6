package domain

// RawAccount representa uma conta de anúncios como retornada pela plataforma
type RawAccount struct {
	CustomerID      string `json:"customer_id"`
	DescriptiveName string `json:"descriptive_name"`
}

// AccountClassification é o resultado do parsing e da classificação de uma conta
type AccountClassification struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	DescriptiveName string `json:"descriptive_name"`
	CustomerID      string `json:"customer_id"`
	ActiveByName    bool   `json:"active_by_name"`
	ActiveByPeriod  bool   `json:"active_by_period"`
}

// Active indica se a conta passa nas duas verificações de atividade
func (c AccountClassification) Active() bool {
	return c.ActiveByName && c.ActiveByPeriod
}

// CodeValidationResult classifica cada código solicitado em exatamente um balde
type CodeValidationResult struct {
	Valid            []string `json:"valid"`
	Invalid          []string `json:"invalid"`
	InactiveByName   []string `json:"inactive_by_name"`
	InactiveByPeriod []string `json:"inactive_by_period"`
}

// AllValid indica se todos os códigos solicitados são válidos e ativos
func (r CodeValidationResult) AllValid() bool {
	return len(r.Invalid) == 0 && len(r.InactiveByName) == 0 && len(r.InactiveByPeriod) == 0
}
