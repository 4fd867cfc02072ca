// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// UnknownDomain é o valor usado quando nenhum domínio foi observado para o
// site, nem na data do relatório nem na janela de fallback.
const UnknownDomain = "unknown"

// SiteDay é a linha final do relatório de rentabilidade: um site que gastou
// em anúncios na data do relatório e a receita que gerou no mesmo dia.
type SiteDay struct {
	SiteID  int64   `json:"site_id"`
	Domain  string  `json:"domain"`
	Cost    float64 `json:"cost"`    // arredondado para 2 casas decimais
	Revenue float64 `json:"revenue"` // arredondado para 6 casas decimais
}

// ProfitabilityReport agrupa o resultado de uma reconciliação para uma data.
type ProfitabilityReport struct {
	ReportDate       string    `json:"report_date"` // formato 2006-01-02
	RevenueThreshold float64   `json:"revenue_threshold"`
	Sites            []SiteDay `json:"sites"`
}
