package domain

import "time"

// CostAggregate é o custo total de anúncios de um site na data do relatório.
// A soma cobre o dia inteiro, sem restrição de timestamp. Diferente da
// receita, o custo é incremental ao longo do dia.
type CostAggregate struct {
	SiteID    int64
	TotalCost float64
}

// RevenueAggregate é a receita de um site na data do relatório, somada apenas
// sobre as linhas do último timestamp observado no dia. Os relatórios de
// receita são cumulativos: cada timestamp substitui os anteriores, então só o
// último snapshot conta.
type RevenueAggregate struct {
	SiteID       int64
	Domain       string // domínio observado no último timestamp do dia
	TotalRevenue float64
}

// RequestVolume é o volume de requests de ad exchange por site/data/domínio.
type RequestVolume struct {
	SiteID        int64     `json:"site_id"`
	Date          time.Time `json:"date"`
	Domain        string    `json:"domain"`
	TotalRequests int64     `json:"total_requests"`
}

// SiteRequestTotal é o agregado de requests de um site em um período.
type SiteRequestTotal struct {
	SiteID        int64  `json:"site_id"`
	Domain        string `json:"domain"`
	TotalRequests int64  `json:"total_requests"`
	DaysWithData  int    `json:"days_with_data"`
}
