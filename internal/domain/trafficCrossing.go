package domain

// TrafficCrossing é o cruzamento de requests do warehouse com visitors do
// Plausible para um mesmo domínio dentro da janela analisada. As razões ficam
// nulas quando o divisor é zero em vez de propagar infinito para o CSV.
type TrafficCrossing struct {
	SiteID             int64    `json:"site_id"`
	Domain             string   `json:"domain"`
	StartDate          string   `json:"start_date"` // formato 2006-01-02
	EndDate            string   `json:"end_date"`
	TotalRequests      int64    `json:"total_requests"`
	Visitors           int64    `json:"visitors"`
	RequestsPerVisitor *float64 `json:"requests_per_visitor,omitempty"`
	VisitorsPerRequest *float64 `json:"visitors_per_request,omitempty"`
}
