// Package domain contém as estruturas retornadas pela API do Plausible.
package domain

// Site é um site cadastrado na conta do Plausible.
type Site struct {
	Domain   string `json:"domain"`
	Timezone string `json:"timezone"`
}

// VisitorPoint é um ponto da série temporal de visitors.
type VisitorPoint struct {
	Date     string `json:"date"`
	Visitors int64  `json:"visitors"`
}

// PageVisitors é uma linha do breakdown por página.
type PageVisitors struct {
	Page     string `json:"page"`
	Visitors int64  `json:"visitors"`
}
