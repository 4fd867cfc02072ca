package domain

// TableInfo descreve uma tabela do warehouse para exploração via API.
type TableInfo struct {
	Name     string `json:"name"`
	Engine   string `json:"engine"`
	RowCount uint64 `json:"row_count"`
}

// ColumnInfo é uma coluna encontrada na busca por palavra-chave.
type ColumnInfo struct {
	Table string `json:"table"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// TableDetail reúne a estrutura completa de uma tabela com uma amostra de
// linhas para inspeção rápida.
type TableDetail struct {
	Name       string              `json:"name"`
	Engine     string              `json:"engine"`
	RowCount   uint64              `json:"row_count"`
	Columns    []ColumnInfo        `json:"columns"`
	SampleRows []map[string]string `json:"sample_rows"`
}
