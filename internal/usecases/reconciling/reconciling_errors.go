package reconciling

import (
	"errors"
	"fmt"
)

// QueryPurpose identifica qual das consultas ao warehouse falhou. A falha de
// qualquer uma delas é terminal para a execução: substituir silenciosamente
// uma query que falhou por um resultado vazio mascararia dias sem dados.
type QueryPurpose string

const (
	QueryCost           QueryPurpose = "cost"
	QueryRevenue        QueryPurpose = "revenue"
	QueryDomainFallback QueryPurpose = "domain_fallback"
)

// Erros específicos do contexto de reconciliação
var (
	ErrDataSource = errors.New("warehouse query failed")
)

// DataSourceError é uma falha de consulta ao warehouse com a identificação da
// query que falhou.
type DataSourceError struct {
	Purpose QueryPurpose
	Err     error
}

// Error implementa a interface error
func (e *DataSourceError) Error() string {
	return fmt.Sprintf("consulta de %s falhou: %v", e.Purpose, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrDataSource)
func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSource
}

// NewDataSourceError cria um novo DataSourceError
func NewDataSourceError(purpose QueryPurpose, err error) *DataSourceError {
	return &DataSourceError{
		Purpose: purpose,
		Err:     err,
	}
}
