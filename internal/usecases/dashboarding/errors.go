package dashboarding

import (
	"errors"
	"fmt"
)

// Erros de normalização de linhas
var (
	ErrEmptyDate   = errors.New("data vazia")
	ErrInvalidDate = errors.New("data inválida")
	ErrInvalidKPI  = errors.New("ano ou mês inválido")
)

// Erros do serviço de dashboard
var (
	ErrDataSource        = errors.New("erro ao obter dados da planilha")
	ErrMissingCredential = errors.New("credenciais da planilha não configuradas")
	ErrKPIHistory        = errors.New("erro ao consultar histórico de KPIs")
)

// Códigos de erro expostos pela API
const (
	CodeDataSource        = "SRV_005"
	CodeMissingCredential = "CFG_001"
)

// DashboardError é um erro com contexto adicional para a camada HTTP
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
