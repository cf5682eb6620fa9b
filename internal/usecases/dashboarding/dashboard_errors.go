package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de dashboards
var (
	// Erros de validação
	ErrSummaryIDRequired   = errors.New("summary ID is required")
	ErrProjectTypeRequired = errors.New("project type is required")
	ErrSummaryNotFound     = errors.New("no data found")

	// Erros de banco de dados
	ErrPersistence = errors.New("database operation error")
)

// DashboardError é um erro com contexto adicional para dashboards
type DashboardError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SummaryID string // ID do registro envolvido (quando aplicável)
	Details   string // Detalhes adicionais
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

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewDashboardErrorWithID(err error, code string, summaryID string, details string) *DashboardError {
	return &DashboardError{
		Err:       err,
		Code:      code,
		SummaryID: summaryID,
		Details:   details,
	}
}
