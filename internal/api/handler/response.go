package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-forge-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros do caso de uso para o formato da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		switch {
		case errors.Is(err, dashboarding.ErrSummaryNotFound):
			apiErrors.WriteError(w, apiErrors.ErrDataNotFound, "No data found", nil)
		case errors.Is(err, dashboarding.ErrPersistence):
			apiErrors.WriteError(w, dashErr.Code, "Erro ao acessar o banco de dados", nil)
		default:
			apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		}
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
