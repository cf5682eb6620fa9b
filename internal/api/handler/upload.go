package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/analytics-forge-api/infrastructure/csvsource"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-forge-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

const (
	uploadFileField        = "file"
	uploadProjectTypeField = "projectType"
	uploadProjectNameField = "projectName"

	defaultMaxMemoryMB = 32
)

// UploadCSV recebe o CSV em multipart, roda o pipeline e devolve o resumo gerado
func UploadCSV(service dashboarding.DashboardService, maxMemoryMB int64) http.HandlerFunc {
	if maxMemoryMB <= 0 {
		maxMemoryMB = defaultMaxMemoryMB
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(maxMemoryMB << 20); err != nil {
			logger.WithError(err).Warn("upload: formulário multipart inválido")
			apiErrors.WriteError(w, apiErrors.ErrMissingFile, "No file uploaded", nil)
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				logger.WithError(err).Warn("upload: erro ao remover arquivos temporários")
			}
		}()

		file, header, err := r.FormFile(uploadFileField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingFile, "No file uploaded", nil)
			return
		}
		defer file.Close()

		rows, err := csvsource.Read(file)
		if err != nil {
			logger.WithError(err).Warn("upload: CSV ilegível")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Arquivo CSV inválido", err.Error())
			return
		}

		request := dashboarding.IngestRequest{
			ProjectType: strings.TrimSpace(r.FormValue(uploadProjectTypeField)),
			Filename:    header.Filename,
			Rows:        rows,
		}
		if name := strings.TrimSpace(r.FormValue(uploadProjectNameField)); name != "" {
			request.ProjectName = &name
		}

		result, err := service.Ingest(r.Context(), request)
		if err != nil {
			logger.WithError(errors.Wrap(err, "upload")).Error("upload: erro ao processar arquivo")
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
