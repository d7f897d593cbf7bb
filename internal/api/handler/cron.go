package handler

import (
	"net/http"

	"github.com/freshkart/sales-etl/internal/scheduler"
	"github.com/freshkart/sales-etl/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RunConsolidationJob dispara manualmente a consolidação da data de negócio
// corrente do agendador. A execução acontece em background; o endpoint
// responde imediatamente.
func RunConsolidationJob(syncService *scheduler.DailyConsolidationSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação não disponível", nil)
			return
		}

		logrus.Info("Consolidação manual solicitada via API")
		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "accepted",
			"message": "Consolidação iniciada em background",
		}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// GetCronStatus retorna o status atual do agendador de consolidação
func GetCronStatus(syncService *scheduler.DailyConsolidationSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação não disponível", nil)
			return
		}

		writeJSON(w, syncService.GetStatus())
	}
}
