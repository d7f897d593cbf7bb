package handler

import (
	"net/http"
	"time"

	"github.com/freshkart/sales-etl/internal/usecases/reporting"
	"github.com/julienschmidt/httprouter"
)

type pipelineRunResponse struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	OrdersKept    int       `json:"orders_kept"`
	ItemsRejected int       `json:"items_rejected"`
	GrossRevenue  float64   `json:"gross_revenue"`
	NetRevenue    float64   `json:"net_revenue"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// GetRuns retorna a trilha de execuções do pipeline para uma data.
// Reexecuções aparecem como entradas separadas, da mais recente para a mais
// antiga.
func GetRuns(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		runs, err := service.Runs(date)
		if err != nil {
			writeReportingError(w, date, err)
			return
		}

		response := make([]pipelineRunResponse, 0, len(runs))
		for _, run := range runs {
			response = append(response, pipelineRunResponse{
				ID:            run.ID,
				Date:          run.Date,
				OrdersKept:    run.OrdersKept,
				ItemsRejected: run.ItemsRejected,
				GrossRevenue:  run.GrossRevenue,
				NetRevenue:    run.NetRevenue,
				StartedAt:     run.StartedAt,
				FinishedAt:    run.FinishedAt,
			})
		}

		writeJSON(w, response)
	}
}
