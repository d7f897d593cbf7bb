package handler

import (
	"errors"
	"net/http"

	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/internal/usecases/reporting"
	"github.com/freshkart/sales-etl/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type dailySummaryResponse struct {
	Date            string  `json:"date"`
	City            string  `json:"city"`
	Channel         string  `json:"channel"`
	OrdersCount     int     `json:"orders_count"`
	UniqueCustomers int     `json:"unique_customers"`
	ItemsSold       int     `json:"items_sold"`
	GrossRevenueEUR float64 `json:"gross_revenue_eur"`
	RefundsEUR      float64 `json:"refunds_eur"`
	NetRevenueEUR   float64 `json:"net_revenue_eur"`
}

type cleanOrderResponse struct {
	OrderID       string  `json:"order_id"`
	Date          string  `json:"date"`
	CustomerID    string  `json:"customer_id"`
	City          string  `json:"city"`
	Channel       string  `json:"channel"`
	CreatedAt     string  `json:"created_at"`
	ItemsSold     int     `json:"items_sold"`
	GrossRevenue  float64 `json:"gross_revenue"`
	RefundsAmount float64 `json:"refunds_amount"`
	NetRevenue    float64 `json:"net_revenue"`
}

// GetDailySummary retorna os agregados por cidade e canal de uma data
func GetDailySummary(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		summaries, err := service.DailySummary(date)
		if err != nil {
			writeReportingError(w, date, err)
			return
		}

		response := make([]dailySummaryResponse, 0, len(summaries))
		for _, s := range summaries {
			response = append(response, dailySummaryResponse{
				Date:            s.Date,
				City:            s.City,
				Channel:         s.Channel,
				OrdersCount:     s.OrdersCount,
				UniqueCustomers: s.UniqueCustomers,
				ItemsSold:       s.ItemsSold,
				GrossRevenueEUR: s.GrossRevenue,
				RefundsEUR:      s.Refunds,
				NetRevenueEUR:   s.NetRevenue,
			})
		}

		writeJSON(w, response)
	}
}

// GetCleanOrders retorna as vendas limpas persistidas para uma data
func GetCleanOrders(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		orders, err := service.CleanOrders(date)
		if err != nil {
			writeReportingError(w, date, err)
			return
		}

		response := make([]cleanOrderResponse, 0, len(orders))
		for _, o := range orders {
			response = append(response, cleanOrderResponse{
				OrderID:       o.OrderID,
				Date:          o.Date,
				CustomerID:    o.CustomerID,
				City:          o.City,
				Channel:       o.Channel,
				CreatedAt:     o.CreatedAt,
				ItemsSold:     o.ItemsSold,
				GrossRevenue:  o.GrossRevenue,
				RefundsAmount: o.RefundsAmount,
				NetRevenue:    o.NetRevenue,
			})
		}

		writeJSON(w, response)
	}
}

func writeReportingError(w http.ResponseWriter, date string, err error) {
	if errors.Is(err, domain.ErrInvalidDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	logrus.WithError(err).WithField("date", date).Error("Erro ao consultar o banco cumulativo")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco cumulativo", nil)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
