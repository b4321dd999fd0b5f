package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/query"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/record"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/report"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.RecordService
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))

	status.NewHandler().Register(humaAPI)

	record.NewCreateRecordHandler(r.Operator).Register(humaAPI)
	record.NewUpdateRecordHandler(r.Operator).Register(humaAPI)
	record.NewDeleteRecordHandler(r.Operator).Register(humaAPI)
	record.NewRenameCategoryHandler(r.Operator).Register(humaAPI)
	record.NewGetRecordHandler(r.Service).Register(humaAPI)
	record.NewListRecordsHandler(r.Service).Register(humaAPI)

	query.NewByCategoryHandler(r.Service).Register(humaAPI)
	query.NewByDateRangeHandler(r.Service).Register(humaAPI)
	query.NewExpensesOverHandler(r.Service).Register(humaAPI)
	query.NewIncomesUnderHandler(r.Service).Register(humaAPI)
	query.NewWithNotesHandler(r.Service).Register(humaAPI)
	query.NewWithoutNotesHandler(r.Service).Register(humaAPI)

	report.NewSummaryHandler(r.Service).Register(humaAPI)
	report.NewAverageExpensesHandler(r.Service).Register(humaAPI)
	report.NewAverageIncomeHandler(r.Service).Register(humaAPI)
	report.NewForecastHandler(r.Service).Register(humaAPI)
	report.NewExportHandler(r.Service).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.LoggingWrapper(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
