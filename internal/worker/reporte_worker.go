package worker

// reporte_worker.go
// Processes accounting report jobs from QueueReportes: renders the PDF from
// the current ledger state and, when a destination address is given, chains
// an email job with the file attached.

import (
	"context"
	"encoding/json"

	"github.com/Carlos-148/App-Economia-CB/internal/infra"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/rs/zerolog/log"
)

// ReporteJobPayload is the job envelope sent to QueueReportes.
type ReporteJobPayload struct {
	// Email is optional; empty means generate-only.
	Email string `json:"email,omitempty"`
	// Entradas limits how many recent ledger entries the report includes.
	Entradas int `json:"entradas,omitempty"`
}

type ReporteWorker struct {
	contabilidad service.ContabilidadService
	dispatcher   *Dispatcher
	storagePath  string
}

func NewReporteWorker(contabilidad service.ContabilidadService, dispatcher *Dispatcher, storagePath string) *ReporteWorker {
	return &ReporteWorker{
		contabilidad: contabilidad,
		dispatcher:   dispatcher,
		storagePath:  storagePath,
	}
}

func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	limit := payload.Entradas
	if limit <= 0 {
		limit = 50
	}

	resumen := w.contabilidad.ResumenGeneral(ctx)
	porProducto := w.contabilidad.ResumenPorProducto(ctx)
	entradas := w.contabilidad.Historial(ctx, limit)

	path, err := infra.GenerateReportePDF(resumen, porProducto, entradas, w.storagePath)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("reporte_worker: reporte generado")

	if payload.Email != "" {
		return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
			ToEmail: payload.Email,
			Subject: "Reporte contable",
			Body:    "Se adjunta el reporte contable generado.",
			PDFPath: path,
		})
	}
	return nil
}
