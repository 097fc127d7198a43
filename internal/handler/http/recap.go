package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/recap"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/export"
)

type RecapHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type recapHandlerImpl struct {
	errorReporter
	recapService recap.RecapService
}

func NewRecapHandler(recapService recap.RecapService, recorder errorlog.Recorder) RecapHandler {
	return &recapHandlerImpl{
		errorReporter: errorReporter{recorder: recorder},
		recapService:  recapService,
	}
}

// List returns recaps for ?month&year or ?start&end, as JSON or as a CSV/XLSX
// download depending on ?format.
func (h *recapHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := recap.ListFilter{
		Month:      q.Get("month"),
		Year:       q.Get("year"),
		Start:      q.Get("start"),
		End:        q.Get("end"),
		EmployeeID: queryString(r, "employee_id"),
		Format:     recap.Format(q.Get("format")),
	}
	if err := filter.Validate(); err != nil {
		h.fail(w, r, err)
		return
	}

	rows, err := h.recapService.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if filter.Format == recap.FormatJSON {
		response.Success(w, rows)
		return
	}

	table := recap.Table(filter.Label(), rows)
	var buf bytes.Buffer
	contentType := export.ContentTypeCSV
	switch filter.Format {
	case recap.FormatCSV:
		err = export.WriteCSV(&buf, table)
	case recap.FormatXLSX:
		contentType = export.ContentTypeXLSX
		err = export.WriteXLSX(&buf, table)
	}
	if err != nil {
		h.fail(w, r, fmt.Errorf("export recap: %w", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="attendance_recap_%s.%s"`, filter.Label(), filter.Format))
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write recap export", "error", err)
	}
}

// Generate recomputes the recap of one month for every active employee.
func (h *recapHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req recap.GenerateRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.recapService.Generate(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Recap generated", result)
}
