package http

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
)

type ErrorLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type errorLogHandlerImpl struct {
	errorReporter
	errorLogService errorlog.ErrorLogService
}

func NewErrorLogHandler(errorLogService errorlog.ErrorLogService) ErrorLogHandler {
	return &errorLogHandlerImpl{
		errorReporter:   errorReporter{recorder: errorLogService},
		errorLogService: errorLogService,
	}
}

// Create stores a client-reported error. The reporter is taken from the
// token; a user_id in the body is ignored.
func (h *errorLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req errorlog.CreateErrorLogRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.UserID = nil
	if userID := middleware.UserID(r); userID != "" {
		req.UserID = &userID
	}

	result, err := h.errorLogService.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, "Error logged", result)
}

func (h *errorLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := errorlog.ListFilter{
		ErrorType: queryString(r, "error_type"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.errorLogService.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.SuccessWithMeta(w, result.ErrorLogs, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

func (h *errorLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.errorLogService.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, result)
}
