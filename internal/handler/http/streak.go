package http

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
)

type StreakHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type streakHandlerImpl struct {
	errorReporter
	streakService streak.StreakService
}

func NewStreakHandler(streakService streak.StreakService, recorder errorlog.Recorder) StreakHandler {
	return &streakHandlerImpl{
		errorReporter: errorReporter{recorder: recorder},
		streakService: streakService,
	}
}

func (h *streakHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.streakService.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, result)
}

func (h *streakHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.streakService.GetMine(r.Context(), middleware.UserID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, result)
}

func (h *streakHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employee_id")
	if !ok {
		return
	}

	result, err := h.streakService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, result)
}

// ListByRange returns streaks whose last streak date falls inside
// start_date..end_date.
func (h *streakHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	filter := streak.RangeFilter{
		EmployeeID: queryString(r, "employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.streakService.ListByRange(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, result)
}

func (h *streakHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employee_id")
	if !ok {
		return
	}
	var req streak.ResetStreakRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.EmployeeID = employeeID

	result, err := h.streakService.Reset(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Streak reset", result)
}
