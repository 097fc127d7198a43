package http

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	CancelClockOut(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	SweepAbsences(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	errorReporter
	attendanceService attendance.AttendanceService
	sweeper           attendance.AbsenceSweeper
}

func NewAttendanceHandler(
	attendanceService attendance.AttendanceService,
	sweeper attendance.AbsenceSweeper,
	recorder errorlog.Recorder,
) AttendanceHandler {
	return &attendanceHandlerImpl{
		errorReporter:     errorReporter{recorder: recorder},
		attendanceService: attendanceService,
		sweeper:           sweeper,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockIn(r.Context(), middleware.UserID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockOut(r.Context(), middleware.UserID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// CancelClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CancelClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CancelClockOut(r.Context(), middleware.UserID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out cancelled", result)
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetStatus(r.Context(), middleware.UserID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{
		UserID:    middleware.UserID(r),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
		Status:    queryString(r, "status"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.attendanceService.GetHistory(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// SweepAbsences implements AttendanceHandler. Without a date it sweeps the
// current office-local day.
func (h *attendanceHandlerImpl) SweepAbsences(w http.ResponseWriter, r *http.Request) {
	var req attendance.SweepRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx := r.Context()
	var err error
	var result attendance.SweepResponse
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		result, err = h.sweeper.SweepAbsences(ctx, date)
	} else {
		today, todayErr := h.sweeper.Today(ctx)
		if todayErr != nil {
			h.fail(w, r, todayErr)
			return
		}
		result, err = h.sweeper.SweepAbsences(ctx, today)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Absence sweep completed", result)
}
