package http

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
)

type OfficeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type officeHandlerImpl struct {
	errorReporter
	officeService office.OfficeService
}

func NewOfficeHandler(officeService office.OfficeService, recorder errorlog.Recorder) OfficeHandler {
	return &officeHandlerImpl{
		errorReporter: errorReporter{recorder: recorder},
		officeService: officeService,
	}
}

func (h *officeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.officeService.Get(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, result)
}

func (h *officeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req office.UpsertPolicyRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.officeService.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, "Office settings created", result)
}

func (h *officeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req office.UpsertPolicyRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.officeService.Update(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Office settings updated", result)
}

func (h *officeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.officeService.Delete(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Office settings deleted", nil)
}
