package http

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	errorReporter
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, recorder errorlog.Recorder) EmployeeHandler {
	return &employeeHandlerImpl{
		errorReporter:   errorReporter{recorder: recorder},
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Search: queryString(r, "search"),
		Status: queryString(r, "status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee_id")
	if !ok {
		return
	}

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, result)
}
