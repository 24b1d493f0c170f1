package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	StatsForAdmin(w http.ResponseWriter, r *http.Request)
	StatsForEmployee(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// List implements SalaryHandler.
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.salaryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"salaries": records})
}

// ListMine implements SalaryHandler.
func (h *salaryHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	records, err := h.salaryService.ListMine(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"salaries": records})
}

// ListByEmployee implements SalaryHandler.
func (h *salaryHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "employeeId", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	records, err := h.salaryService.ListByEmployee(r.Context(), identity, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"salaries": records})
}

// StatsForAdmin implements SalaryHandler.
func (h *salaryHandlerImpl) StatsForAdmin(w http.ResponseWriter, r *http.Request) {
	stats, err := h.salaryService.StatsForAdmin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// StatsForEmployee implements SalaryHandler.
func (h *salaryHandlerImpl) StatsForEmployee(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	stats, err := h.salaryService.StatsForEmployee(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Create implements SalaryHandler.
func (h *salaryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Body{
		"message": "Salary record created successfully",
		"salary":  created,
	})
}

// Update implements SalaryHandler.
func (h *salaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", salary.ErrSalaryNotFound)
	if !ok {
		return
	}

	var req salary.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.salaryService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{
		"message": "Salary record updated successfully",
		"salary":  updated,
	})
}

// Delete implements SalaryHandler.
func (h *salaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", salary.ErrSalaryNotFound)
	if !ok {
		return
	}

	if err := h.salaryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Salary record deleted successfully")
}

// Payslip implements SalaryHandler.
func (h *salaryHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", salary.ErrSalaryNotFound)
	if !ok {
		return
	}

	file, err := h.salaryService.Payslip(r.Context(), identity, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Name, file.ContentType, file.Content)
}

// Export implements SalaryHandler.
func (h *salaryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.salaryService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Name, file.ContentType, file.Content)
}
