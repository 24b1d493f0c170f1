package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Body{
		"message":    "Clocked in successfully",
		"attendance": result,
	})
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req attendance.ClockOutRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{
		"message":    "Clocked out successfully",
		"attendance": result,
	})
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	userID, ok := pathID(w, r, "id", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Limit must be a number", map[string]string{"limit": "Limit must be a number"})
			return
		}
		limit = n
	}

	records, err := h.attendanceService.History(r.Context(), identity, userID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"records": records})
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"records": records})
}

// ByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"records": records})
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.StatsForToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
