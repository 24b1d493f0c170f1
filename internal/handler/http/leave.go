package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req leave.ApplyRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ApplyLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Apply(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Body{
		"message": "Leave application submitted successfully",
		"leave":   result,
	})
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	leaves, err := h.leaveService.ListMine(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"leaves": leaves})
}

// ListAll implements LeaveHandler.
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := leave.Filter{
		Status: query.Get("status"),
		UserID: query.Get("empId"),
		Name:   query.Get("name"),
	}

	leaves, err := h.leaveService.ListAll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"leaves": leaves})
}

// SetStatus implements LeaveHandler.
func (h *leaveHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", leave.ErrLeaveNotFound)
	if !ok {
		return
	}

	var req leave.SetStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("SetLeaveStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.SetStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{
		"message": fmt.Sprintf("Leave application %s successfully", result.Status),
		"leave":   result,
	})
}

// Delete implements LeaveHandler.
func (h *leaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id", leave.ErrLeaveNotDeletable)
	if !ok {
		return
	}

	if err := h.leaveService.Delete(r.Context(), identity, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Leave application deleted successfully")
}

// Stats implements LeaveHandler.
func (h *leaveHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leaveService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"stats": stats})
}
