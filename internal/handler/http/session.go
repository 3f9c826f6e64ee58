package http

import (
	"net/http"

	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
	"github.com/ujustbe/attendance-backend-go/internal/handler/http/response"
)

type SessionHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ToggleBreak(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService session.SessionService
}

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &sessionHandlerImpl{
		sessionService: sessionService,
	}
}

// Login implements SessionHandler.
func (h *sessionHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing")
		return
	}

	result, err := h.sessionService.Login(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login recorded", result)
}

// Logout implements SessionHandler.
func (h *sessionHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing")
		return
	}

	result, err := h.sessionService.Logout(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logout recorded", result)
}

// ToggleBreak implements SessionHandler.
func (h *sessionHandlerImpl) ToggleBreak(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing")
		return
	}

	result, err := h.sessionService.ToggleBreak(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Today implements SessionHandler.
func (h *sessionHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing")
		return
	}

	result, err := h.sessionService.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
