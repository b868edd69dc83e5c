package httpx

import (
	"errors"
	"net/http"

	"github.com/offboardhq/offboard-api/internal/domain/model"
	"github.com/offboardhq/offboard-api/internal/service"
)

// OffboardingHandlers serves the scheduled-offboarding CRUD API.
type OffboardingHandlers struct {
	Svc *service.OffboardingService
}

// List handles GET /api/offboardings.
func (h *OffboardingHandlers) List(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("no identity")})
		return
	}

	opts := model.OffboardingListOptions{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.OffboardingStatus(raw)
		if !status.Valid() {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation", Err: errors.New("unknown status")})
			return
		}
		opts.Status = &status
	}

	records, err := h.Svc.ListWithOptions(r.Context(), id, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, records)
}

// Get handles GET /api/offboardings/{id}.
func (h *OffboardingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("no identity")})
		return
	}

	record, err := h.Svc.Get(r.Context(), r.PathValue("id"), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if record == nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("offboarding not found")})
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

// Create handles POST /api/offboardings.
func (h *OffboardingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("no identity")})
		return
	}

	var req model.CreateOffboardingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.Create(r.Context(), &req, id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, record)
}

// Update handles PUT /api/offboardings/{id}.
func (h *OffboardingHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("no identity")})
		return
	}

	var req model.UpdateOffboardingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.Update(r.Context(), r.PathValue("id"), req, id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if record == nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("offboarding not found")})
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/offboardings/{id}.
func (h *OffboardingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("no identity")})
		return
	}

	deleted, err := h.Svc.Remove(r.Context(), r.PathValue("id"), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("offboarding not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Execute handles POST /api/offboardings/{id}/execute.
func (h *OffboardingHandlers) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: errors.New("no identity")})
		return
	}

	record, err := h.Svc.Execute(r.Context(), r.PathValue("id"), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if record == nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("offboarding not found")})
		return
	}
	WriteJSON(w, http.StatusOK, record)
}
