package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/library"
	"github.com/tessera-games/loreforge/internal/logger"
)

// LibraryHandlers contains HTTP handlers for the draft library
type LibraryHandlers struct {
	service library.Service
}

// NewLibraryHandlers creates new library handlers
func NewLibraryHandlers(service library.Service) *LibraryHandlers {
	return &LibraryHandlers{service: service}
}

// CreateDraftRequest is the body for creating a draft
type CreateDraftRequest struct {
	OwnerID string          `json:"owner_id" validate:"required,max=100"`
	Kind    string          `json:"kind" validate:"required,draftkind"`
	Name    string          `json:"name" validate:"required,max=120"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// UpdateDraftRequest is the body for updating a draft. The kind is fixed at
// creation and not accepted here.
type UpdateDraftRequest struct {
	OwnerID string          `json:"owner_id" validate:"required,max=100"`
	Name    string          `json:"name" validate:"required,max=120"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// DraftListResponse wraps a draft listing
type DraftListResponse struct {
	Drafts []domain.Draft `json:"drafts"`
}

// HandleCreateDraft saves a new draft
// @Summary Create draft
// @Description Stores a new character, creature, item, power or technique draft
// @Tags library
// @Accept json
// @Produce json
// @Param request body CreateDraftRequest true "Draft to create"
// @Success 201 {object} domain.Draft
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /library/drafts [post]
func (h *LibraryHandlers) HandleCreateDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create draft"); err != nil {
			return
		}

		draft, err := h.service.CreateDraft(r.Context(), req.OwnerID, domain.DraftKind(req.Kind), req.Name, req.Payload)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Create draft: service error", "error", err, "owner_id", req.OwnerID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, draft)
	}
}

// HandleGetDraft returns one draft with freshly derived totals
// @Summary Get draft
// @Description Returns a draft with its derived totals recomputed against the current catalog
// @Tags library
// @Produce json
// @Param id path string true "Draft ID"
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} library.DraftView
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /library/drafts/{id} [get]
func (h *LibraryHandlers) HandleGetDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := GetQueryParam(r, w, "owner_id")
		if !ok {
			return
		}
		draftID := chi.URLParam(r, "id")

		view, err := h.service.GetDraft(r.Context(), ownerID, draftID)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Get draft: service error", "error", err, "draft_id", draftID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleListDrafts returns an owner's drafts
// @Summary List drafts
// @Description Returns an owner's drafts, optionally filtered by kind
// @Tags library
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Param kind query string false "Draft kind filter"
// @Success 200 {object} DraftListResponse
// @Failure 400 {object} ErrorResponse
// @Router /library/drafts [get]
func (h *LibraryHandlers) HandleListDrafts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := GetQueryParam(r, w, "owner_id")
		if !ok {
			return
		}
		kind := domain.DraftKind(r.URL.Query().Get("kind"))

		drafts, err := h.service.ListDrafts(r.Context(), ownerID, kind)
		if err != nil {
			logger.FromContext(r.Context()).Warn("List drafts: service error", "error", err, "owner_id", ownerID)
			respondServiceError(w, err)
			return
		}

		if drafts == nil {
			drafts = []domain.Draft{}
		}
		respondJSON(w, http.StatusOK, DraftListResponse{Drafts: drafts})
	}
}

// HandleUpdateDraft replaces a draft's name and payload
// @Summary Update draft
// @Description Replaces a draft's name and payload; the kind cannot change
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body UpdateDraftRequest true "New draft content"
// @Success 200 {object} domain.Draft
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /library/drafts/{id} [put]
func (h *LibraryHandlers) HandleUpdateDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateDraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update draft"); err != nil {
			return
		}
		draftID := chi.URLParam(r, "id")

		draft, err := h.service.UpdateDraft(r.Context(), req.OwnerID, draftID, req.Name, req.Payload)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Update draft: service error", "error", err, "draft_id", draftID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, draft)
	}
}

// HandleDeleteDraft removes a draft
// @Summary Delete draft
// @Description Removes an owner's draft
// @Tags library
// @Produce json
// @Param id path string true "Draft ID"
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /library/drafts/{id} [delete]
func (h *LibraryHandlers) HandleDeleteDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := GetQueryParam(r, w, "owner_id")
		if !ok {
			return
		}
		draftID := chi.URLParam(r, "id")

		if err := h.service.DeleteDraft(r.Context(), ownerID, draftID); err != nil {
			logger.FromContext(r.Context()).Warn("Delete draft: service error", "error", err, "draft_id", draftID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDraftDeletedSuccess})
	}
}
