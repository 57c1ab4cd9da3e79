// Package api exposes the content service over HTTP.
//
// The wire contract is envelope-based: every response is JSON carrying a
// status field that mirrors the outcome, while the HTTP status code stays
// 200 everywhere except 201 on successful create.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/dulee/content-api/pkg/contentapi"
)

// ContentHandler handles HTTP requests for content
type ContentHandler struct {
	service contentapi.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service contentapi.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for content
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/contents/count", h.CountContents)
	r.Get("/contents", h.ListContents)
	r.Get("/contents/{id}", h.GetContent)
	r.Get("/users/me/contents/{id}", h.GetOwnedContent)

	r.Post("/contents", h.CreateContent)
	r.Patch("/contents/{id}", h.UpdateContent)
	r.Delete("/contents/{id}", h.DeleteContent)

	r.Get("/health", h.Health)
	r.Get("/", h.Landing)

	return r
}

// CreateContentRequest is the request body for creating a content
type CreateContentRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Thumbnail string `json:"thumbnail"`
}

// UpdateContentRequest is the request body for a partial content update.
// Absent fields retain their stored values.
type UpdateContentRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Thumbnail *string `json:"thumbnail"`
}

// CountResponse is the response body for the content count
type CountResponse struct {
	Count  int `json:"count"`
	Status int `json:"status"`
}

// ListResponse is the response body for the content listing
type ListResponse struct {
	Contents []contentapi.ContentView `json:"contents"`
	Status   int                      `json:"status"`
}

// ContentViewResponse is the response body for a single content view
type ContentViewResponse struct {
	Content contentapi.ContentView `json:"content"`
	Status  int                    `json:"status"`
}

// ContentResponse is the response body for a created content. It carries the
// raw record with authorId, per the creation contract.
type ContentResponse struct {
	Content contentapi.Content `json:"content"`
	Status  int                `json:"status"`
}

// StatusResponse is the response body for outcomes with no payload
type StatusResponse struct {
	Status int `json:"status"`
}

// CountContents counts contents, optionally filtered by the q parameter
func (h *ContentHandler) CountContents(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountContent(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("Failed to count contents", "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
		return
	}

	render.JSON(w, r, CountResponse{Count: count, Status: http.StatusOK})
}

// ListContents returns a paginated, filtered, sorted page of content views
func (h *ContentHandler) ListContents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := contentapi.ListContentRequest{
		PageNum:  queryInt(query, "pageNum", contentapi.DefaultPageNum),
		PageTake: queryInt(query, "pageTake", contentapi.DefaultPageTake),
		Query:    query.Get("q"),
		Sort:     contentapi.SortOrder(query.Get("sort")),
	}

	views, err := h.service.ListContent(r.Context(), req)
	if err != nil {
		slog.Error("Failed to list contents", "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
		return
	}

	render.JSON(w, r, ListResponse{Contents: views, Status: http.StatusOK})
}

// GetContent retrieves a content view by ID
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		// An unparseable id cannot name a stored record.
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
		return
	}

	view, err := h.service.GetContent(r.Context(), id)
	switch {
	case errors.Is(err, contentapi.ErrContentNotFound):
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
	case errors.Is(err, contentapi.ErrAuthorMissing):
		slog.Error("Content has a broken author reference", "content_id", idStr)
		render.JSON(w, r, StatusResponse{Status: http.StatusBadRequest})
	case err != nil:
		slog.Error("Failed to get content", "content_id", idStr, "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
	default:
		render.JSON(w, r, ContentViewResponse{Content: *view, Status: http.StatusOK})
	}
}

// GetOwnedContent retrieves a content view owned by the caller. A credential
// that resolves to no user is reported as 404 on this route, per contract.
func (h *ContentHandler) GetOwnedContent(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
		return
	}

	view, err := h.service.GetOwnedContent(r.Context(), r.Header.Get("Authorization"), id)
	switch {
	case errors.Is(err, contentapi.ErrUnauthorized), errors.Is(err, contentapi.ErrContentNotFound):
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
	case err != nil:
		slog.Error("Failed to get owned content", "content_id", idStr, "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
	default:
		render.JSON(w, r, ContentViewResponse{Content: *view, Status: http.StatusOK})
	}
}

// CreateContent creates a new content owned by the caller
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.JSON(w, r, StatusResponse{Status: http.StatusBadRequest})
		return
	}

	content, err := h.service.CreateContent(r.Context(), contentapi.CreateContentRequest{
		Credential: r.Header.Get("Authorization"),
		Title:      req.Title,
		Body:       req.Body,
		Thumbnail:  req.Thumbnail,
	})
	switch {
	case errors.Is(err, contentapi.ErrUnauthorized):
		render.JSON(w, r, StatusResponse{Status: http.StatusUnauthorized})
	case err != nil:
		slog.Error("Failed to create content", "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
	default:
		slog.Info("Content created", "content_id", content.ID.String())
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ContentResponse{Content: *content, Status: http.StatusCreated})
	}
}

// UpdateContent merges a partial patch into a content owned by the caller
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
		return
	}

	var req UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.JSON(w, r, StatusResponse{Status: http.StatusBadRequest})
		return
	}

	view, err := h.service.UpdateContent(r.Context(), contentapi.UpdateContentRequest{
		Credential: r.Header.Get("Authorization"),
		ID:         id,
		Title:      req.Title,
		Body:       req.Body,
		Thumbnail:  req.Thumbnail,
	})
	switch {
	case errors.Is(err, contentapi.ErrContentNotFound):
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
	case err != nil:
		slog.Error("Failed to update content", "content_id", idStr, "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
	default:
		slog.Info("Content updated", "content_id", idStr)
		render.JSON(w, r, ContentViewResponse{Content: *view, Status: http.StatusOK})
	}
}

// DeleteContent removes a content owned by the caller
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
		return
	}

	err = h.service.DeleteContent(r.Context(), r.Header.Get("Authorization"), id)
	switch {
	case errors.Is(err, contentapi.ErrContentNotFound):
		render.JSON(w, r, StatusResponse{Status: http.StatusNotFound})
	case err != nil:
		slog.Error("Failed to delete content", "content_id", idStr, "error", err)
		render.JSON(w, r, StatusResponse{Status: http.StatusInternalServerError})
	default:
		slog.Info("Content deleted", "content_id", idStr)
		render.JSON(w, r, StatusResponse{Status: http.StatusOK})
	}
}

func queryInt(values url.Values, key string, fallback int) int {
	raw := values.Get(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
