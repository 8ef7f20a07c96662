package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalogapi/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type bookPayload struct {
	ISBN   string `json:"isbn" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// Create handles POST /v1/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload bookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	created, err := h.svc.Create(r.Context(), Book{
		ISBN:   payload.ISBN,
		Title:  payload.Title,
		Author: payload.Author,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateISBN) {
			httpx.JSONError(w, r, http.StatusBadRequest, "DUPLICATE_ISBN", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, created)
}

// GetByID handles GET /v1/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, b, nil)
}

// Update handles PUT /v1/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payload bookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	updated, err := h.svc.Update(r.Context(), Book{
		ID:     id,
		ISBN:   payload.ISBN,
		Title:  payload.Title,
		Author: payload.Author,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrDuplicateISBN):
			httpx.JSONError(w, r, http.StatusBadRequest, "DUPLICATE_ISBN", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, updated, nil)
}

// Delete handles DELETE /v1/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), Book{ID: id}); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessNoContent(w)
}

// Find handles GET /v1/books
func (h *HTTPHandler) Find(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	filter := Filter{
		Title:  query.Get("title"),
		Author: query.Get("author"),
		ISBN:   query.Get("isbn"),
	}
	req := PageRequest{
		Page: page - 1,
		Size: pageSize,
		Sort: query.Get("sort"),
		Desc: query.Get("desc") == "true",
	}

	result, err := h.svc.Find(r.Context(), filter, req)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, result.Content, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       result.TotalElements,
		"total_pages": (result.TotalElements + pageSize - 1) / pageSize,
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return 0, false
	}
	return id, true
}
