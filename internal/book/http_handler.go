package book

import (
	"errors"
	"net/http"

	"booksdemo/internal/httpx"
	"booksdemo/internal/paging"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{id}", h.Get)
	mux.HandleFunc("PUT /books/{id}", h.FullUpdate)
	mux.HandleFunc("PATCH /books/{id}", h.PartialUpdate)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
}

// Create handles POST /books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body DTO true "Book; id is ignored, author is referenced by id"
// @Success 201 {object} DTO
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req DTO
	if !httpx.DecodeAndValidate(w, r, &req, func() error { return req.Validate() }) {
		return
	}

	saved, err := h.service.Create(r.Context(), FromDTO(req))
	if err != nil {
		h.writeSaveError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, ToDTO(saved))
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(20)
// @Param sort query string false "Sort, e.g. title,asc"
// @Success 200 {object} paging.Page[DTO]
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := paging.FromQuery(r.URL.Query(), SortProperties...)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_SORT", err.Error(), nil)
		return
	}

	page, err := h.service.FindAll(r.Context(), p)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, paging.Map(page, ToDTO))
}

// Get handles GET /books/{id}
// @Summary Get a book with its author
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} DTO
// @Failure 404
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.NotFound(w)
		return
	}

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(found))
}

// FullUpdate handles PUT /books/{id}
// @Summary Replace a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body DTO true "Book"
// @Success 200 {object} DTO
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 422 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) FullUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.existing(w, r)
	if !ok {
		return
	}

	var req DTO
	if !httpx.DecodeAndValidate(w, r, &req, func() error { return req.Validate() }) {
		return
	}

	saved, err := h.service.FullUpdate(r.Context(), id, FromDTO(req))
	if err != nil {
		h.writeSaveError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(saved))
}

// PartialUpdate handles PATCH /books/{id}
// @Summary Update some fields of a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body DTO true "Fields to change"
// @Success 200 {object} DTO
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 422 {object} httpx.ErrorResponse
// @Router /books/{id} [patch]
func (h *HTTPHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.existing(w, r)
	if !ok {
		return
	}

	var req DTO
	if !httpx.DecodeAndValidate(w, r, &req, func() error { return req.ValidatePatch() }) {
		return
	}

	saved, err := h.service.PartialUpdate(r.Context(), id, PatchFromDTO(req))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.writeSaveError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(saved))
}

// Delete handles DELETE /books/{id}
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.NoContent(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

func (h *HTTPHandler) writeSaveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrAuthorNotFound) {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "AUTHOR_NOT_FOUND", "Referenced author does not exist", nil)
		return
	}
	httpx.InternalError(w, r, err)
}

// existing resolves the path id and answers 404 unless that book exists.
func (h *HTTPHandler) existing(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		httpx.NotFound(w)
		return 0, false
	}

	exists, err := h.service.IsExists(r.Context(), id)
	if err != nil {
		httpx.InternalError(w, r, err)
		return 0, false
	}
	if !exists {
		httpx.NotFound(w)
		return 0, false
	}
	return id, true
}
