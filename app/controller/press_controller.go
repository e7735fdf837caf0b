package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"linedori-web/models"
	"linedori-web/repository"
	"linedori-web/service"
)

// PressController handles HTTP requests for press articles
type PressController struct {
	repository repository.PressRepositoryInterface
	storage    service.StorageServiceInterface
}

// NewPressController creates a new PressController
func NewPressController(repo repository.PressRepositoryInterface, storage service.StorageServiceInterface) *PressController {
	return &PressController{repository: repo, storage: storage}
}

// List handles GET /api/press
func (c *PressController) List(w http.ResponseWriter, r *http.Request) {
	articles, err := c.repository.List(r.Context())
	if err != nil {
		writeError(w, "list press", err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// Get handles GET /api/press/{id}
func (c *PressController) Get(w http.ResponseWriter, r *http.Request) {
	article, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get press", err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (c *PressController) decode(r *http.Request, p *models.Press) error {
	if err := parseForm(r); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	p.Title = strings.TrimSpace(r.FormValue("title"))
	p.Date = strings.TrimSpace(r.FormValue("date"))
	p.Description = r.FormValue("description")
	p.Link = strings.TrimSpace(r.FormValue("link"))
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", service.ErrInvalidInput)
	}
	return nil
}

// Create handles POST /api/press
func (c *PressController) Create(w http.ResponseWriter, r *http.Request) {
	article := &models.Press{ID: uuid.NewString()}
	if err := c.decode(r, article); err != nil {
		writeError(w, "read press form", err)
		return
	}
	image, err := saveOptionalImage(r, c.storage)
	if err != nil {
		writeError(w, "store press image", err)
		return
	}
	article.Image = image

	if err := c.repository.Create(r.Context(), article); err != nil {
		c.storage.Remove(image)
		writeError(w, "create press", err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

// Update handles PUT /api/press/{id}
func (c *PressController) Update(w http.ResponseWriter, r *http.Request) {
	article, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get press", err)
		return
	}
	if err := c.decode(r, article); err != nil {
		writeError(w, "read press form", err)
		return
	}
	image, err := saveOptionalImage(r, c.storage)
	if err != nil {
		writeError(w, "store press image", err)
		return
	}
	previous := article.Image
	if image != "" {
		article.Image = image
	}

	if err := c.repository.Update(r.Context(), article); err != nil {
		c.storage.Remove(image)
		writeError(w, "update press", err)
		return
	}
	if image != "" {
		c.storage.Remove(previous)
	}
	writeJSON(w, http.StatusOK, article)
}

// Delete handles DELETE /api/press/{id}
func (c *PressController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	article, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, "get press", err)
		return
	}
	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeError(w, "delete press", err)
		return
	}
	c.storage.Remove(article.Image)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Press deleted"})
}
