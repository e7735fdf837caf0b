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

// StudioController handles HTTP requests for the studio profile
type StudioController struct {
	repository repository.StudioRepositoryInterface
	storage    service.StorageServiceInterface
}

// NewStudioController creates a new StudioController
func NewStudioController(repo repository.StudioRepositoryInterface, storage service.StorageServiceInterface) *StudioController {
	return &StudioController{repository: repo, storage: storage}
}

// List handles GET /api/studio
func (c *StudioController) List(w http.ResponseWriter, r *http.Request) {
	studios, err := c.repository.List(r.Context())
	if err != nil {
		writeError(w, "list studio", err)
		return
	}
	writeJSON(w, http.StatusOK, studios)
}

// Get handles GET /api/studio/{id}
func (c *StudioController) Get(w http.ResponseWriter, r *http.Request) {
	studio, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get studio", err)
		return
	}
	writeJSON(w, http.StatusOK, studio)
}

func (c *StudioController) decode(r *http.Request, s *models.Studio) error {
	if err := parseForm(r); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	s.Title = strings.TrimSpace(r.FormValue("title"))
	s.Description = r.FormValue("description")
	s.Location = strings.TrimSpace(r.FormValue("location"))
	s.Contact = strings.TrimSpace(r.FormValue("contact"))
	s.Email = strings.TrimSpace(r.FormValue("email"))
	if s.Title == "" {
		return fmt.Errorf("%w: title is required", service.ErrInvalidInput)
	}
	return nil
}

// Create handles POST /api/studio
func (c *StudioController) Create(w http.ResponseWriter, r *http.Request) {
	studio := &models.Studio{ID: uuid.NewString()}
	if err := c.decode(r, studio); err != nil {
		writeError(w, "read studio form", err)
		return
	}
	image, err := saveOptionalImage(r, c.storage)
	if err != nil {
		writeError(w, "store studio image", err)
		return
	}
	studio.Image = image

	if err := c.repository.Create(r.Context(), studio); err != nil {
		c.storage.Remove(image)
		writeError(w, "create studio", err)
		return
	}
	writeJSON(w, http.StatusCreated, studio)
}

// Update handles PUT /api/studio/{id}
func (c *StudioController) Update(w http.ResponseWriter, r *http.Request) {
	studio, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get studio", err)
		return
	}
	if err := c.decode(r, studio); err != nil {
		writeError(w, "read studio form", err)
		return
	}
	image, err := saveOptionalImage(r, c.storage)
	if err != nil {
		writeError(w, "store studio image", err)
		return
	}
	previous := studio.Image
	if image != "" {
		studio.Image = image
	}

	if err := c.repository.Update(r.Context(), studio); err != nil {
		c.storage.Remove(image)
		writeError(w, "update studio", err)
		return
	}
	if image != "" {
		c.storage.Remove(previous)
	}
	writeJSON(w, http.StatusOK, studio)
}

// Delete handles DELETE /api/studio/{id}
func (c *StudioController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	studio, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, "get studio", err)
		return
	}
	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeError(w, "delete studio", err)
		return
	}
	c.storage.Remove(studio.Image)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Studio deleted"})
}
