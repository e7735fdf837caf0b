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

// TeamController handles HTTP requests for team members
type TeamController struct {
	repository repository.TeamRepositoryInterface
	storage    service.StorageServiceInterface
}

// NewTeamController creates a new TeamController
func NewTeamController(repo repository.TeamRepositoryInterface, storage service.StorageServiceInterface) *TeamController {
	return &TeamController{repository: repo, storage: storage}
}

// List handles GET /api/team
func (c *TeamController) List(w http.ResponseWriter, r *http.Request) {
	members, err := c.repository.List(r.Context())
	if err != nil {
		writeError(w, "list team", err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// Get handles GET /api/team/{id}
func (c *TeamController) Get(w http.ResponseWriter, r *http.Request) {
	member, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get team member", err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (c *TeamController) decode(r *http.Request, m *models.TeamMember) error {
	if err := parseForm(r); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	m.Name = strings.TrimSpace(r.FormValue("name"))
	m.Role = strings.TrimSpace(r.FormValue("role"))
	m.Description = r.FormValue("description")
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", service.ErrInvalidInput)
	}
	return nil
}

// Create handles POST /api/team
func (c *TeamController) Create(w http.ResponseWriter, r *http.Request) {
	member := &models.TeamMember{ID: uuid.NewString()}
	if err := c.decode(r, member); err != nil {
		writeError(w, "read team form", err)
		return
	}
	image, err := saveOptionalImage(r, c.storage)
	if err != nil {
		writeError(w, "store team image", err)
		return
	}
	member.Image = image

	if err := c.repository.Create(r.Context(), member); err != nil {
		c.storage.Remove(image)
		writeError(w, "create team member", err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

// Update handles PUT /api/team/{id}
func (c *TeamController) Update(w http.ResponseWriter, r *http.Request) {
	member, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get team member", err)
		return
	}
	if err := c.decode(r, member); err != nil {
		writeError(w, "read team form", err)
		return
	}
	image, err := saveOptionalImage(r, c.storage)
	if err != nil {
		writeError(w, "store team image", err)
		return
	}
	previous := member.Image
	if image != "" {
		member.Image = image
	}

	if err := c.repository.Update(r.Context(), member); err != nil {
		c.storage.Remove(image)
		writeError(w, "update team member", err)
		return
	}
	if image != "" {
		c.storage.Remove(previous)
	}
	writeJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /api/team/{id}
func (c *TeamController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	member, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, "get team member", err)
		return
	}
	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeError(w, "delete team member", err)
		return
	}
	c.storage.Remove(member.Image)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Team member deleted"})
}

// saveOptionalImage stores the "image" upload when one was sent
func saveOptionalImage(r *http.Request, storage service.StorageServiceInterface) (string, error) {
	up, err := formFile(r, "image")
	if err != nil || up == nil {
		return "", err
	}
	url, err := storage.SaveImage(up.Data)
	if err != nil {
		return "", fmt.Errorf("%w: image %s: %v", service.ErrInvalidInput, up.Filename, err)
	}
	return url, nil
}
