package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linedori-web/models"
	"linedori-web/repository"
	"linedori-web/service"
)

// ProjectController handles HTTP requests for projects
type ProjectController struct {
	repository repository.ProjectRepositoryInterface
	service    service.ProjectServiceInterface
}

// NewProjectController creates a new ProjectController
func NewProjectController(repo repository.ProjectRepositoryInterface, svc service.ProjectServiceInterface) *ProjectController {
	return &ProjectController{
		repository: repo,
		service:    svc,
	}
}

// List handles GET /api/projects
func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	projects, err := c.repository.List(r.Context())
	if err != nil {
		writeError(w, "list projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// HomePageList handles GET /api/projects/homepage/list
func (c *ProjectController) HomePageList(w http.ResponseWriter, r *http.Request) {
	projects, err := c.repository.ListHomePage(r.Context())
	if err != nil {
		writeError(w, "list home page projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/projects/{id}
func (c *ProjectController) Get(w http.ResponseWriter, r *http.Request) {
	project, err := c.repository.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get project", err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// decodeProjectForm reads the multipart project form
func decodeProjectForm(r *http.Request) (models.ProjectInput, service.ProjectUploads, error) {
	var in models.ProjectInput
	var uploads service.ProjectUploads

	if err := parseForm(r); err != nil {
		return in, uploads, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}

	in.Title = r.FormValue("title")
	in.Category = r.FormValue("category")
	in.SubCategory = r.FormValue("subCategory")
	in.Description = r.FormValue("description")
	in.ContactDescription = r.FormValue("contactDescription")

	var err error
	if in.IsPrior, err = formBool(r, "isPrior"); err != nil {
		return in, uploads, err
	}
	if in.ToHomePage, err = formBool(r, "toHomePage"); err != nil {
		return in, uploads, err
	}
	if in.HomePageOrder, err = formOptionalInt(r, "homePageOrder"); err != nil {
		return in, uploads, err
	}
	if in.ExistingImages, err = formList(r, "existingImages"); err != nil {
		return in, uploads, err
	}

	if uploads.Images, err = formFiles(r, "images"); err != nil {
		return in, uploads, err
	}
	if uploads.PDF, err = formFile(r, "pdfFile"); err != nil {
		return in, uploads, err
	}
	if uploads.Video, err = formFile(r, "videoFile"); err != nil {
		return in, uploads, err
	}
	return in, uploads, nil
}

// Create handles POST /api/auth/projects
func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	in, uploads, err := decodeProjectForm(r)
	if err != nil {
		writeError(w, "read project form", err)
		return
	}
	log.Printf("📋 Create project: title=%q category=%s images=%d", in.Title, in.Category, len(uploads.Images))

	project, err := c.service.Create(r.Context(), in, uploads)
	if err != nil {
		writeError(w, "create project", err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/auth/projects/{id}
func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	in, uploads, err := decodeProjectForm(r)
	if err != nil {
		writeError(w, "read project form", err)
		return
	}
	project, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), in, uploads)
	if err != nil {
		writeError(w, "update project", err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/auth/projects/{id}
func (c *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete project", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// MoveImage handles PUT /api/auth/projects/{id}/images/order
func (c *ProjectController) MoveImage(w http.ResponseWriter, r *http.Request) {
	var req models.MoveImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	project, err := c.service.MoveImage(r.Context(), chi.URLParam(r, "id"), req.From, req.To)
	if err != nil {
		writeError(w, "reorder images", err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ImportImages handles POST /api/auth/projects/{id}/images/import
func (c *ProjectController) ImportImages(w http.ResponseWriter, r *http.Request) {
	var req models.ImportImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	project, stats, err := c.service.ImportImages(r.Context(), chi.URLParam(r, "id"), req.FolderID)
	if err != nil {
		writeError(w, "import images", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"project": project,
		"stats":   stats,
	})
}
