package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"linedori-web/home"
	"linedori-web/models"
	"linedori-web/repository"
	"linedori-web/service"
	"linedori-web/utils"
)

// LayoutConfigProvider supplies the current home layout configuration
type LayoutConfigProvider interface {
	Get() home.Config
}

// PageController renders the public site
type PageController struct {
	content  service.ContentFetcherInterface
	renderer service.PageRendererInterface
	pdf      service.PDFServiceInterface
	config   LayoutConfigProvider
}

// NewPageController creates a new PageController
func NewPageController(
	content service.ContentFetcherInterface,
	renderer service.PageRendererInterface,
	pdf service.PDFServiceInterface,
	config LayoutConfigProvider,
) *PageController {
	return &PageController{
		content:  content,
		renderer: renderer,
		pdf:      pdf,
		config:   config,
	}
}

func (c *PageController) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.renderer.Render(w, page, data); err != nil {
		log.Printf("❌ Failed to render %s: %v", page, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func pageError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, fmt.Sprintf("%s not found", what), http.StatusNotFound)
		return
	}
	log.Printf("❌ Failed to load %s: %v", what, err)
	http.Error(w, fmt.Sprintf("Failed to load %s", what), http.StatusBadGateway)
}

// Home handles GET /
func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	cfg := c.config.Get()
	width := ResolveViewportWidth(r, cfg.DefaultViewportWidth)
	if q := r.URL.Query().Get("vw"); q != "" {
		if _, ok := parseWidth(q); ok {
			http.SetCookie(w, &http.Cookie{Name: viewportCookie, Value: q, Path: "/", SameSite: http.SameSiteLaxMode})
		}
	}
	w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width, Viewport-Width")

	content := c.content.FetchHomeContent(r.Context(), cfg.ReservedStudioSlot)
	sections := home.Layout(cfg, content.Projects, content.Studio, home.NewViewport(width))
	log.Printf("🏠 Home rendered: %d projects in %d sections at width %d", len(content.Projects), len(sections), width)

	c.render(w, service.PageHome, service.HomePageData{Sections: sections, ViewportWidth: width})
}

// StudioSummaryResponse is returned by the studio summary endpoint
type StudioSummaryResponse struct {
	Width     int    `json:"width"`
	WordLimit int    `json:"wordLimit"`
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
}

// StudioSummary handles GET /home/studio-summary?width=N
// Clients call it when their viewport width changes.
func (c *PageController) StudioSummary(w http.ResponseWriter, r *http.Request) {
	cfg := c.config.Get()
	width, ok := parseWidth(r.URL.Query().Get("width"))
	if !ok {
		width = ResolveViewportWidth(r, cfg.DefaultViewportWidth)
	}

	studio, err := c.content.FetchStudio(r.Context())
	if err != nil {
		pageError(w, "studio", err)
		return
	}
	if studio == nil {
		http.Error(w, "studio not found", http.StatusNotFound)
		return
	}

	viewport := home.NewViewport(width)
	summary := home.NewStudioSummary(studio.Description, cfg.WordLimits, viewport)
	defer summary.Close()

	writeJSON(w, http.StatusOK, StudioSummaryResponse{
		Width:     width,
		WordLimit: summary.Limit(),
		Text:      summary.Text(),
		Truncated: summary.Truncated(),
	})
}

// Category returns the handler for a category listing such as /architecture/{sub}
func (c *PageController) Category(slug string) http.HandlerFunc {
	page, ok := utils.CategoryPages[slug]
	if !ok {
		panic(fmt.Sprintf("unknown category page %q", slug))
	}
	return func(w http.ResponseWriter, r *http.Request) {
		sub := chi.URLParam(r, "sub")
		if len(page.Tabs) > 0 && sub == "" {
			http.Redirect(w, r, "/"+page.Slug+"/"+utils.SubCategoryAll, http.StatusFound)
			return
		}

		projects, err := c.content.FetchProjects(r.Context())
		if err != nil {
			pageError(w, "projects", err)
			return
		}
		c.render(w, service.PageCategory, service.BuildCategoryPage(page, sub, projects))
	}
}

func (c *PageController) loadProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	project, err := c.content.FetchProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		pageError(w, "project", err)
		return nil, false
	}
	return project, true
}

// Project handles GET /projects/{id}?image=N&zoom=Z
func (c *PageController) Project(w http.ResponseWriter, r *http.Request) {
	project, ok := c.loadProject(w, r)
	if !ok {
		return
	}

	var imageIndex *int
	if v := r.URL.Query().Get("image"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "image must be an integer", http.StatusBadRequest)
			return
		}
		imageIndex = &n
	}
	zoom := utils.MinZoom
	if v := r.URL.Query().Get("zoom"); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "zoom must be a number", http.StatusBadRequest)
			return
		}
		zoom = z
	}

	// Touch swipes on the lightbox land here and resolve to the neighbouring image
	if v := r.URL.Query().Get("swipe"); v != "" && imageIndex != nil {
		dx, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "swipe must be an integer", http.StatusBadRequest)
			return
		}
		http.Redirect(w, r, service.SwipeTarget(*project, *imageIndex, zoom, dx), http.StatusSeeOther)
		return
	}

	c.render(w, service.PageProject, service.BuildProjectPage(*project, imageIndex, zoom))
}

// Print handles GET /projects/{id}/print, the page printed to the specs PDF
func (c *PageController) Print(w http.ResponseWriter, r *http.Request) {
	project, ok := c.loadProject(w, r)
	if !ok {
		return
	}
	c.render(w, service.PagePrint, service.BuildProjectPage(*project, nil, utils.MinZoom))
}

// SpecsPDF handles GET /projects/{id}/specs.pdf
// Serves the uploaded PDF when there is one, otherwise prints the project page.
func (c *PageController) SpecsPDF(w http.ResponseWriter, r *http.Request) {
	project, ok := c.loadProject(w, r)
	if !ok {
		return
	}
	if project.PDFFile != "" {
		http.Redirect(w, r, project.PDFFile, http.StatusFound)
		return
	}

	pdf, err := c.pdf.ProjectSpecsPDF(r.Context(), project.ID)
	if err != nil {
		log.Printf("❌ Failed to generate specs PDF for %s: %v", project.ID, err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s-specs.pdf"`, project.ID))
	w.Write(pdf)
}

// About handles GET /about
func (c *PageController) About(w http.ResponseWriter, r *http.Request) {
	studio, team := c.fetchAbout(r.Context())
	c.render(w, service.PageAbout, service.BuildAboutPage(studio, team))
}

// fetchAbout loads the studio and the team concurrently; a failure leaves that part empty
func (c *PageController) fetchAbout(ctx context.Context) (*models.Studio, []models.TeamMember) {
	var studio *models.Studio
	var team []models.TeamMember
	var g errgroup.Group

	g.Go(func() error {
		s, err := c.content.FetchStudio(ctx)
		if err != nil {
			log.Printf("❌ Failed to fetch studio: %v", err)
			return nil
		}
		studio = s
		return nil
	})
	g.Go(func() error {
		t, err := c.content.FetchTeam(ctx)
		if err != nil {
			log.Printf("❌ Failed to fetch team: %v", err)
			return nil
		}
		team = t
		return nil
	})
	_ = g.Wait()
	return studio, team
}

// Press handles GET /press
func (c *PageController) Press(w http.ResponseWriter, r *http.Request) {
	press, err := c.content.FetchPress(r.Context())
	if err != nil {
		pageError(w, "press", err)
		return
	}
	c.render(w, service.PagePress, service.BuildPressPage(press))
}
