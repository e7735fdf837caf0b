package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"linedori-web/app/controller"
)

// Controllers groups every HTTP controller the router dispatches to
type Controllers struct {
	Auth    *controller.AuthController
	Project *controller.ProjectController
	Team    *controller.TeamController
	Press   *controller.PressController
	Studio  *controller.StudioController
	Page    *controller.PageController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the site router. Uploaded files in uploadDir are served under /uploads/.
func SetupRoutes(controllers *Controllers, uploadDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Public pages
	page := controllers.Page
	r.Get("/", page.Home)
	r.Get("/home/studio-summary", page.StudioSummary)
	for _, slug := range []string{"architecture", "interior", "objects", "exhibition"} {
		handler := page.Category(slug)
		r.Get("/"+slug, handler)
		r.Get("/"+slug+"/{sub}", handler)
	}
	r.Get("/projects/{id}", page.Project)
	r.Get("/projects/{id}/print", page.Print)
	r.Get("/projects/{id}/specs.pdf", page.SpecsPDF)
	r.Get("/about", page.About)
	r.Get("/press", page.Press)

	r.Route("/api", func(r chi.Router) {
		// Public content
		r.Get("/projects", controllers.Project.List)
		r.Get("/projects/homepage/list", controllers.Project.HomePageList)
		r.Get("/projects/{id}", controllers.Project.Get)
		r.Get("/team", controllers.Team.List)
		r.Get("/team/{id}", controllers.Team.Get)
		r.Get("/press", controllers.Press.List)
		r.Get("/press/{id}", controllers.Press.Get)
		r.Get("/studio", controllers.Studio.List)
		r.Get("/studio/{id}", controllers.Studio.Get)

		// Authentication
		r.Post("/auth/login", controllers.Auth.Login)
		r.Post("/auth/register", controllers.Auth.Register)
		r.Group(func(r chi.Router) {
			r.Use(controllers.Auth.Identify)
			r.Post("/auth/register-admin", controllers.Auth.RegisterAdmin)
			r.Get("/auth/me", controllers.Auth.Me)
			r.Post("/auth/logout", controllers.Auth.Logout)
		})

		// Admin
		r.Group(func(r chi.Router) {
			r.Use(controllers.Auth.RequireAdmin)

			r.Get("/auth/projects", controllers.Project.List)
			r.Post("/auth/projects", controllers.Project.Create)
			r.Get("/auth/projects/{id}", controllers.Project.Get)
			r.Put("/auth/projects/{id}", controllers.Project.Update)
			r.Delete("/auth/projects/{id}", controllers.Project.Delete)
			r.Put("/auth/projects/{id}/images/order", controllers.Project.MoveImage)
			r.Post("/auth/projects/{id}/images/import", controllers.Project.ImportImages)

			r.Post("/team", controllers.Team.Create)
			r.Put("/team/{id}", controllers.Team.Update)
			r.Delete("/team/{id}", controllers.Team.Delete)

			r.Post("/press", controllers.Press.Create)
			r.Put("/press/{id}", controllers.Press.Update)
			r.Delete("/press/{id}", controllers.Press.Delete)

			r.Post("/studio", controllers.Studio.Create)
			r.Put("/studio/{id}", controllers.Studio.Update)
			r.Delete("/studio/{id}", controllers.Studio.Delete)
		})
	})

	return r
}
