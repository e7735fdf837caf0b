package service

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"linedori-web/home"
	"linedori-web/models"
	"linedori-web/utils"
)

// HomePageData feeds the home template
type HomePageData struct {
	Sections      []home.Section
	ViewportWidth int
}

// Tab is a sub category filter link
type Tab struct {
	Label  string
	Href   string
	Active bool
}

// CategoryPageData feeds the category listing template
type CategoryPageData struct {
	Title    string
	Tabs     []Tab
	Projects []models.Project
}

// BuildCategoryPage filters projects for a category listing and builds its tabs
func BuildCategoryPage(page utils.CategoryPage, sub string, projects []models.Project) CategoryPageData {
	sub = utils.NormalizeSlug(sub)
	data := CategoryPageData{
		Title:    utils.TabLabel(page.Slug),
		Projects: utils.FilterCategory(projects, page, sub),
	}
	for _, slug := range page.Tabs {
		data.Tabs = append(data.Tabs, Tab{
			Label:  utils.TabLabel(slug),
			Href:   "/" + page.Slug + "/" + slug,
			Active: slug == sub,
		})
	}
	return data
}

// GridImage is one image of the detail grid
type GridImage struct {
	Src       string
	Href      string
	Landscape bool
}

// LightboxView is the fullscreen viewer state rendered on the detail page
type LightboxView struct {
	Src         string
	Position    int
	Total       int
	Zoom        string
	PrevHref    string
	NextHref    string
	ZoomInHref  string
	ZoomOutHref string
	CloseHref   string
	CanZoomIn   bool
	CanZoomOut  bool
	// SwipeHref is the current view; touch handlers append &swipe=dx to it
	SwipeHref      string
	SwipeThreshold int
}

// ProjectPageData feeds the project detail and print templates
type ProjectPageData struct {
	Project      models.Project
	Cover        string
	CoverHref    string
	ContactLines []string
	Paragraphs   []string
	Grid         []GridImage
	SpecsHref    string
	Lightbox     *LightboxView
}

// BuildProjectPage prepares the detail view. imageIndex selects the open lightbox image, nil for none.
func BuildProjectPage(p models.Project, imageIndex *int, zoom float64) ProjectPageData {
	base := home.ProjectPath(p.ID)
	data := ProjectPageData{
		Project:      p,
		Cover:        p.CoverImage(),
		ContactLines: utils.Lines(p.ContactDescription),
		Paragraphs:   utils.Paragraphs(p.Description),
		SpecsHref:    base + "/specs.pdf",
	}
	if data.Cover != "" {
		data.CoverHref = lightboxHref(base, 0, utils.MinZoom)
	}
	for i, img := range utils.GridImages(p.Images) {
		data.Grid = append(data.Grid, GridImage{
			Src:       img,
			Href:      lightboxHref(base, i+1, utils.MinZoom),
			Landscape: utils.IsLandscape(img),
		})
	}

	if imageIndex != nil && len(p.Images) > 0 {
		lb := utils.NewLightbox(*imageIndex, len(p.Images), zoom)
		data.Lightbox = &LightboxView{
			Src:         p.Images[lb.Index],
			Position:    lb.Index + 1,
			Total:       lb.Total,
			Zoom:        utils.FormatZoom(lb.Zoom),
			ZoomInHref:  lightboxHref(base, lb.Index, lb.ZoomIn()),
			ZoomOutHref: lightboxHref(base, lb.Index, lb.ZoomOut()),
			CloseHref:   base,
			CanZoomIn:   lb.Zoom < utils.MaxZoom,
			CanZoomOut:  lb.Zoom > utils.MinZoom,

			SwipeHref:      lightboxHref(base, lb.Index, lb.Zoom),
			SwipeThreshold: utils.SwipeThreshold,
		}
		if lb.HasPrev() {
			data.Lightbox.PrevHref = lightboxHref(base, lb.Prev(), utils.MinZoom)
		}
		if lb.HasNext() {
			data.Lightbox.NextHref = lightboxHref(base, lb.Next(), utils.MinZoom)
		}
	}
	return data
}

// SwipeTarget returns the lightbox view reached by a horizontal drag of dx
// pixels (start x minus end x) from image index. Zoom is kept.
func SwipeTarget(p models.Project, index int, zoom float64, dx int) string {
	lb := utils.NewLightbox(index, len(p.Images), zoom)
	return lightboxHref(home.ProjectPath(p.ID), lb.Swipe(dx), lb.Zoom)
}

func lightboxHref(base string, index int, zoom float64) string {
	q := url.Values{}
	q.Set("image", strconv.Itoa(index))
	if zoom != utils.MinZoom {
		q.Set("zoom", utils.FormatZoom(zoom))
	}
	return fmt.Sprintf("%s?%s", base, q.Encode())
}

// TeamMemberView is a team member with rendered description
type TeamMemberView struct {
	models.TeamMember
	DescriptionHTML template.HTML
}

// AboutPageData feeds the about template
type AboutPageData struct {
	Studio     *models.Studio
	StudioHTML template.HTML
	Team       []TeamMemberView
}

// BuildAboutPage renders the long text of the studio and team
func BuildAboutPage(studio *models.Studio, team []models.TeamMember) AboutPageData {
	data := AboutPageData{Studio: studio}
	if studio != nil {
		data.StudioHTML = RenderMarkdown(studio.Description)
	}
	for _, m := range team {
		data.Team = append(data.Team, TeamMemberView{TeamMember: m, DescriptionHTML: RenderMarkdown(m.Description)})
	}
	return data
}

// PressView is a press article with rendered description
type PressView struct {
	models.Press
	DescriptionHTML template.HTML
}

// PressPageData feeds the press template
type PressPageData struct {
	Articles []PressView
}

// BuildPressPage renders the press list
func BuildPressPage(press []models.Press) PressPageData {
	var data PressPageData
	for _, p := range press {
		data.Articles = append(data.Articles, PressView{Press: p, DescriptionHTML: RenderMarkdown(p.Description)})
	}
	return data
}
