package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"linedori-web/models"
)

// SubCategoryAll matches every sub category
const SubCategoryAll = "all"

// CategoryPage describes a public category listing
type CategoryPage struct {
	Slug     string
	Category string
	// Tabs are the sub category slugs shown as filters; empty means no tabs
	Tabs []string
	// HideHomePage hides projects featured on the home page
	HideHomePage bool
}

// CategoryPages lists the public category listings keyed by URL slug
var CategoryPages = map[string]CategoryPage{
	"architecture": {Slug: "architecture", Category: models.CategoryArchitecture, Tabs: []string{"all", "residential", "commercial"}},
	"interior":     {Slug: "interior", Category: models.CategoryInterior, Tabs: []string{"all", "residential", "commercial"}},
	"objects":      {Slug: "objects", Category: models.CategoryObjects, Tabs: []string{"all", "furniture", "lighting"}, HideHomePage: true},
	"exhibition":   {Slug: "exhibition", Category: models.CategoryExhibition, HideHomePage: true},
}

// MaxCategoryProjects caps the number of projects on a listing
const MaxCategoryProjects = 30

var titleCaser = cases.Title(language.English)

// TabLabel turns a sub category slug into its display label
// Example: "residential" -> "Residential"
func TabLabel(slug string) string {
	return titleCaser.String(strings.ToLower(slug))
}

// NormalizeSlug lowercases and trims a sub category from the URL, defaulting to "all"
func NormalizeSlug(sub string) string {
	s := strings.ToLower(strings.TrimSpace(sub))
	if s == "" {
		return SubCategoryAll
	}
	return s
}

// MatchesCategory reports whether a project belongs on the page for the given sub category.
// Comparison is case-insensitive; unknown values simply do not match.
func MatchesCategory(p models.Project, page CategoryPage, sub string) bool {
	if !strings.EqualFold(strings.TrimSpace(p.Category), page.Category) {
		return false
	}
	if page.HideHomePage && p.ToHomePage {
		return false
	}
	sub = NormalizeSlug(sub)
	if len(page.Tabs) == 0 || sub == SubCategoryAll {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(p.SubCategory), sub)
}

// FilterCategory returns the projects shown on a category page, in order, capped at MaxCategoryProjects
func FilterCategory(projects []models.Project, page CategoryPage, sub string) []models.Project {
	var filtered []models.Project
	for _, p := range projects {
		if !MatchesCategory(p, page, sub) {
			continue
		}
		filtered = append(filtered, p)
		if len(filtered) == MaxCategoryProjects {
			break
		}
	}
	return filtered
}
