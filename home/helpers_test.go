package home

import (
	"fmt"
	"strings"
	"time"

	"linedori-web/models"
)

func makeProjects(n int) []models.Project {
	projects := make([]models.Project, n)
	for i := range projects {
		order := i + 1
		projects[i] = models.Project{
			ID:            fmt.Sprintf("p%d", i+1),
			Title:         fmt.Sprintf("Project %d", i+1),
			Category:      models.CategoryArchitecture,
			Images:        []string{fmt.Sprintf("uploads/p%d.1.50.jpg", i+1)},
			ToHomePage:    true,
			HomePageOrder: &order,
			CreatedAt:     time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC),
		}
	}
	return projects
}

func testStudio() *models.Studio {
	return &models.Studio{ID: "s1", Title: "Linedori", Description: words(120)}
}

// words returns "w1 w2 ... wn".
func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i+1)
	}
	return strings.Join(parts, " ")
}

// labels renders items as "p1", "p2", "studio" for compact comparisons.
func labels(items []HomeItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if IsStudio(item) {
			out = append(out, "studio")
			continue
		}
		p, _ := AsProject(item)
		out = append(out, p.ID)
	}
	return out
}

func groupLabels(groups []LayoutGroup) [][]string {
	out := make([][]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, labels(g))
	}
	return out
}
