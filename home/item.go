package home

import "linedori-web/models"

// HomeItem is either a ProjectItem or a StudioMarker.
// The interface is sealed: only this package can add variants.
type HomeItem interface {
	homeItem()
}

// ProjectItem wraps a project placed on the home page.
type ProjectItem struct {
	Project models.Project
}

// StudioMarker reserves the position of the studio panel. It carries no payload.
type StudioMarker struct{}

func (ProjectItem) homeItem()  {}
func (StudioMarker) homeItem() {}

// IsStudio reports whether item is the studio marker.
func IsStudio(item HomeItem) bool {
	_, ok := item.(StudioMarker)
	return ok
}

// AsProject returns the wrapped project when item is a ProjectItem.
func AsProject(item HomeItem) (models.Project, bool) {
	p, ok := item.(ProjectItem)
	if !ok {
		return models.Project{}, false
	}
	return p.Project, true
}

// LayoutGroup is one visual row of the home page: one or two items.
type LayoutGroup []HomeItem

// HasStudio reports whether the group holds the studio marker in any slot.
func (g LayoutGroup) HasStudio() bool {
	for _, item := range g {
		if IsStudio(item) {
			return true
		}
	}
	return false
}

// Projects returns the projects of the group in order, skipping the marker.
func (g LayoutGroup) Projects() []models.Project {
	projects := make([]models.Project, 0, len(g))
	for _, item := range g {
		if p, ok := AsProject(item); ok {
			projects = append(projects, p)
		}
	}
	return projects
}
