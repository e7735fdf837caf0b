package home

import "linedori-web/models"

// ReservedStudioSlot is the 1-indexed position the studio panel takes among home items.
const ReservedStudioSlot = 7

// InsertStudioSlot splices the studio marker into projects at ReservedStudioSlot.
// With no studio the projects are returned as items in the same order.
func InsertStudioSlot(projects []models.Project, studio *models.Studio) []HomeItem {
	return InsertStudioSlotAt(projects, studio, ReservedStudioSlot)
}

// InsertStudioSlotAt is InsertStudioSlot with an explicit reserved position.
// When fewer than slot projects exist the marker goes last.
// A slot below 1 is treated as 1.
func InsertStudioSlotAt(projects []models.Project, studio *models.Studio, slot int) []HomeItem {
	if slot < 1 {
		slot = 1
	}

	size := len(projects)
	if studio != nil {
		size++
	}
	items := make([]HomeItem, 0, size)

	if studio == nil {
		for _, p := range projects {
			items = append(items, ProjectItem{Project: p})
		}
		return items
	}

	if len(projects) < slot {
		for _, p := range projects {
			items = append(items, ProjectItem{Project: p})
		}
		return append(items, StudioMarker{})
	}

	for _, p := range projects[:slot-1] {
		items = append(items, ProjectItem{Project: p})
	}
	items = append(items, StudioMarker{})
	for _, p := range projects[slot-1:] {
		items = append(items, ProjectItem{Project: p})
	}
	return items
}
