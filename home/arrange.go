package home

import (
	"fmt"

	"linedori-web/models"
)

// Arrangement is the visual treatment of a layout group.
type Arrangement int

const (
	// ArrangementSingle renders one project full-bleed.
	ArrangementSingle Arrangement = iota
	// ArrangementPaired renders two projects side by side.
	ArrangementPaired
	// ArrangementStudio renders the studio panel next to at most one project.
	ArrangementStudio
)

func (a Arrangement) String() string {
	switch a {
	case ArrangementSingle:
		return "single"
	case ArrangementPaired:
		return "paired"
	case ArrangementStudio:
		return "studio"
	default:
		return fmt.Sprintf("arrangement(%d)", int(a))
	}
}

// CardLayout selects the project card variant.
type CardLayout string

const (
	LayoutFull CardLayout = "full"
	LayoutHalf CardLayout = "half"
)

// AboutPath is where the studio panel's read more control leads.
const AboutPath = "/about"

// Card is a project placed in a section.
type Card struct {
	Project models.Project
	Layout  CardLayout
	// Href is empty for video projects, which play in place.
	Href string
}

// NewCard builds a card, linking non-video projects to their detail page.
func NewCard(project models.Project, layout CardLayout) Card {
	card := Card{Project: project, Layout: layout}
	if !project.IsVideo() {
		card.Href = ProjectPath(project.ID)
	}
	return card
}

// ProjectPath returns the detail route of a project.
func ProjectPath(id string) string {
	return "/projects/" + id
}

// StudioPanel is the left column of the studio arrangement.
type StudioPanel struct {
	Studio       models.Studio
	Summary      string
	WordLimit    int
	Truncated    bool
	ReadMoreHref string
}

// Section is one rendered row of the home page.
type Section struct {
	Arrangement Arrangement
	// Cards holds one full card (single), two half cards (paired) or zero or
	// one half card for the right column of the studio arrangement.
	Cards  []Card
	Studio *StudioPanel
	// Anchor marks the first section, observed for header visibility.
	Anchor bool
}

// Arrange turns layout groups into sections. summary supplies the studio
// description text and may be nil when studio is nil. A marker in a group
// without a studio record is dropped and the rest of the group rendered plainly.
func Arrange(groups []LayoutGroup, studio *models.Studio, summary *StudioSummary) []Section {
	sections := make([]Section, 0, len(groups))

	for _, group := range groups {
		projects := group.Projects()

		switch {
		case group.HasStudio() && studio != nil:
			section := Section{
				Arrangement: ArrangementStudio,
				Studio:      newStudioPanel(*studio, summary),
			}
			if len(projects) > 0 {
				section.Cards = []Card{NewCard(projects[0], LayoutHalf)}
			}
			for _, extra := range projects[min(1, len(projects)):] {
				// The pattern never pairs the marker with two projects; keep any extra visible.
				section.Cards = append(section.Cards, NewCard(extra, LayoutFull))
			}
			sections = append(sections, section)

		case len(projects) == 1:
			sections = append(sections, Section{
				Arrangement: ArrangementSingle,
				Cards:       []Card{NewCard(projects[0], LayoutFull)},
			})

		case len(projects) >= 2:
			cards := make([]Card, 0, len(projects))
			for _, p := range projects {
				cards = append(cards, NewCard(p, LayoutHalf))
			}
			sections = append(sections, Section{Arrangement: ArrangementPaired, Cards: cards})
		}
	}

	if len(sections) > 0 {
		sections[0].Anchor = true
	}
	return sections
}

func newStudioPanel(studio models.Studio, summary *StudioSummary) *StudioPanel {
	panel := &StudioPanel{Studio: studio, ReadMoreHref: AboutPath}
	if summary != nil {
		panel.Summary = summary.Text()
		panel.WordLimit = summary.Limit()
		panel.Truncated = summary.Truncated()
	} else {
		panel.Summary = studio.Description
	}
	return panel
}

// Layout runs the whole pipeline with cfg for a viewport. The studio summary
// subscribes to viewport only for the duration of the call.
func Layout(cfg Config, projects []models.Project, studio *models.Studio, viewport ViewportWidthProvider) []Section {
	items := InsertStudioSlotAt(projects, studio, cfg.ReservedStudioSlot)
	groups := GenerateLayoutGroupsWithPattern(items, cfg.Pattern)

	var summary *StudioSummary
	if studio != nil {
		summary = NewStudioSummary(studio.Description, cfg.WordLimits, viewport)
		defer summary.Close()
	}
	return Arrange(groups, studio, summary)
}
