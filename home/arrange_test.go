package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linedori-web/models"
)

func arrangements(sections []Section) []Arrangement {
	out := make([]Arrangement, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Arrangement)
	}
	return out
}

func TestArrange_NineProjectsWithStudio(t *testing.T) {
	studio := testStudio()
	v := NewViewport(500)
	summary := NewStudioSummary(studio.Description, DefaultWordLimitPolicy(), v)
	defer summary.Close()

	groups := GenerateLayoutGroups(InsertStudioSlot(makeProjects(9), studio))
	sections := Arrange(groups, studio, summary)

	assert.Equal(t, []Arrangement{
		ArrangementSingle, ArrangementSingle, ArrangementPaired,
		ArrangementSingle, ArrangementSingle, ArrangementStudio, ArrangementPaired,
	}, arrangements(sections))

	studioSection := sections[5]
	require.NotNil(t, studioSection.Studio)
	assert.Equal(t, "/about", studioSection.Studio.ReadMoreHref)
	assert.Equal(t, 60, studioSection.Studio.WordLimit)
	assert.True(t, studioSection.Studio.Truncated)
	require.Len(t, studioSection.Cards, 1)
	assert.Equal(t, "p7", studioSection.Cards[0].Project.ID)
	assert.Equal(t, LayoutHalf, studioSection.Cards[0].Layout)

	assert.Equal(t, LayoutFull, sections[0].Cards[0].Layout)
	assert.Equal(t, LayoutHalf, sections[2].Cards[0].Layout)
	assert.Equal(t, "p3", sections[2].Cards[0].Project.ID)
	assert.Equal(t, "p4", sections[2].Cards[1].Project.ID)
}

func TestArrange_MarkerInSecondSlot(t *testing.T) {
	studio := testStudio()
	groups := GenerateLayoutGroups(InsertStudioSlot(makeProjects(3), studio))
	sections := Arrange(groups, studio, nil)

	require.Len(t, sections, 3)
	last := sections[2]
	assert.Equal(t, ArrangementStudio, last.Arrangement)
	require.Len(t, last.Cards, 1)
	assert.Equal(t, "p3", last.Cards[0].Project.ID)
	assert.Equal(t, studio.Description, last.Studio.Summary)
}

func TestArrange_StudioAloneHasEmptyRightColumn(t *testing.T) {
	studio := testStudio()
	sections := Arrange(GenerateLayoutGroups(InsertStudioSlot(nil, studio)), studio, nil)

	require.Len(t, sections, 1)
	assert.Equal(t, ArrangementStudio, sections[0].Arrangement)
	assert.Empty(t, sections[0].Cards)
	assert.True(t, sections[0].Anchor)
}

func TestArrange_MarkerWithoutStudioIsDropped(t *testing.T) {
	p := makeProjects(1)[0]
	groups := []LayoutGroup{
		{StudioMarker{}, ProjectItem{Project: p}},
		{StudioMarker{}},
	}
	sections := Arrange(groups, nil, nil)

	require.Len(t, sections, 1)
	assert.Equal(t, ArrangementSingle, sections[0].Arrangement)
	assert.Equal(t, LayoutFull, sections[0].Cards[0].Layout)
}

func TestArrange_OnlyFirstSectionIsAnchor(t *testing.T) {
	sections := Arrange(GenerateLayoutGroups(InsertStudioSlot(makeProjects(6), nil)), nil, nil)

	require.NotEmpty(t, sections)
	for i, s := range sections {
		assert.Equal(t, i == 0, s.Anchor, "section %d", i)
	}
	assert.Empty(t, Arrange(nil, nil, nil))
}

func TestNewCard_VideoHasNoLink(t *testing.T) {
	video := models.Project{ID: "v1", Category: models.CategoryVideo, VideoFile: "uploads/v1.mp4"}
	assert.Empty(t, NewCard(video, LayoutFull).Href)

	project := models.Project{ID: "a1", Category: models.CategoryInterior}
	assert.Equal(t, "/projects/a1", NewCard(project, LayoutHalf).Href)
}

func TestLayout_UsesConfigAndReleasesViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReservedStudioSlot = 2
	cfg.WordLimits.TopTier = 130

	v := NewViewport(1920)
	studio := testStudio()
	sections := Layout(cfg, makeProjects(3), studio, v)

	// items p1, studio, p2, p3 group as [p1] [studio] [p2 p3]
	assert.Equal(t, []Arrangement{ArrangementSingle, ArrangementStudio, ArrangementPaired}, arrangements(sections))
	assert.Empty(t, sections[1].Cards)
	assert.Equal(t, 130, sections[1].Studio.WordLimit)
	assert.False(t, sections[1].Studio.Truncated)
	assert.Equal(t, studio.Description, sections[1].Studio.Summary)
	assert.Equal(t, 0, v.Subscribers())
}

func TestArrangementString(t *testing.T) {
	assert.Equal(t, "single", ArrangementSingle.String())
	assert.Equal(t, "paired", ArrangementPaired.String())
	assert.Equal(t, "studio", ArrangementStudio.String())
	assert.Equal(t, "arrangement(9)", Arrangement(9).String())
}
