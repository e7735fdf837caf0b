package home

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linedori-web/models"
)

func TestInsertStudioSlot_NoStudioKeepsProjects(t *testing.T) {
	for n := 0; n <= 12; n++ {
		projects := makeProjects(n)
		items := InsertStudioSlot(projects, nil)

		require.Len(t, items, n)
		for i, item := range items {
			p, ok := AsProject(item)
			require.True(t, ok)
			assert.Equal(t, projects[i].ID, p.ID)
		}
	}
}

func TestInsertStudioSlot_ShortListAppendsMarker(t *testing.T) {
	for n := 0; n < ReservedStudioSlot; n++ {
		items := InsertStudioSlot(makeProjects(n), testStudio())

		require.Len(t, items, n+1, "n=%d", n)
		assert.True(t, IsStudio(items[len(items)-1]), "n=%d: marker must be last", n)
		for _, item := range items[:n] {
			assert.False(t, IsStudio(item))
		}
	}
}

func TestInsertStudioSlot_EmptyProjects(t *testing.T) {
	items := InsertStudioSlot(nil, testStudio())
	assert.Equal(t, []string{"studio"}, labels(items))
}

func TestInsertStudioSlot_LongListPlacesMarkerAtReservedSlot(t *testing.T) {
	for n := ReservedStudioSlot; n <= 20; n++ {
		projects := makeProjects(n)
		items := InsertStudioSlot(projects, testStudio())

		require.Len(t, items, n+1)
		assert.True(t, IsStudio(items[ReservedStudioSlot-1]), "n=%d", n)

		var want []string
		for _, p := range projects[:ReservedStudioSlot-1] {
			want = append(want, p.ID)
		}
		want = append(want, "studio")
		for _, p := range projects[ReservedStudioSlot-1:] {
			want = append(want, p.ID)
		}
		if diff := cmp.Diff(want, labels(items)); diff != "" {
			t.Errorf("n=%d: items mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestInsertStudioSlot_DoesNotMutateInput(t *testing.T) {
	projects := makeProjects(9)
	before := make([]models.Project, len(projects))
	copy(before, projects)

	_ = InsertStudioSlot(projects, testStudio())

	assert.Equal(t, before, projects)
}

func TestInsertStudioSlotAt_CustomSlot(t *testing.T) {
	items := InsertStudioSlotAt(makeProjects(4), testStudio(), 2)
	assert.Equal(t, []string{"p1", "studio", "p2", "p3", "p4"}, labels(items))

	items = InsertStudioSlotAt(makeProjects(2), testStudio(), 0)
	assert.Equal(t, []string{"studio", "p1", "p2"}, labels(items))
}
