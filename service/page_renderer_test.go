package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linedori-web/home"
	"linedori-web/models"
	"linedori-web/utils"
)

func TestPageRenderer_Home(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	studio := &models.Studio{Title: "Linedori", Description: "A small studio in Seoul"}
	projects := []models.Project{
		{ID: "p1", Title: "First", Images: []string{"/uploads/1.jpg", "/uploads/1b.jpg"}},
		{ID: "v1", Title: "Clip", Category: models.CategoryVideo, VideoFile: "/uploads/clip.mp4"},
	}
	sections := home.Layout(home.DefaultConfig(), projects, studio, home.NewViewport(1280))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageHome, HomePageData{Sections: sections, ViewportWidth: 1280}))
	out := buf.String()

	assert.Contains(t, out, `href="/projects/p1"`)
	assert.Contains(t, out, `class="hover" src="/uploads/1b.jpg"`)
	assert.Contains(t, out, `<video src="/uploads/clip.mp4"`)
	assert.Contains(t, out, "A small studio in Seoul")
	assert.Contains(t, out, `href="/about"`)
	assert.Contains(t, out, `id="home-anchor"`)
}

func TestPageRenderer_HomeResizeScript(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	studio := &models.Studio{Title: "Linedori", Description: "a b c"}
	sections := home.Layout(home.DefaultConfig(), nil, studio, home.NewViewport(500))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageHome, HomePageData{Sections: sections, ViewportWidth: 500}))
	out := buf.String()

	assert.Contains(t, out, `<p class="studio-summary">a b c</p>`)
	assert.Contains(t, out, `document.querySelector(".studio-summary")`)
	assert.Contains(t, out, `addEventListener("resize", onResize)`)
	assert.Contains(t, out, `addEventListener("pagehide"`)
	assert.Contains(t, out, "/home/studio-summary?width=")
}

func TestPageRenderer_HomeCardFallbacks(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	projects := []models.Project{
		{ID: "v1", Title: "Clip", Category: models.CategoryVideo, Images: []string{"/uploads/still.jpg"}},
		{ID: "v2", Title: "Empty clip", Category: models.CategoryVideo},
		{ID: "p1", Title: "No images"},
	}
	sections := home.Layout(home.DefaultConfig(), projects, nil, home.NewViewport(1280))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageHome, HomePageData{Sections: sections, ViewportWidth: 1280}))
	out := buf.String()

	assert.NotContains(t, out, `<video src=""`)
	assert.Contains(t, out, `<img src="/uploads/still.jpg"`)
	assert.Equal(t, 2, strings.Count(out, `class="no-preview"`))
}

func TestPageRenderer_ProjectAndCategory(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	idx := 0
	page := BuildProjectPage(models.Project{ID: "p1", Title: "House <A>", Images: []string{"/uploads/a.1.50.jpg", "/uploads/b.2.00.jpg"}}, &idx, 2)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageProject, page))
	assert.Contains(t, buf.String(), "House &lt;A&gt;")
	assert.Contains(t, buf.String(), `role="dialog"`)
	assert.Contains(t, buf.String(), `class="landscape"`)

	buf.Reset()
	require.NoError(t, r.Render(&buf, PagePrint, page))
	assert.Contains(t, buf.String(), "specs")

	buf.Reset()
	cat := BuildCategoryPage(utils.CategoryPages["objects"], "all", []models.Project{{ID: "o1", Title: "Lamp", Category: "Objects"}})
	require.NoError(t, r.Render(&buf, PageCategory, cat))
	assert.Contains(t, buf.String(), "Lamp")
	assert.Contains(t, buf.String(), `href="/objects/lighting"`)
}

func TestPageRenderer_AboutAndPress(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageAbout, BuildAboutPage(&models.Studio{Title: "Linedori", Email: "hi@linedori.com"}, []models.TeamMember{{Name: "Lee"}})))
	assert.Contains(t, buf.String(), "mailto:hi@linedori.com")
	assert.Contains(t, buf.String(), "Lee")

	buf.Reset()
	require.NoError(t, r.Render(&buf, PagePress, BuildPressPage(nil)))
	assert.Contains(t, buf.String(), "No press yet.")
}

func TestPageRenderer_UnknownPage(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing.html", nil))
	assert.Zero(t, buf.Len())
}
