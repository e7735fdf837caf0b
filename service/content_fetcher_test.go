package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linedori-web/models"
	"linedori-web/repository"
)

func projectIDs(projects []models.Project) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSelectHomeProjects(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{ID: "not-home", ToHomePage: false, IsPrior: true},
		{ID: "reserved", ToHomePage: true, HomePageOrder: intPtr(7)},
		{ID: "order2", ToHomePage: true, HomePageOrder: intPtr(2)},
		{ID: "order1", ToHomePage: true, HomePageOrder: intPtr(1)},
		{ID: "old", ToHomePage: true, CreatedAt: base},
		{ID: "new", ToHomePage: true, CreatedAt: base.Add(time.Hour)},
		{ID: "prior", ToHomePage: true, IsPrior: true, CreatedAt: base.Add(-time.Hour)},
	}

	got := SelectHomeProjects(projects, 7)
	want := []string{"order1", "order2", "prior", "new", "old"}
	if diff := cmp.Diff(want, projectIDs(got)); diff != "" {
		t.Errorf("SelectHomeProjects() mismatch (-want +got):\n%s", diff)
	}
}

func newBackend(t *testing.T, handler http.HandlerFunc) *ContentFetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewContentFetcher(srv.URL+"/", srv.Client())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestContentFetcher_FetchHomeContent(t *testing.T) {
	f := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/homepage/list":
			writeJSON(w, []models.Project{
				{ID: "b", ToHomePage: true, HomePageOrder: intPtr(2)},
				{ID: "a", ToHomePage: true, HomePageOrder: intPtr(1)},
				{ID: "prior-only", IsPrior: true},
			})
		case "/api/studio":
			writeJSON(w, []models.Studio{{ID: "s1", Title: "Linedori"}, {ID: "s2"}})
		default:
			http.NotFound(w, r)
		}
	})

	content := f.FetchHomeContent(context.Background(), 7)
	assert.Equal(t, []string{"a", "b"}, projectIDs(content.Projects))
	require.NotNil(t, content.Studio)
	assert.Equal(t, "s1", content.Studio.ID)
}

func TestContentFetcher_FailuresAreIndependent(t *testing.T) {
	f := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/homepage/list":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "/api/studio":
			writeJSON(w, []models.Studio{{ID: "s1"}})
		}
	})
	content := f.FetchHomeContent(context.Background(), 7)
	assert.NotNil(t, content.Projects)
	assert.Empty(t, content.Projects)
	require.NotNil(t, content.Studio)

	f = newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/homepage/list":
			writeJSON(w, []models.Project{{ID: "a", ToHomePage: true}})
		case "/api/studio":
			w.Write([]byte("not json"))
		}
	})
	content = f.FetchHomeContent(context.Background(), 7)
	assert.Equal(t, []string{"a"}, projectIDs(content.Projects))
	assert.Nil(t, content.Studio)
}

func TestContentFetcher_EmptyStudioList(t *testing.T) {
	f := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.Studio{})
	})
	studio, err := f.FetchStudio(context.Background())
	require.NoError(t, err)
	assert.Nil(t, studio)
}

func TestContentFetcher_FetchProjectNotFound(t *testing.T) {
	f := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	_, err := f.FetchProject(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.FetchTeam(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContentFetcher_Unreachable(t *testing.T) {
	f := NewContentFetcher("http://127.0.0.1:1", &http.Client{Timeout: time.Second})
	_, err := f.FetchPress(context.Background())
	assert.ErrorIs(t, err, ErrBackend)
}

func TestContentFetcher_FetchProjectEscapesID(t *testing.T) {
	var paths []string
	f := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		writeJSON(w, models.Project{ID: "p1"})
	})

	_, err := f.FetchProject(context.Background(), "../studio")
	require.NoError(t, err)
	_, err = f.FetchProject(context.Background(), "a b")
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/projects/..%2Fstudio", "/api/projects/a%20b"}, paths)
}
