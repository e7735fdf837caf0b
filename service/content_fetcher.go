package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"linedori-web/models"
	"linedori-web/repository"
)

// ErrBackend is returned for transport failures and unexpected statuses from the content backend
var ErrBackend = errors.New("content backend request failed")

// HomeContent is what the home page needs from the backend.
// Projects is empty and Studio is nil when the matching fetch failed.
type HomeContent struct {
	Projects []models.Project
	Studio   *models.Studio
}

// ContentFetcher reads public content from the REST backend
// Implements ContentFetcherInterface
type ContentFetcher struct {
	baseURL string
	http    *http.Client
}

// NewContentFetcher creates a ContentFetcher for baseURL (e.g. "http://localhost:8080").
// A nil client gets a 10 second timeout client.
func NewContentFetcher(baseURL string, client *http.Client) *ContentFetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ContentFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

// Ensure ContentFetcher implements ContentFetcherInterface
var _ ContentFetcherInterface = (*ContentFetcher)(nil)

// FetchHomeContent loads the home projects and the studio concurrently.
// Failures are logged and leave the matching field at its default; no retry is made.
func (f *ContentFetcher) FetchHomeContent(ctx context.Context, reservedSlot int) HomeContent {
	var content HomeContent
	var g errgroup.Group

	g.Go(func() error {
		projects, err := f.FetchHomeProjects(ctx)
		if err != nil {
			log.Printf("❌ Failed to fetch home projects: %v", err)
			return nil
		}
		content.Projects = SelectHomeProjects(projects, reservedSlot)
		return nil
	})
	g.Go(func() error {
		studio, err := f.FetchStudio(ctx)
		if err != nil {
			log.Printf("❌ Failed to fetch studio: %v", err)
			return nil
		}
		content.Studio = studio
		return nil
	})
	_ = g.Wait()

	if content.Projects == nil {
		content.Projects = []models.Project{}
	}
	log.Printf("✓ Home content loaded: %d projects, studio=%v", len(content.Projects), content.Studio != nil)
	return content
}

// FetchHomeProjects returns the raw home page candidates
func (f *ContentFetcher) FetchHomeProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := f.get(ctx, "/api/projects/homepage/list", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchStudio returns the first studio record, or nil when there is none
func (f *ContentFetcher) FetchStudio(ctx context.Context) (*models.Studio, error) {
	var studios []models.Studio
	if err := f.get(ctx, "/api/studio", &studios); err != nil {
		return nil, err
	}
	if len(studios) == 0 {
		return nil, nil
	}
	return &studios[0], nil
}

// FetchProjects returns every project, newest first
func (f *ContentFetcher) FetchProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := f.get(ctx, "/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchProject returns one project; a 404 maps to repository.ErrNotFound
func (f *ContentFetcher) FetchProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := f.get(ctx, "/api/projects/"+url.PathEscape(id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// FetchTeam returns the team members
func (f *ContentFetcher) FetchTeam(ctx context.Context) ([]models.TeamMember, error) {
	var team []models.TeamMember
	if err := f.get(ctx, "/api/team", &team); err != nil {
		return nil, err
	}
	return team, nil
}

// FetchPress returns the press articles
func (f *ContentFetcher) FetchPress(ctx context.Context) ([]models.Press, error) {
	var press []models.Press
	if err := f.get(ctx, "/api/press", &press); err != nil {
		return nil, err
	}
	return press, nil
}

func (f *ContentFetcher) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrBackend, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("GET %s: %w", path, repository.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: GET %s: status %d", ErrBackend, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: GET %s: invalid JSON: %v", ErrBackend, path, err)
	}
	return nil
}

// SelectHomeProjects keeps projects flagged for the home page that do not claim the reserved
// studio slot, ordered by homePageOrder (unset last), then prior work first, then newest first.
func SelectHomeProjects(projects []models.Project, reservedSlot int) []models.Project {
	selected := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !p.ToHomePage {
			continue
		}
		if p.HomePageOrder != nil && *p.HomePageOrder == reservedSlot {
			continue
		}
		selected = append(selected, p)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		switch {
		case a.HomePageOrder != nil && b.HomePageOrder != nil && *a.HomePageOrder != *b.HomePageOrder:
			return *a.HomePageOrder < *b.HomePageOrder
		case (a.HomePageOrder == nil) != (b.HomePageOrder == nil):
			return a.HomePageOrder != nil
		case a.IsPrior != b.IsPrior:
			return a.IsPrior
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return selected
}
