package service

import (
	"context"
	"fmt"
	"sync"

	"linedori-web/models"
	"linedori-web/repository"
)

type memoryProjects struct {
	mu       sync.Mutex
	projects map[string]models.Project
}

func newMemoryProjects(projects ...models.Project) *memoryProjects {
	m := &memoryProjects{projects: map[string]models.Project{}}
	for _, p := range projects {
		m.projects[p.ID] = p
	}
	return m
}

func (m *memoryProjects) List(ctx context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Project{}
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryProjects) ListHomePage(ctx context.Context) ([]models.Project, error) {
	all, _ := m.List(ctx)
	out := []models.Project{}
	for _, p := range all {
		if p.ToHomePage || p.IsPrior {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryProjects) GetByID(ctx context.Context, id string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, repository.ErrNotFound)
	}
	p.Images = append([]string{}, p.Images...)
	return &p, nil
}

func (m *memoryProjects) Create(ctx context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = *p
	return nil
}

func (m *memoryProjects) Update(ctx context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[p.ID]; !ok {
		return repository.ErrNotFound
	}
	m.projects[p.ID] = *p
	return nil
}

func (m *memoryProjects) UpdateImages(ctx context.Context, id string, images []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Images = images
	m.projects[id] = p
	return nil
}

func (m *memoryProjects) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

type memoryStorage struct {
	mu      sync.Mutex
	next    int
	saved   []string
	removed []string
	failOn  string
}

func (s *memoryStorage) SaveImage(data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if string(data) == s.failOn {
		return "", fmt.Errorf("cannot decode")
	}
	s.next++
	url := fmt.Sprintf("/uploads/img%d.1.00.jpg", s.next)
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *memoryStorage) SaveFile(data []byte, originalName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	url := fmt.Sprintf("/uploads/file%d-%s", s.next, originalName)
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *memoryStorage) Remove(urlPaths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, urlPaths...)
}

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]models.User{}}
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memoryUsers) Create(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}

func (m *memoryUsers) CreateFirstAdmin(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Role == models.RoleAdmin {
			return repository.ErrAdminExists
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memoryUsers) CountByRole(ctx context.Context, role string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]models.Session{}}
}

func (m *memorySessions) Create(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = *s
	return nil
}

func (m *memorySessions) Get(ctx context.Context, token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *memorySessions) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *memorySessions) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeDrive struct {
	files    []DriveImage
	contents map[string][]byte
}

func (d *fakeDrive) ListFolderImages(ctx context.Context, folderID string) ([]DriveImage, error) {
	return d.files, nil
}

func (d *fakeDrive) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := d.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return data, nil
}
