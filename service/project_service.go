package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"linedori-web/models"
	"linedori-web/repository"
	"linedori-web/utils"
)

// FileUpload is a file received in a multipart form
type FileUpload struct {
	Filename string
	Data     []byte
}

// ProjectUploads groups the files sent with a project form
type ProjectUploads struct {
	Images []FileUpload
	PDF    *FileUpload
	Video  *FileUpload
}

// ProjectService applies admin edits to projects and their stored files
// Implements ProjectServiceInterface
type ProjectService struct {
	repo    repository.ProjectRepositoryInterface
	storage StorageServiceInterface
	drive   DriveServiceInterface
}

// NewProjectService creates a ProjectService. drive may be nil when Drive import is not configured.
func NewProjectService(repo repository.ProjectRepositoryInterface, storage StorageServiceInterface, drive DriveServiceInterface) *ProjectService {
	return &ProjectService{repo: repo, storage: storage, drive: drive}
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// ValidateProjectInput normalizes and checks the editable fields
func ValidateProjectInput(in *models.ProjectInput) error {
	// Trim text fields the form may pad
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.SubCategory = strings.TrimSpace(in.SubCategory)

	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !models.IsValidCategory(in.Category) {
		return fmt.Errorf("%w: category must be one of %s", ErrInvalidInput, strings.Join(models.Categories, ", "))
	}
	// An order only means something on the home page
	if !in.ToHomePage {
		in.HomePageOrder = nil
	}
	return nil
}

// applyInput copies the validated form fields onto p; files are handled separately
func applyInput(p *models.Project, in models.ProjectInput) {
	p.Title = in.Title
	p.Category = in.Category
	p.SubCategory = in.SubCategory
	p.Description = in.Description
	p.ContactDescription = in.ContactDescription
	p.IsPrior = in.IsPrior
	p.ToHomePage = in.ToHomePage
	p.HomePageOrder = in.HomePageOrder
}

// saveImages stores uploads in order. On failure the files already written are removed.
func (s *ProjectService) saveImages(uploads []FileUpload) ([]string, error) {
	stored := make([]string, 0, len(uploads))
	for _, up := range uploads {
		url, err := s.storage.SaveImage(up.Data)
		if err != nil {
			s.storage.Remove(stored...)
			return nil, fmt.Errorf("%w: image %s: %v", ErrInvalidInput, up.Filename, err)
		}
		stored = append(stored, url)
	}
	return stored, nil
}

// Create stores uploads and inserts a new project
func (s *ProjectService) Create(ctx context.Context, in models.ProjectInput, uploads ProjectUploads) (*models.Project, error) {
	if err := ValidateProjectInput(&in); err != nil {
		return nil, err
	}

	p := &models.Project{ID: uuid.NewString(), Images: []string{}}
	applyInput(p, in)

	// Store images (video projects carry none)
	var written []string
	if !p.IsVideo() {
		images, err := s.saveImages(uploads.Images)
		if err != nil {
			return nil, err
		}
		p.Images = images
		written = append(written, images...)
	}
	// Store pdf and video attachments
	if err := s.attachFiles(p, uploads, &written); err != nil {
		s.storage.Remove(written...)
		return nil, err
	}

	// Insert record, dropping the stored files if it fails
	if err := s.repo.Create(ctx, p); err != nil {
		s.storage.Remove(written...)
		return nil, err
	}
	log.Printf("✓ Created project %s with %d images", p.ID, len(p.Images))
	return p, nil
}

// attachFiles stores the pdf (Objects only) and video (video only) uploads
func (s *ProjectService) attachFiles(p *models.Project, uploads ProjectUploads, written *[]string) error {
	if uploads.PDF != nil && p.Category == models.CategoryObjects {
		url, err := s.storage.SaveFile(uploads.PDF.Data, uploads.PDF.Filename)
		if err != nil {
			return err
		}
		*written = append(*written, url)
		p.PDFFile = url
	}
	if uploads.Video != nil && p.IsVideo() {
		url, err := s.storage.SaveFile(uploads.Video.Data, uploads.Video.Filename)
		if err != nil {
			return err
		}
		*written = append(*written, url)
		p.VideoFile = url
	}
	return nil
}

// Update applies the form to an existing project.
// Images become in.ExistingImages (only those the project already had, in the given order)
// followed by the new uploads; a nil ExistingImages keeps every current image.
func (s *ProjectService) Update(ctx context.Context, id string, in models.ProjectInput, uploads ProjectUploads) (*models.Project, error) {
	if err := ValidateProjectInput(&in); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Keep the stored state to work out which files become unreferenced
	previous := *p
	applyInput(p, in)

	// Rebuild the image list: kept images first, then new uploads
	var written []string
	if p.IsVideo() {
		p.Images = []string{}
	} else {
		kept := keptImages(previous.Images, in.ExistingImages)
		added, err := s.saveImages(uploads.Images)
		if err != nil {
			return nil, err
		}
		written = append(written, added...)
		p.Images = append(kept, added...)
	}

	// A new pdf or video replaces the old one
	if uploads.PDF != nil && p.Category == models.CategoryObjects {
		p.PDFFile = ""
	}
	if uploads.Video != nil && p.IsVideo() {
		p.VideoFile = ""
	}
	if err := s.attachFiles(p, uploads, &written); err != nil {
		s.storage.Remove(written...)
		return nil, err
	}
	// Attachments that no longer fit the category are dropped
	if p.Category != models.CategoryObjects {
		p.PDFFile = ""
	}
	if !p.IsVideo() {
		p.VideoFile = ""
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.storage.Remove(written...)
		return nil, err
	}

	// Clean up files the project stopped referencing
	s.storage.Remove(droppedFiles(previous, *p)...)
	log.Printf("✓ Updated project %s (%d images)", p.ID, len(p.Images))
	return p, nil
}

// keptImages filters existing down to images present in current, deduplicated,
// in the order given. A nil existing keeps current as is.
func keptImages(current, existing []string) []string {
	if existing == nil {
		return append([]string{}, current...)
	}
	owned := make(map[string]bool, len(current))
	for _, img := range current {
		owned[img] = true
	}
	kept := make([]string, 0, len(existing))
	seen := make(map[string]bool, len(existing))
	for _, img := range existing {
		if owned[img] && !seen[img] {
			kept = append(kept, img)
			seen[img] = true
		}
	}
	return kept
}

// droppedFiles lists the stored files of before that after no longer references
func droppedFiles(before, after models.Project) []string {
	still := make(map[string]bool, len(after.Images)+2)
	for _, img := range after.Images {
		still[img] = true
	}
	still[after.PDFFile] = true
	still[after.VideoFile] = true

	var dropped []string
	for _, f := range append(append([]string{}, before.Images...), before.PDFFile, before.VideoFile) {
		if f != "" && !still[f] {
			dropped = append(dropped, f)
		}
	}
	return dropped
}

// Delete removes a project and its stored files
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// Every stored file of the project is now unreferenced
	s.storage.Remove(droppedFiles(*p, models.Project{})...)
	log.Printf("✓ Deleted project %s", id)
	return nil
}

// MoveImage moves one image of a project to a new position
func (s *ProjectService) MoveImage(ctx context.Context, id string, from, to int) (*models.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := utils.MoveImage(p.Images, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.UpdateImages(ctx, id, images); err != nil {
		return nil, err
	}
	p.Images = images
	log.Printf("🔄 Moved image %d -> %d on project %s", from, to, id)
	return p, nil
}

// ImportStats reports the outcome of a Drive import
type ImportStats struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportImages downloads the images of a Drive folder, optimizes them and appends them to a project.
// Files that fail to download or decode are skipped and reported.
func (s *ProjectService) ImportImages(ctx context.Context, id, folderID string) (*models.Project, *ImportStats, error) {
	// Validate configuration and input
	if s.drive == nil {
		return nil, nil, fmt.Errorf("%w: Google Drive import is not configured", ErrInvalidInput)
	}
	if strings.TrimSpace(folderID) == "" {
		return nil, nil, fmt.Errorf("%w: folderId is required", ErrInvalidInput)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.IsVideo() {
		return nil, nil, fmt.Errorf("%w: video projects have no images", ErrInvalidInput)
	}

	// List images in the folder
	log.Printf("📥 Starting Drive import for project %s from folder %s", id, folderID)
	files, err := s.drive.ListFolderImages(ctx, folderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list Drive folder: %w", err)
	}

	stats := &ImportStats{Total: len(files)}
	var added []string
	for _, f := range files {
		// Download file
		data, err := s.drive.DownloadFile(ctx, f.ID)
		if err != nil {
			log.Printf("❌ Error downloading %s: %v", f.Name, err)
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", f.Name, err))
			continue
		}
		// Optimize and store image
		url, err := s.storage.SaveImage(data)
		if err != nil {
			log.Printf("❌ Error storing %s: %v", f.Name, err)
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", f.Name, err))
			continue
		}
		added = append(added, url)
		stats.Imported++
	}

	// Append imported images after the current ones
	if len(added) > 0 {
		images := append(append([]string{}, p.Images...), added...)
		if err := s.repo.UpdateImages(ctx, id, images); err != nil {
			s.storage.Remove(added...)
			return nil, nil, err
		}
		p.Images = images
	}
	log.Printf("🎉 Drive import completed: %d imported, %d failed, %d total", stats.Imported, stats.Failed, stats.Total)
	return p, stats, nil
}
