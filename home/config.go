package home

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// DefaultViewportWidth is used when a request carries no width hint.
const DefaultViewportWidth = 1280

// Config holds the tunable parts of the home layout.
type Config struct {
	ReservedStudioSlot   int             `yaml:"reservedStudioSlot"`
	Pattern              []int           `yaml:"pattern"`
	WordLimits           WordLimitPolicy `yaml:"wordLimits"`
	DefaultViewportWidth int             `yaml:"defaultViewportWidth"`
}

// DefaultConfig returns the built-in layout configuration.
func DefaultConfig() Config {
	pattern := make([]int, len(DefaultPattern))
	copy(pattern, DefaultPattern)
	return Config{
		ReservedStudioSlot:   ReservedStudioSlot,
		Pattern:              pattern,
		WordLimits:           DefaultWordLimitPolicy(),
		DefaultViewportWidth: DefaultViewportWidth,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.ReservedStudioSlot < 1 {
		return fmt.Errorf("reservedStudioSlot must be at least 1, got %d", c.ReservedStudioSlot)
	}
	if len(c.Pattern) == 0 {
		return errors.New("pattern must not be empty")
	}
	for i, size := range c.Pattern {
		if size != 1 && size != 2 {
			return fmt.Errorf("pattern[%d]: group size must be 1 or 2, got %d", i, size)
		}
	}
	if c.DefaultViewportWidth < 1 {
		return fmt.Errorf("defaultViewportWidth must be positive, got %d", c.DefaultViewportWidth)
	}
	if err := c.WordLimits.Validate(); err != nil {
		return fmt.Errorf("wordLimits: %w", err)
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse layout config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid layout config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a layout config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read layout config: %w", err)
	}
	return ParseConfig(data)
}

// ConfigStore holds the active layout config and reloads it from disk.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	cfg  Config
}

// NewConfigStore loads path into a new store. If loading fails the defaults
// are used and the error is returned alongside the usable store.
func NewConfigStore(path string) (*ConfigStore, error) {
	s := &ConfigStore{path: path, cfg: DefaultConfig()}
	if path == "" {
		return s, nil
	}
	return s, s.Reload()
}

// Get returns the active config.
func (s *ConfigStore) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Reload re-reads the file. On error the previous config stays active.
func (s *ConfigStore) Reload() error {
	cfg, err := LoadConfig(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	log.Printf("✓ Layout config loaded from %s (slot=%d, pattern=%v)", s.path, cfg.ReservedStudioSlot, cfg.Pattern)
	return nil
}

// Watch reloads the config whenever its file is written or created.
// It blocks until ctx is cancelled.
func (s *ConfigStore) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create layout config watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files, so watch the directory and filter by name.
	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch layout config directory: %w", err)
	}
	log.Printf("👀 Watching layout config: %s", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Printf("⚠️  Layout config reload failed, keeping previous config: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("❌ Layout config watcher error: %v", err)
		}
	}
}
