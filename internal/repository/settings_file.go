package repository

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileSettingsStore persists settings for local profiles in a YAML file.
type FileSettingsStore struct {
	path string
	mu   sync.Mutex
}

type settingsFile struct {
	Profiles map[int64]map[string]any `yaml:"profiles"`
}

// NewFileSettingsStore uses path, or ~/.securepass/settings.yaml when empty.
func NewFileSettingsStore(path string) (*FileSettingsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, ".securepass", "settings.yaml")
	}
	return &FileSettingsStore{path: path}, nil
}

// Path is the backing file location.
func (s *FileSettingsStore) Path() string { return s.path }

func (s *FileSettingsStore) Load(ctx context.Context, profileID int64) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(f.Profiles[profileID]))
	maps.Copy(out, f.Profiles[profileID])
	return out, nil
}

func (s *FileSettingsStore) Save(ctx context.Context, profileID int64, values map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}
	stored, ok := f.Profiles[profileID]
	if !ok {
		stored = make(map[string]any, len(values))
		f.Profiles[profileID] = stored
	}
	maps.Copy(stored, values)

	return s.write(f)
}

func (s *FileSettingsStore) read() (settingsFile, error) {
	f := settingsFile{Profiles: make(map[int64]map[string]any)}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse settings file %s: %w", s.path, err)
	}
	if f.Profiles == nil {
		f.Profiles = make(map[int64]map[string]any)
	}
	return f, nil
}

// write replaces the file atomically.
func (s *FileSettingsStore) write(f settingsFile) error {
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
