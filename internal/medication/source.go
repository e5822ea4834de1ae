package medication

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrOffline is reported by a remote source when the network is
// unreachable. The repository classifies it as a network failure.
var ErrOffline = errors.New("remote unreachable")

// RemoteError is a non-success response from the remote collaborator.
type RemoteError struct {
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned status %d", e.Status)
}

// RemoteSource fetches and stores medications on the backend. Errors cross
// this interface raw; the repository is the boundary that classifies them.
type RemoteSource interface {
	List(ctx context.Context) ([]Medication, error)
	Add(ctx context.Context, m Medication) error
}

// LocalSource is the on-device cache.
type LocalSource interface {
	Load() ([]Medication, error)
	Store(items []Medication) error
}

// StaticRemote is an in-memory RemoteSource used by the demo entry point
// and tests. FailWith switches it into a failing mode.
type StaticRemote struct {
	mu    sync.Mutex
	items []Medication
	fault error
}

// NewStaticRemote seeds the source with the given medications.
func NewStaticRemote(items ...Medication) *StaticRemote {
	return &StaticRemote{items: items}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (r *StaticRemote) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fault = err
}

// List returns a copy of the seeded medications.
func (r *StaticRemote) List(ctx context.Context) ([]Medication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fault != nil {
		return nil, r.fault
	}
	out := make([]Medication, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Add appends a medication.
func (r *StaticRemote) Add(ctx context.Context, m Medication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fault != nil {
		return r.fault
	}
	r.items = append(r.items, m)
	return nil
}

// cacheRecord is the on-disk shape of one medication. IDs are stored as
// strings to keep the file format independent of the uuid package.
type cacheRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Dosage   string `yaml:"dosage"`
	Schedule string `yaml:"schedule,omitempty"`
	Active   bool   `yaml:"active"`
}

type cacheFile struct {
	Medications []cacheRecord `yaml:"medications"`
}

// FileCache is a yaml-file LocalSource.
type FileCache struct {
	path string
}

// NewFileCache creates a cache backed by the file at path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load reads the cache. A missing file is an empty cache, not an error.
func (c *FileCache) Load() ([]Medication, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var file cacheFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse cache: %w", err)
	}

	items := make([]Medication, 0, len(file.Medications))
	for _, rec := range file.Medications {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cache entry id %q: %w", rec.ID, err)
		}
		items = append(items, Medication{
			ID:       id,
			Name:     rec.Name,
			Dosage:   rec.Dosage,
			Schedule: rec.Schedule,
			Active:   rec.Active,
		})
	}
	return items, nil
}

// Store writes the full medication set, replacing the previous contents.
func (c *FileCache) Store(items []Medication) error {
	file := cacheFile{Medications: make([]cacheRecord, 0, len(items))}
	for _, m := range items {
		file.Medications = append(file.Medications, cacheRecord{
			ID:       m.ID.String(),
			Name:     m.Name,
			Dosage:   m.Dosage,
			Schedule: m.Schedule,
			Active:   m.Active,
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
