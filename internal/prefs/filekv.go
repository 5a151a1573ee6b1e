package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

const watchDebounce = 150 * time.Millisecond

var errCorruptFile = errors.New("corrupt preferences file")

// FileKV persists keys as a flat YAML mapping in a single file. Every Get
// reads the file so that separate processes sharing it agree after a read.
type FileKV struct {
	path string
	mu   sync.Mutex
}

// NewFileKV returns a FileKV backed by path. The file is created on first Set.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// DefaultFilePath returns preferences.yaml under the user config directory.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "energyexe", "preferences.yaml"), nil
}

// Path returns the backing file.
func (f *FileKV) Path() string {
	return f.path
}

func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking every write.
		if !errors.Is(err, errCorruptFile) {
			return err
		}
		values = map[string]string{}
	}
	values[key] = value
	return f.save(values)
}

func (f *FileKV) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w: %w", errCorruptFile, err)
	}
	return values, nil
}

func (f *FileKV) save(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing preferences: %w", err)
	}
	return nil
}

// Watch calls fn after the backing file is created, written, or replaced by
// anyone, including this process. Bursts of events are coalesced. Watch
// blocks until ctx is done.
func (f *FileKV) Watch(ctx context.Context, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	// Watch the directory: saves replace the file, which drops a file watch.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(f.path)
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

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
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching preferences: %w", err)
		case <-timer.C:
			fn()
		}
	}
}
