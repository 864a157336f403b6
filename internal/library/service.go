package library

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/photogrid/photo-gallery/internal/logging"
	"github.com/photogrid/photo-gallery/internal/model"
	"github.com/photogrid/photo-gallery/internal/platform"
)

// Service defaults
const (
	DefaultWatchDebounce = 250 * time.Millisecond
	DefaultCacheSize     = 256
)

// Config configures the filesystem-backed library service.
type Config struct {
	// Root is the directory scanned for image assets.
	Root string
	// Excludes lists glob patterns matched against base names to skip.
	Excludes []string
	// GrantStorePath locates the SQLite grant database.
	GrantStorePath string
	// Prompt presents the permission dialog. Nil authorizes everything,
	// which keeps headless use and tests simple.
	Prompt AuthorizationPrompt
	// WatchDebounce coalesces bursts of filesystem events.
	WatchDebounce time.Duration
	// CacheSize bounds the rendition LRU cache.
	CacheSize int
	// Logger defaults to the process logger.
	Logger logging.Logger
}

// Service is the filesystem-backed photo library. It owns the current fetch
// result, watches the root for mutations, and fans change notifications out
// to registered observers.
type Service struct {
	cfg    Config
	log    logging.Logger
	grants *GrantStore

	mu         sync.RWMutex
	current    *FetchResult
	generation uint64
	observers  map[string]ChangeObserver

	renditions *lru.Cache[renditionKey, image.Image]

	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// NewService creates a library service rooted at cfg.Root and starts the
// filesystem watcher.
func NewService(cfg Config) (*Service, error) {
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = DefaultWatchDebounce
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	grants, err := NewGrantStore(cfg.GrantStorePath)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[renditionKey, image.Image](cfg.CacheSize)
	if err != nil {
		_ = grants.Close()
		return nil, fmt.Errorf("library: create rendition cache: %w", err)
	}

	if err := platform.CreateDirectoryIfNotExists(cfg.Root); err != nil {
		_ = grants.Close()
		return nil, fmt.Errorf("library: ensure root %s: %w", cfg.Root, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = grants.Close()
		return nil, fmt.Errorf("library: create watcher: %w", err)
	}
	if err := watcher.Add(cfg.Root); err != nil {
		_ = watcher.Close()
		_ = grants.Close()
		return nil, fmt.Errorf("library: watch root %s: %w", cfg.Root, err)
	}

	s := &Service{
		cfg:        cfg,
		log:        cfg.Logger.With("component", "library"),
		grants:     grants,
		observers:  make(map[string]ChangeObserver),
		renditions: cache,
		watcher:    watcher,
		done:       make(chan struct{}),
	}

	s.watchSubdirs()
	go s.watchLoop()

	return s, nil
}

// watchSubdirs registers existing subdirectories with the watcher; fsnotify
// watches are not recursive.
func (s *Service) watchSubdirs() {
	_ = filepath.WalkDir(s.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == s.cfg.Root {
			return nil
		}
		if s.excluded(d.Name()) {
			return filepath.SkipDir
		}
		if werr := s.watcher.Add(path); werr != nil {
			s.log.Warn("failed to watch directory", "path", path, "err", werr)
		}
		return nil
	})
}

// Close stops the watcher and closes the grant store.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if werr := s.watcher.Close(); werr != nil {
			err = werr
		}
		if gerr := s.grants.Close(); gerr != nil && err == nil {
			err = gerr
		}
	})
	return err
}

// CurrentAuthorization returns the persisted authorization level.
func (s *Service) CurrentAuthorization() Authorization {
	auth, err := s.grants.Authorization()
	if err != nil {
		s.log.Error("failed to read authorization grant", "err", err)
		return AuthNotDetermined
	}
	return auth
}

// RequestAuthorization prompts the user asynchronously, persists the
// outcome, and reports it via completion.
func (s *Service) RequestAuthorization(completion func(Authorization)) {
	prompt := s.cfg.Prompt
	if prompt == nil {
		prompt = func(respond func(Authorization)) { respond(AuthAuthorized) }
	}

	go prompt(func(a Authorization) {
		if err := s.grants.SetAuthorization(a); err != nil {
			s.log.Error("failed to persist authorization grant", "err", err)
		}
		s.log.Info("authorization request resolved", "status", a.String())
		completion(a)
	})
}

// QueryImageAssets scans the library and returns a fresh snapshot sorted by
// creation time descending, replacing the held one. In limited mode the
// snapshot contains only the granted selection.
func (s *Service) QueryImageAssets() *FetchResult {
	assets := s.scan()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.current = newFetchResult(assets, s.generation)
	s.log.Debug("asset query completed", "count", len(assets), "generation", s.generation)
	return s.current
}

// LimitedSelection returns the persisted limited-access selection.
func (s *Service) LimitedSelection() []string {
	paths, err := s.grants.LimitedSelection()
	if err != nil {
		s.log.Error("failed to read limited selection", "err", err)
		return nil
	}
	return paths
}

// AddToLimitedSelection grants access to additional paths and notifies
// observers when the visible list changes.
func (s *Service) AddToLimitedSelection(paths []string) error {
	if err := s.grants.AddToLimitedSelection(paths); err != nil {
		return err
	}
	s.refreshAndNotify()
	return nil
}

// RegisterChangeObserver subscribes an observer and returns its ID.
func (s *Service) RegisterChangeObserver(observer ChangeObserver) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers[id] = observer
	return id
}

// UnregisterChangeObserver removes a previously registered observer.
func (s *Service) UnregisterChangeObserver(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
}

// watchLoop consumes filesystem events, debounces bursts, and triggers a
// rescan-and-notify cycle when the dust settles.
func (s *Service) watchLoop() {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !s.relevantEvent(ev) {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				s.maybeWatchDir(ev.Name)
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.cfg.WatchDebounce)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", "err", err)
		case <-timer.C:
			s.refreshAndNotify()
		case <-s.done:
			return
		}
	}
}

// relevantEvent filters events down to image files and directories
func (s *Service) relevantEvent(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	if platform.IsImageFile(ev.Name) {
		return !s.excluded(filepath.Base(ev.Name))
	}
	// Directory events matter for watch coverage; removed paths cannot be
	// stat'ed, so let the rescan sort them out.
	return !ev.Op.Has(fsnotify.Write)
}

// maybeWatchDir extends the watch to newly created subdirectories
func (s *Service) maybeWatchDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := s.watcher.Add(path); err != nil {
		s.log.Warn("failed to watch new directory", "path", path, "err", err)
	}
}

// refreshAndNotify rescans the library and, if the held snapshot is affected,
// swaps it and notifies observers. Without a held snapshot there is nothing
// scoped to notify about.
func (s *Service) refreshAndNotify() {
	s.mu.RLock()
	held := s.current
	s.mu.RUnlock()
	if held == nil {
		return
	}

	assets := s.scan()

	s.mu.Lock()
	next := newFetchResult(assets, s.generation+1)
	if held.sameAssets(next) {
		s.mu.Unlock()
		return
	}
	s.generation++
	next = newFetchResult(assets, s.generation)
	s.current = next

	observers := make([]ChangeObserver, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	s.log.Debug("library changed", "count", next.Count(), "generation", next.Generation())

	details := &ChangeDetails{latest: next}
	for _, o := range observers {
		o.LibraryDidChange(details)
	}
}

// scan walks the library root and collects image assets, newest first. In
// limited mode only the granted selection is visible.
func (s *Service) scan() []model.Asset {
	var limitedSet map[string]bool
	if s.CurrentAuthorization() == AuthLimited {
		limitedSet = make(map[string]bool)
		for _, p := range s.LimitedSelection() {
			limitedSet[p] = true
		}
	}

	var assets []model.Asset
	err := filepath.WalkDir(s.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if path != s.cfg.Root && s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !platform.IsImageFile(path) || s.excluded(d.Name()) {
			return nil
		}
		if limitedSet != nil && !limitedSet[path] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(s.cfg.Root, path)
		if err != nil {
			rel = path
		}
		assets = append(assets, model.Asset{
			ID:        rel,
			Path:      path,
			CreatedAt: platform.CreationTime(info),
		})
		return nil
	})
	if err != nil {
		s.log.Warn("library scan failed", "root", s.cfg.Root, "err", err)
	}

	// The walk only covers the root, but a limited grant may name a file
	// anywhere on disk. Pick those up directly.
	for _, p := range s.outOfRootGrants(limitedSet) {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() || !platform.IsImageFile(p) {
			continue
		}
		assets = append(assets, model.Asset{
			ID:        p,
			Path:      p,
			CreatedAt: platform.CreationTime(info),
		})
	}

	sort.Slice(assets, func(i, j int) bool {
		if !assets[i].CreatedAt.Equal(assets[j].CreatedAt) {
			return assets[i].CreatedAt.After(assets[j].CreatedAt)
		}
		return assets[i].Path < assets[j].Path
	})

	return assets
}

// outOfRootGrants returns the granted paths that live outside the library
// root, sorted for determinism.
func (s *Service) outOfRootGrants(limitedSet map[string]bool) []string {
	if limitedSet == nil {
		return nil
	}
	var out []string
	for p := range limitedSet {
		rel, err := filepath.Rel(s.cfg.Root, p)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// excluded matches a base name against the configured exclude patterns
func (s *Service) excluded(name string) bool {
	for _, pattern := range s.cfg.Excludes {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
