package subsettings

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"subdesk/internal/health"
	"subdesk/internal/logging"
	"subdesk/internal/pathres"
	"subdesk/internal/policy"
	"subdesk/internal/reconcile"
	"subdesk/internal/settings"
)

// ResolvedFolder is a configured folder made concrete for one media file.
type ResolvedFolder struct {
	ResolvedPath      string        `json:"resolved_path"`
	OriginalPath      string        `json:"original_path"`
	WasRelative       bool          `json:"was_relative"`
	Health            health.Status `json:"health"`
	DefaultForMovies  bool          `json:"default_for_movies"`
	DefaultForTVShows bool          `json:"default_for_tv_shows"`
}

// ParseFolderPaths splits the host's comma-separated folder string. Entries
// are trimmed; empty entries and entries with invalid path characters are
// skipped; every kept entry ends with a separator. Duplicates collapse to
// their first occurrence.
func ParseFolderPaths(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if !pathres.IsValidPathName(part) {
			continue
		}
		part = pathres.EnsureTrailingSeparator(part)
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

func folderPath(f settings.Folder) string { return f.Path }

func newFolder(path string) settings.Folder {
	return settings.Folder{Path: path, Enabled: true}
}

// FallbackFolder is used when no configured folder survives reconciliation.
func FallbackFolder() settings.Folder {
	return settings.Folder{
		Path:              pathres.DefaultFolder,
		Enabled:           true,
		DefaultForMovies:  true,
		DefaultForTVShows: true,
	}
}

// ReconcileFolders merges the persisted folders with the host's configured
// folder paths, falling back to a single "./" entry when nothing remains,
// and guarantees the movies and TV-shows defaults.
func (s *Service) ReconcileFolders(ctx context.Context) ([]settings.Folder, error) {
	persisted, err := s.store.LoadFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile folders: %w", err)
	}
	configured := ParseFolderPaths(s.host.ConfiguredFolderPaths())
	folders := reconcile.Merge(persisted, configured, folderPath, newFolder)
	if len(folders) == 0 {
		s.log(ctx).Debug("no configured folders, using fallback", logging.String("path", pathres.DefaultFolder))
		folders = []settings.Folder{FallbackFolder()}
	}
	policy.EnsureFolderDefaults(folders)
	return folders, nil
}

// PersistFolders saves folders as the authoritative list.
func (s *Service) PersistFolders(ctx context.Context, folders []settings.Folder) error {
	if err := s.store.SaveFolders(ctx, folders); err != nil {
		return fmt.Errorf("persist folders: %w", err)
	}
	return nil
}

// SyncFolders reconciles and persists the folder list and refreshes the cache.
func (s *Service) SyncFolders(ctx context.Context) ([]settings.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, err := s.ReconcileFolders(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.PersistFolders(ctx, folders); err != nil {
		return nil, err
	}
	s.folders = folders
	s.foldersLoaded = true
	return cloneFolders(folders), nil
}

// Folders returns the reconciled folder list, computing it on first use.
// Later calls return the cached list until Invalidate is called.
func (s *Service) Folders(ctx context.Context) ([]settings.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.foldersLoaded {
		folders, err := s.ReconcileFolders(ctx)
		if err != nil {
			return nil, err
		}
		s.folders = folders
		s.foldersLoaded = true
	}
	return cloneFolders(s.folders), nil
}

// Invalidate drops the cached folder list.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = nil
	s.foldersLoaded = false
}

func cloneFolders(folders []settings.Folder) []settings.Folder {
	return append([]settings.Folder(nil), folders...)
}

// FoldersForMedia returns the enabled folders resolved for mediaPath, each
// with its health. Relative folders resolve against the media file's
// directory and are skipped when mediaPath is empty. A relative mediaPath is
// taken from the working directory. Folders that cannot be
// resolved are skipped, as are ReadOnly folders unless includeReadOnly is set.
// A failing folder never aborts the listing; only a store error does.
func (s *Service) FoldersForMedia(ctx context.Context, mediaPath string, includeReadOnly bool) ([]ResolvedFolder, error) {
	folders, err := s.Folders(ctx)
	if err != nil {
		return nil, err
	}
	logger := s.log(ctx)

	mediaDir := ""
	if strings.TrimSpace(mediaPath) != "" {
		if !pathres.IsRooted(mediaPath) {
			if abs, err := filepath.Abs(mediaPath); err == nil {
				mediaPath = abs
			}
		}
		if dir, ok := pathres.Parent(mediaPath); ok {
			mediaDir = dir
		} else {
			logger.Debug("media path has no parent directory", logging.String("media", mediaPath))
		}
	}

	pass := s.classifier.NewPass()
	var out []ResolvedFolder
	for _, f := range folders {
		if !f.Enabled {
			continue
		}
		relative := !pathres.IsRooted(f.Path)
		reference := mediaDir
		if relative && reference == "" {
			continue
		}
		if !relative {
			reference = f.Path
		}

		resolved, ok, err := pathres.Resolve(f.Path, reference)
		if err != nil || !ok {
			logger.Debug("folder not resolvable",
				logging.String("folder", f.Path),
				logging.String("reference", reference),
			)
			continue
		}

		status := pass.Classify(ctx, resolved)
		if status == health.StatusReadOnly && !includeReadOnly {
			continue
		}
		out = append(out, ResolvedFolder{
			ResolvedPath:      resolved,
			OriginalPath:      f.Path,
			WasRelative:       relative,
			Health:            status,
			DefaultForMovies:  f.DefaultForMovies,
			DefaultForTVShows: f.DefaultForTVShows,
		})
	}
	logger.Debug("folders resolved for media",
		logging.String("media", mediaPath),
		logging.Bool("include_read_only", includeReadOnly),
		logging.Int("count", len(out)),
	)
	return out, nil
}
