package subsettings

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"subdesk/internal/language"
	"subdesk/internal/logging"
	"subdesk/internal/policy"
	"subdesk/internal/reconcile"
	"subdesk/internal/settings"
)

// ErrConflictingSelection is returned when two selection keys name the same
// language with different values.
var ErrConflictingSelection = errors.New("conflicting language selection")

func languageCode(l settings.Language) string { return l.Code }

// ReconcileLanguages merges the persisted languages with the catalog. New
// catalog languages are appended disabled. When no language is enabled the
// UI language, or English, is enabled.
func (s *Service) ReconcileLanguages(ctx context.Context) ([]settings.Language, error) {
	persisted, err := s.store.LoadLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile languages: %w", err)
	}

	entries := s.catalog.SupportedLanguages()
	codes := make([]string, 0, len(entries))
	names := make(map[string]string, len(entries))
	for _, e := range entries {
		codes = append(codes, e.Code)
		names[e.Code] = e.Name
	}

	merged := reconcile.Merge(persisted, codes, languageCode, func(code string) settings.Language {
		return settings.Language{Code: code, Name: names[code]}
	})

	uiLanguage := s.host.CurrentUILanguageName()
	if !policy.EnsureEnabledLanguage(merged, uiLanguage) && len(merged) > 0 {
		s.log(ctx).Warn("no subtitle language enabled",
			logging.String(logging.FieldEventType, "language_fallback_missing"),
			logging.String("ui_language", uiLanguage),
			logging.String("fallback", policy.FallbackLanguage),
		)
	}
	return merged, nil
}

// PersistLanguages saves languages as the authoritative list.
func (s *Service) PersistLanguages(ctx context.Context, languages []settings.Language) error {
	if err := s.store.SaveLanguages(ctx, languages); err != nil {
		return fmt.Errorf("persist languages: %w", err)
	}
	return nil
}

// SyncLanguages reconciles and persists the language list.
func (s *Service) SyncLanguages(ctx context.Context) ([]settings.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	languages, err := s.ReconcileLanguages(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.PersistLanguages(ctx, languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// SelectedLanguageNames returns the names of enabled languages in priority order.
func (s *Service) SelectedLanguageNames(ctx context.Context) ([]string, error) {
	return s.selectedLanguages(ctx, func(l settings.Language) string { return l.Name })
}

// SelectedLanguageCodes returns the codes of enabled languages in priority order.
func (s *Service) SelectedLanguageCodes(ctx context.Context) ([]string, error) {
	return s.selectedLanguages(ctx, languageCode)
}

func (s *Service) selectedLanguages(ctx context.Context, field func(settings.Language) string) ([]string, error) {
	languages, err := s.ReconcileLanguages(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, l := range languages {
		if l.Enabled {
			out = append(out, field(l))
		}
	}
	return out, nil
}

// LanguagePriority returns the 1-based position of code in the reconciled
// language list, enabled or not, and math.MaxInt when it is absent.
func (s *Service) LanguagePriority(ctx context.Context, code string) (int, error) {
	languages, err := s.ReconcileLanguages(ctx)
	if err != nil {
		return math.MaxInt, err
	}
	for i, l := range languages {
		if l.Code == code {
			return i + 1, nil
		}
	}
	return math.MaxInt, nil
}

// SetLanguageSelection sets the enabled flag of the languages in selection
// and persists the list. Keys may be any code form the catalog recognises
// ("eng", "english", "en"). It returns the keys that matched no language.
// Keys naming the same language must agree, otherwise ErrConflictingSelection
// is returned and nothing is stored.
func (s *Service) SetLanguageSelection(ctx context.Context, selection map[string]bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	languages, err := s.ReconcileLanguages(ctx)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]int, len(languages))
	for i, l := range languages {
		byCode[l.Code] = i
	}
	keys := slices.Sorted(maps.Keys(selection))
	matched := make(map[string]bool, len(selection))
	chosenBy := make(map[int]string, len(selection))
	for _, key := range keys {
		idx, ok := byCode[key]
		if !ok {
			idx, ok = byCode[language.ToISO2(key)]
		}
		if !ok {
			continue
		}
		if prev, seen := chosenBy[idx]; seen && selection[prev] != selection[key] {
			return nil, fmt.Errorf("%w: %q and %q both name %s", ErrConflictingSelection, prev, key, languages[idx].Code)
		}
		chosenBy[idx] = key
		languages[idx].Enabled = selection[key]
		matched[key] = true
	}

	if err := s.PersistLanguages(ctx, languages); err != nil {
		return nil, err
	}
	return unmatched(selection, matched), nil
}
