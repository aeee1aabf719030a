package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// LoadProviders returns the persisted provider list in order.
func (s *Store) LoadProviders(ctx context.Context) ([]Provider, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, enabled FROM providers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load providers: %w", err)
	}
	defer rows.Close()

	var out []Provider
	for rows.Next() {
		var p Provider
		var enabled int
		if err := rows.Scan(&p.ID, &p.Title, &enabled); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		p.Enabled = enabled != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveProviders replaces the persisted provider list.
func (s *Store) SaveProviders(ctx context.Context, providers []Provider) error {
	return s.replace(ctx, "providers", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM providers`); err != nil {
			return err
		}
		for i, p := range providers {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO providers (position, id, title, enabled) VALUES (?, ?, ?, ?)`,
				i, p.ID, p.Title, boolToInt(p.Enabled),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadLanguages returns the persisted language list in order.
func (s *Store) LoadLanguages(ctx context.Context) ([]Language, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, name, enabled FROM languages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load languages: %w", err)
	}
	defer rows.Close()

	var out []Language
	for rows.Next() {
		var l Language
		var enabled int
		if err := rows.Scan(&l.Code, &l.Name, &enabled); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		l.Enabled = enabled != 0
		out = append(out, l)
	}
	return out, rows.Err()
}

// SaveLanguages replaces the persisted language list.
func (s *Store) SaveLanguages(ctx context.Context, languages []Language) error {
	return s.replace(ctx, "languages", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM languages`); err != nil {
			return err
		}
		for i, l := range languages {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO languages (position, code, name, enabled) VALUES (?, ?, ?, ?)`,
				i, l.Code, l.Name, boolToInt(l.Enabled),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadFolders returns the persisted folder list in order.
func (s *Store) LoadFolders(ctx context.Context) ([]Folder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, enabled, default_movies, default_tvshows FROM folders ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	defer rows.Close()

	var out []Folder
	for rows.Next() {
		var f Folder
		var enabled, movies, tv int
		if err := rows.Scan(&f.Path, &enabled, &movies, &tv); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		f.Enabled, f.DefaultForMovies, f.DefaultForTVShows = enabled != 0, movies != 0, tv != 0
		out = append(out, f)
	}
	return out, rows.Err()
}

// SaveFolders replaces the persisted folder list.
func (s *Store) SaveFolders(ctx context.Context, folders []Folder) error {
	return s.replace(ctx, "folders", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM folders`); err != nil {
			return err
		}
		for i, f := range folders {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO folders (position, path, enabled, default_movies, default_tvshows) VALUES (?, ?, ?, ?, ?)`,
				i, f.Path, boolToInt(f.Enabled), boolToInt(f.DefaultForMovies), boolToInt(f.DefaultForTVShows),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadGroups returns the persisted provider groups with their member lists.
func (s *Store) LoadGroups(ctx context.Context) ([]Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, title, enabled, default_movies, default_tvshows FROM provider_groups ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	var groups []Group
	var positions []int64
	for rows.Next() {
		var g Group
		var pos int64
		var enabled, movies, tv int
		if err := rows.Scan(&pos, &g.Title, &enabled, &movies, &tv); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan group: %w", err)
		}
		g.Enabled, g.DefaultForMovies, g.DefaultForTVShows = enabled != 0, movies != 0, tv != 0
		groups = append(groups, g)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	rows.Close()

	for i, pos := range positions {
		members, err := s.loadGroupProviders(ctx, pos)
		if err != nil {
			return nil, err
		}
		groups[i].Providers = members
	}
	return groups, nil
}

func (s *Store) loadGroupProviders(ctx context.Context, groupPos int64) ([]Provider, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT provider_id, title, enabled FROM group_providers WHERE group_position = ? ORDER BY position`, groupPos)
	if err != nil {
		return nil, fmt.Errorf("load group providers: %w", err)
	}
	defer rows.Close()

	var out []Provider
	for rows.Next() {
		var p Provider
		var enabled int
		if err := rows.Scan(&p.ID, &p.Title, &enabled); err != nil {
			return nil, fmt.Errorf("scan group provider: %w", err)
		}
		p.Enabled = enabled != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveGroupSettings writes the general settings, which hold the built-in
// group flags, and replaces the persisted provider groups in one transaction.
func (s *Store) SaveGroupSettings(ctx context.Context, general General, groups []Group) error {
	data, err := json.Marshal(general)
	if err != nil {
		return fmt.Errorf("encode general settings: %w", err)
	}
	return s.replace(ctx, "group settings", func(tx *sql.Tx) error {
		if err := saveGeneralTx(ctx, tx, data); err != nil {
			return err
		}
		return saveGroupsTx(ctx, tx, groups)
	})
}

func saveGroupsTx(ctx context.Context, tx *sql.Tx, groups []Group) error {
	// Explicit delete: the foreign_keys pragma only covers the connection
	// it was issued on.
	if _, err := tx.ExecContext(ctx, `DELETE FROM group_providers`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM provider_groups`); err != nil {
		return err
	}
	for i, g := range groups {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO provider_groups (position, title, enabled, default_movies, default_tvshows) VALUES (?, ?, ?, ?, ?)`,
			i, g.Title, boolToInt(g.Enabled), boolToInt(g.DefaultForMovies), boolToInt(g.DefaultForTVShows),
		); err != nil {
			return err
		}
		for j, p := range g.Providers {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO group_providers (group_position, position, provider_id, title, enabled) VALUES (?, ?, ?, ?, ?)`,
				i, j, p.ID, p.Title, boolToInt(p.Enabled),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadGeneral returns the general settings, or DefaultGeneral when none were saved.
func (s *Store) LoadGeneral(ctx context.Context) (General, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data_json FROM general WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultGeneral(), nil
	}
	if err != nil {
		return General{}, fmt.Errorf("load general settings: %w", err)
	}
	general := DefaultGeneral()
	if err := json.Unmarshal([]byte(data), &general); err != nil {
		return General{}, fmt.Errorf("decode general settings: %w", err)
	}
	return general, nil
}

func saveGeneralTx(ctx context.Context, tx *sql.Tx, data []byte) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO general (id, data_json) VALUES (1, ?)
         ON CONFLICT(id) DO UPDATE SET data_json = excluded.data_json`, string(data))
	return err
}
