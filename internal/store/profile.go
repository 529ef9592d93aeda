package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// ProfileKind selects which classifier a profile configures.
type ProfileKind string

const (
	// ProfileKindEmotion holds emotion thresholds.
	ProfileKindEmotion ProfileKind = "emotion"
	// ProfileKindGesture holds gesture thresholds.
	ProfileKindGesture ProfileKind = "gesture"
)

// Profile is a named threshold set. Thresholds is the JSON encoding of the
// classifier's threshold struct so new fields never need a migration.
type Profile struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       ProfileKind     `json:"kind"`
	Thresholds json.RawMessage `json:"thresholds"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProfileRepository provides CRUD operations for threshold profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile into the database.
func (r *ProfileRepository) Create(p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if len(p.Thresholds) == 0 {
		p.Thresholds = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, name, kind, thresholds, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(p.Kind), string(p.Thresholds), p.Active, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func scanProfile(row interface{ Scan(...any) error }) (*Profile, error) {
	p := &Profile{}
	var kind, thresholds string
	err := row.Scan(&p.ID, &p.Name, &kind, &thresholds, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Kind = ProfileKind(kind)
	p.Thresholds = json.RawMessage(thresholds)
	return p, nil
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	return scanProfile(r.db.QueryRow(
		`SELECT id, name, kind, thresholds, active, created_at, updated_at
		 FROM profiles WHERE id = ?`,
		id,
	))
}

// GetByName retrieves a profile by its name.
func (r *ProfileRepository) GetByName(name string) (*Profile, error) {
	return scanProfile(r.db.QueryRow(
		`SELECT id, name, kind, thresholds, active, created_at, updated_at
		 FROM profiles WHERE name = ?`,
		name,
	))
}

// Active retrieves the active profile of the given kind, ErrNotFound when
// none is marked active.
func (r *ProfileRepository) Active(kind ProfileKind) (*Profile, error) {
	return scanProfile(r.db.QueryRow(
		`SELECT id, name, kind, thresholds, active, created_at, updated_at
		 FROM profiles WHERE kind = ? AND active = 1`,
		string(kind),
	))
}

// List retrieves all profiles from the database.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(
		`SELECT id, name, kind, thresholds, active, created_at, updated_at
		 FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile in the database.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, kind = ?, thresholds = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, string(p.Kind), string(p.Thresholds), p.Active, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// SetActive marks one profile active and clears the flag on every other
// profile of the same kind, in a single transaction.
func (r *ProfileRepository) SetActive(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var kind string
	err = tx.QueryRow(`SELECT kind FROM profiles WHERE id = ?`, id).Scan(&kind)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`UPDATE profiles SET active = 0 WHERE kind = ?`, kind); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE profiles SET active = 1, updated_at = ? WHERE id = ?`,
		time.Now(), id); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a profile from the database by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
