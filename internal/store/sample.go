package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// Sample is one labeled feature vector recorded during calibration.
type Sample struct {
	ID        int64          `json:"id"`
	Label     string         `json:"label"`
	Features  feature.Vector `json:"features"`
	CreatedAt time.Time      `json:"created_at"`
}

// SampleRepository provides operations for calibration samples.
type SampleRepository struct {
	db *sql.DB
}

// Samples returns the sample repository for this store.
func (s *Store) Samples() *SampleRepository {
	return &SampleRepository{db: s.db}
}

// Add inserts labeled feature vectors in a single transaction.
func (r *SampleRepository) Add(label string, vectors []feature.Vector) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO samples (label, features) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, vec := range vectors {
		data, err := json.Marshal(vec)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(label, string(data)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByLabel retrieves all samples recorded for a label.
func (r *SampleRepository) GetByLabel(label string) ([]Sample, error) {
	rows, err := r.db.Query(
		`SELECT id, label, features, created_at
		 FROM samples
		 WHERE label = ?
		 ORDER BY id`,
		label,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSamples(rows)
}

// List retrieves all samples.
func (r *SampleRepository) List() ([]Sample, error) {
	rows, err := r.db.Query(
		`SELECT id, label, features, created_at FROM samples ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSamples(rows)
}

func collectSamples(rows *sql.Rows) ([]Sample, error) {
	var samples []Sample
	for rows.Next() {
		var s Sample
		var features string
		if err := rows.Scan(&s.ID, &s.Label, &features, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(features), &s.Features); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// Labels returns the distinct labels with recorded samples.
func (r *SampleRepository) Labels() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT label FROM samples ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// DeleteByLabel removes all samples for a label.
func (r *SampleRepository) DeleteByLabel(label string) error {
	_, err := r.db.Exec(`DELETE FROM samples WHERE label = ?`, label)
	return err
}
