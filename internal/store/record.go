package store

import (
	"database/sql"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
)

// RecordRepository persists action dispatch records.
type RecordRepository struct {
	db *sql.DB
}

// Records returns the record repository for this store.
func (s *Store) Records() *RecordRepository {
	return &RecordRepository{db: s.db}
}

// Add inserts one dispatch record.
func (r *RecordRepository) Add(rec action.Record) error {
	_, err := r.db.Exec(
		`INSERT INTO records (id, intent, action, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Intent), string(rec.Action), string(rec.Status), rec.Err, rec.Time,
	)
	return err
}

// Recent returns the latest n records, newest first.
func (r *RecordRepository) Recent(n int) ([]action.Record, error) {
	rows, err := r.db.Query(
		`SELECT id, intent, action, status, error, created_at
		 FROM records ORDER BY created_at DESC, id LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []action.Record
	for rows.Next() {
		var rec action.Record
		var in, act, status string
		if err := rows.Scan(&rec.ID, &in, &act, &status, &rec.Err, &rec.Time); err != nil {
			return nil, err
		}
		rec.Intent = intent.Intent(in)
		rec.Action = action.Action(act)
		rec.Status = action.Status(status)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountByStatus returns how many records carry the given status.
func (r *RecordRepository) CountByStatus(status action.Status) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM records WHERE status = ?`, string(status)).Scan(&n)
	return n, err
}
