// Package store persists accepted form submissions keyed by reference id.
// Persistence is best effort: a write failure is logged by the caller and
// never fails the submission, since notifications remain the primary record.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"dealership-api/internal/common/database"
)

type Submission struct {
	ReferenceID string                 `json:"referenceId"`
	FormType    string                 `json:"formType"`
	Payload     map[string]interface{} `json:"payload"`
	ReceivedAt  time.Time              `json:"receivedAt"`
}

type SubmissionStore struct {
	db *database.PostgresClient
}

func NewSubmissionStore(db *database.PostgresClient) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// EnsureSchema creates the submissions table if it does not exist.
func (s *SubmissionStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS submissions (
			reference_id TEXT PRIMARY KEY,
			form_type    TEXT NOT NULL,
			payload      JSONB NOT NULL,
			received_at  TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure submissions schema: %w", err)
	}
	return nil
}

// Save writes one accepted submission. Reference ids are random, so a key
// collision surfaces as an error rather than an overwrite.
func (s *SubmissionStore) Save(ctx context.Context, sub Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal submission payload: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO submissions (reference_id, form_type, payload, received_at) VALUES ($1, $2, $3, $4)`,
		sub.ReferenceID, sub.FormType, payload, sub.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission %s: %w", sub.ReferenceID, err)
	}
	return nil
}

// Get loads a submission by reference id. Returns sql.ErrNoRows when the
// id is unknown.
func (s *SubmissionStore) Get(ctx context.Context, referenceID string) (*Submission, error) {
	var (
		sub     Submission
		payload []byte
	)

	row := s.db.QueryRow(ctx,
		`SELECT reference_id, form_type, payload, received_at FROM submissions WHERE reference_id = $1`,
		referenceID,
	)
	if err := row.Scan(&sub.ReferenceID, &sub.FormType, &payload, &sub.ReceivedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load submission %s: %w", referenceID, err)
	}

	if err := json.Unmarshal(payload, &sub.Payload); err != nil {
		return nil, fmt.Errorf("failed to decode submission payload %s: %w", referenceID, err)
	}
	return &sub, nil
}
