package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"dealership-api/internal/common/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SubmissionStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSubmissionStore(&database.PostgresClient{DB: db}), mock
}

func TestEnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS submissions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.EnsureSchema(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave(t *testing.T) {
	store, mock := newMockStore(t)

	receivedAt := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	payload, _ := json.Marshal(map[string]interface{}{"name": "Jane Doe"})

	mock.ExpectExec("INSERT INTO submissions").
		WithArgs("CONTACT-042913", "contact", payload, receivedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Save(context.Background(), Submission{
		ReferenceID: "CONTACT-042913",
		FormType:    "contact",
		Payload:     map[string]interface{}{"name": "Jane Doe"},
		ReceivedAt:  receivedAt,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_WriteFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO submissions").
		WillReturnError(sql.ErrConnDone)

	err := store.Save(context.Background(), Submission{
		ReferenceID: "BK-000001",
		FormType:    "book",
		Payload:     map[string]interface{}{},
		ReceivedAt:  time.Now(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BK-000001")
}

func TestGet(t *testing.T) {
	store, mock := newMockStore(t)

	receivedAt := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"reference_id", "form_type", "payload", "received_at"}).
		AddRow("CONTACT-042913", "contact", []byte(`{"name":"Jane Doe"}`), receivedAt)

	mock.ExpectQuery("SELECT reference_id, form_type, payload, received_at FROM submissions").
		WithArgs("CONTACT-042913").
		WillReturnRows(rows)

	sub, err := store.Get(context.Background(), "CONTACT-042913")

	require.NoError(t, err)
	assert.Equal(t, "contact", sub.FormType)
	assert.Equal(t, "Jane Doe", sub.Payload["name"])
	assert.Equal(t, receivedAt, sub.ReceivedAt)
}

func TestGet_Unknown(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT reference_id, form_type, payload, received_at FROM submissions").
		WithArgs("CONTACT-999999").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), "CONTACT-999999")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}
