package sessiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a session is not found.
var ErrNotFound = errors.New("session not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new session repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetByID retrieves a session by its ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*Session, error) {
	db = r.resolveDB(db)
	session := new(Session)
	err := db.NewSelect().
		Model(session).
		Where("id = ?", sessionID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return session, nil
}

// Create inserts a new session.
func (r *Impl) Create(ctx context.Context, db bun.IDB, session *Session) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(session).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// End sets the session's end time. The update is guarded on end_time still
// being NULL so a concurrent end loses cleanly.
func (r *Impl) End(ctx context.Context, db bun.IDB, session *Session) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(session).
		Column("end_time").
		Where("id = ?", session.ID).
		Where("end_time IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
