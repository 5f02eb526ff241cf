package sessiondb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines storage access for sessions.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, sessionID uuid.UUID) (*Session, error)
	Create(ctx context.Context, db bun.IDB, session *Session) error
	End(ctx context.Context, db bun.IDB, session *Session) error
}
