package ports

import (
	"context"
	"sync"
	"time"

	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/session"
)

// Prober answers whether a piece fits at an anchor right now.
type Prober interface {
	CanPlace(pieceID int, at domain.CellCoord) (bool, domain.Rejection, error)
	Piece(pieceID int) (domain.Piece, error)
}

// Hinter lists the anchors where a piece currently fits.
type Hinter interface {
	Fits(ctx context.Context, p Prober, pieceID int) ([]domain.CellCoord, error)
}

// Clock supplies the current time; sessions derive today's date from it.
type Clock interface {
	Now() time.Time
}

// SessionStore keeps live sessions in process, keyed by id.
type SessionStore interface {
	Save(ctx context.Context, e *Entry) error
	Load(ctx context.Context, id string) (*Entry, error)
	Delete(ctx context.Context, id string) error
	Len(ctx context.Context) int
}

// Entry is a stored session. Sessions are single-threaded, so every
// access goes through Do.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	session *session.Session
}

func NewEntry(id string, s *session.Session, createdAt time.Time) *Entry {
	return &Entry{ID: id, CreatedAt: createdAt, session: s}
}

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(s *session.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}
