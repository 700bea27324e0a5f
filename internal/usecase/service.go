package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"svw.info/calpuzzle/internal/calendar"
	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/ports"
	"svw.info/calpuzzle/internal/session"
)

type Service struct {
	Store  ports.SessionStore
	Clock  ports.Clock
	Hinter ports.Hinter
	Logger zerolog.Logger
	NewID  func() string
}

func NewService(st ports.SessionStore, c ports.Clock, h ports.Hinter) *Service {
	return &Service{
		Store:  st,
		Clock:  c,
		Hinter: h,
		Logger: log.With().Str("module", "usecase").Logger(),
		NewID:  uuid.NewString,
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// View is everything a client needs to render one session.
type View struct {
	ID       string              `json:"id"`
	Date     domain.Date         `json:"date"`
	DateText string              `json:"dateText"`
	State    domain.SessionState `json:"state"`
	Solved   bool                `json:"solved"`
	Blocked  []domain.CellCoord  `json:"blocked"`
	Pieces   []domain.Piece      `json:"pieces"`
	Board    domain.Snapshot     `json:"board"`
}

func view(id string, s *session.Session) View {
	return View{
		ID:       id,
		Date:     s.Date(),
		DateText: calendar.DisplayText(s.Date()),
		State:    s.State(),
		Solved:   s.IsSolved(),
		Blocked:  s.BlockedCells(),
		Pieces:   s.Pieces(),
		Board:    s.Snapshot(),
	}
}

// Definitions returns the fixed piece roster.
func (u *Service) Definitions() []domain.PieceDefinition { return domain.Definitions() }

// Create starts a session for date, or for today when date is nil.
func (u *Service) Create(ctx context.Context, date *domain.Date) (View, error) {
	if u.Store == nil || u.Clock == nil {
		return View{}, errNotConfigured
	}
	now := u.Clock.Now()
	d := calendar.FromTime(now)
	if date != nil {
		d = *date
	}
	s, err := session.New(d)
	if err != nil {
		return View{}, err
	}
	e := ports.NewEntry(u.NewID(), s, now)
	if err := u.Store.Save(ctx, e); err != nil {
		return View{}, err
	}
	u.Logger.Info().Str("session", e.ID).Str("date", calendar.DisplayText(d)).Msg("session created")
	return view(e.ID, s), nil
}

func (u *Service) Get(ctx context.Context, id string) (View, error) {
	var out View
	err := u.with(ctx, id, func(s *session.Session) error {
		out = view(id, s)
		return nil
	})
	return out, err
}

func (u *Service) Board(ctx context.Context, id string) (domain.Snapshot, error) {
	var out domain.Snapshot
	err := u.with(ctx, id, func(s *session.Session) error {
		out = s.Snapshot()
		return nil
	})
	return out, err
}

func (u *Service) Piece(ctx context.Context, id string, pieceID int) (domain.Piece, error) {
	var out domain.Piece
	err := u.with(ctx, id, func(s *session.Session) (err error) {
		out, err = s.Piece(pieceID)
		return err
	})
	return out, err
}

func (u *Service) Transform(ctx context.Context, id string, pieceID int, kind domain.Transform) (domain.Piece, error) {
	var out domain.Piece
	err := u.with(ctx, id, func(s *session.Session) (err error) {
		out, err = s.Transform(pieceID, kind)
		return err
	})
	return out, err
}

func (u *Service) TryPlace(ctx context.Context, id string, pieceID int, at domain.CellCoord) (domain.PlaceResult, error) {
	var out domain.PlaceResult
	err := u.with(ctx, id, func(s *session.Session) (err error) {
		out, err = s.TryPlace(pieceID, at)
		return err
	})
	if err != nil {
		return out, err
	}
	switch {
	case !out.Accepted:
		u.Logger.Debug().Str("session", id).Int("piece", pieceID).
			Int("row", at.Row).Int("col", at.Col).Str("reason", string(out.Reason)).Msg("placement rejected")
	case out.Solved:
		u.Logger.Info().Str("session", id).Msg("puzzle solved")
	}
	return out, nil
}

func (u *Service) Unplace(ctx context.Context, id string, pieceID int) (domain.Snapshot, error) {
	var out domain.Snapshot
	err := u.with(ctx, id, func(s *session.Session) error {
		if err := s.Unplace(pieceID); err != nil {
			return err
		}
		out = s.Snapshot()
		return nil
	})
	return out, err
}

func (u *Service) Reset(ctx context.Context, id string) (View, error) {
	var out View
	err := u.with(ctx, id, func(s *session.Session) error {
		s.Reset()
		out = view(id, s)
		return nil
	})
	if err == nil {
		u.Logger.Debug().Str("session", id).Msg("session reset")
	}
	return out, err
}

// Fits lists the anchors where a piece currently fits.
func (u *Service) Fits(ctx context.Context, id string, pieceID int) ([]domain.CellCoord, error) {
	if u.Hinter == nil {
		return nil, errNotConfigured
	}
	var out []domain.CellCoord
	err := u.with(ctx, id, func(s *session.Session) (err error) {
		out, err = u.Hinter.Fits(ctx, s, pieceID)
		return err
	})
	return out, err
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Delete(ctx, id)
}

func (u *Service) with(ctx context.Context, id string, fn func(s *session.Session) error) error {
	if u.Store == nil {
		return errNotConfigured
	}
	e, err := u.Store.Load(ctx, id)
	if err != nil {
		return err
	}
	return e.Do(fn)
}
