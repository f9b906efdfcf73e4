package storage

import (
	"context"
	"database/sql"
	"time"

	goccy "github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
)

const schema = `
CREATE TABLE IF NOT EXISTS bodies (
	id TEXT PRIMARY KEY,
	blueprint TEXT NOT NULL,
	state TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Record is a persisted body snapshot.
type Record struct {
	ID        string `db:"id"`
	Blueprint string `db:"blueprint"`
	State     string `db:"state"`
	UpdatedAt int64  `db:"updated_at"`
}

// Summary describes a stored body without its state.
type Summary struct {
	ID        string `db:"id"`
	Blueprint string `db:"blueprint"`
	UpdatedAt int64  `db:"updated_at"`
}

func (s Summary) Updated() time.Time {
	return time.Unix(0, s.UpdatedAt)
}

// Store persists body snapshots in SQLite.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the database at path. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	// SQLite allows a single writer, and every ":memory:" connection is a separate database.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "creating schema in %q", path)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the current state of body under id, replacing any earlier snapshot.
func (s *Store) Save(ctx context.Context, id string, blueprint string, body *anatomy.Body) error {
	if id == "" {
		return seaofstars.Validationf("body id must not be empty")
	}
	state, err := goccy.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "encoding body %q", id)
	}
	rec := Record{
		ID:        id,
		Blueprint: blueprint,
		State:     string(state),
		UpdatedAt: time.Now().UnixNano(),
	}
	if _, err := s.db.NamedExecContext(ctx, `
INSERT INTO bodies (id, blueprint, state, updated_at)
VALUES (:id, :blueprint, :state, :updated_at)
ON CONFLICT(id) DO UPDATE SET
	blueprint = excluded.blueprint,
	state = excluded.state,
	updated_at = excluded.updated_at`, rec); err != nil {
		return errors.Wrapf(err, "saving body %q", id)
	}
	return nil
}

// Load returns the blueprint name and restored body stored under id,
// or an ErrNotFound.
func (s *Store) Load(ctx context.Context, id string) (string, *anatomy.Body, error) {
	rec := Record{}
	if err := s.db.GetContext(ctx, &rec, "SELECT id, blueprint, state, updated_at FROM bodies WHERE id = ?", id); errors.Is(err, sql.ErrNoRows) {
		return "", nil, seaofstars.NotFoundf("body %q", id)
	} else if err != nil {
		return "", nil, errors.Wrapf(err, "loading body %q", id)
	}
	body := &anatomy.Body{}
	if err := goccy.Unmarshal([]byte(rec.State), body); err != nil {
		return "", nil, errors.Wrapf(err, "decoding body %q", id)
	}
	return rec.Blueprint, body, nil
}

// Delete removes the body stored under id, or returns an ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bodies WHERE id = ?", id)
	if err != nil {
		return errors.Wrapf(err, "deleting body %q", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return seaofstars.NotFoundf("body %q", id)
	}
	return nil
}

// List returns every stored body ordered by id.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	result := []Summary{}
	if err := s.db.SelectContext(ctx, &result, "SELECT id, blueprint, updated_at FROM bodies ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "listing bodies")
	}
	return result, nil
}
