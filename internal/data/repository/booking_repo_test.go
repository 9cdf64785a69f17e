package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRows serves a fixed number of rows and then reports an iteration
// error, the way a dropped connection surfaces mid result set.
type stubRows struct {
	rows   int
	served int
	err    error
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return r.err }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Scan(dest ...any) error                       { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.served < r.rows {
		r.served++
		return true
	}
	return false
}

// stubDB hands out a canned rows result for Query. The other PgxIface
// methods are not exercised by the list queries under test.
type stubDB struct {
	rows pgx.Rows
}

func (db *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.rows, nil
}

func (db *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func (db *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	panic("unexpected Exec")
}

func (db *stubDB) Begin(ctx context.Context) (pgx.Tx, error) { panic("unexpected Begin") }
func (db *stubDB) Ping(ctx context.Context) error            { return nil }
func (db *stubDB) Close()                                    {}

func TestFindByGuestEmail_IterationError(t *testing.T) {
	db := &stubDB{rows: &stubRows{rows: 1, err: errors.New("connection reset")}}
	repo := NewBookingRepository(db, zap.NewNop())

	bookings, err := repo.FindByGuestEmail(context.Background(), "dana@example.com", 10, 0)

	// A mid-iteration failure must not pass off a truncated list as success
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterate booking rows")
	assert.Nil(t, bookings)
}

func TestFindByGuestEmail_ReadsAllRows(t *testing.T) {
	db := &stubDB{rows: &stubRows{rows: 2}}
	repo := NewBookingRepository(db, zap.NewNop())

	bookings, err := repo.FindByGuestEmail(context.Background(), "dana@example.com", 10, 0)

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
