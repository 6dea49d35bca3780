package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/debug-create/new-money-pal/internal/config"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

// Storage is the read side of the database. Writes go through a Writer so
// they share one transaction.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Goals        sqlconfig.IGoalTable
	Profiles     sqlconfig.IProfileTable

	db bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Goals:        sqlconfig.NewGoalsTable(bobDB),
		Profiles:     sqlconfig.NewProfilesTable(bobDB),
		db:           bobDB,
	}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Write begins a database transaction and returns tables bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return NewWriter(
		tx,
		sqlconfig.NewTransactionsTable(tx),
		sqlconfig.NewGoalsTable(tx),
		sqlconfig.NewProfilesTable(tx),
	), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
