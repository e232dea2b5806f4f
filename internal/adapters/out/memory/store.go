// Package memory is a transactional in-process store for the freight core,
// built on github.com/hashicorp/go-memdb. It backs the service when no
// database is configured and drives the lifecycle tests.
//
// A unit of work holds the single go-memdb write transaction from Begin until
// Commit or Rollback, so writes are serialized. Reads outside a unit of work
// use lock-free snapshots.
package memory

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/ports"

	"github.com/hashicorp/go-memdb"
)

const (
	loadsTable    = "loads"
	bookingsTable = "bookings"
)

// ErrNoTransaction is returned by Commit or Rollback without an open transaction.
var ErrNoTransaction = errors.New("memory: no transaction in progress")

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			loadsTable: {
				Name: loadsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"shipper_id": {
						Name:    "shipper_id",
						Indexer: &memdb.StringFieldIndex{Field: "ShipperID"},
					},
				},
			},
			bookingsTable: {
				Name: bookingsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"load_id": {
						Name:    "load_id",
						Indexer: &memdb.StringFieldIndex{Field: "LoadID"},
					},
					"transporter_id": {
						Name:    "transporter_id",
						Indexer: &memdb.StringFieldIndex{Field: "TransporterID"},
					},
				},
			},
		},
	}
}

// Store owns the in-memory database.
type Store struct {
	db *memdb.MemDB
}

// NewStore creates an empty store.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("memory: create database: %w", err)
	}
	return &Store{db: db}, nil
}

// LoadRepository returns a repository that runs each call in its own transaction.
func (s *Store) LoadRepository() *LoadRepository {
	return &LoadRepository{conn{db: s.db}}
}

// BookingRepository returns a repository that runs each call in its own transaction.
func (s *Store) BookingRepository() *BookingRepository {
	return &BookingRepository{conn{db: s.db}}
}

// Create produces a unit of work on the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{db: s.db}
}

// UnitOfWork implements ports.UnitOfWork over one go-memdb write transaction.
type UnitOfWork struct {
	db  *memdb.MemDB
	txn *memdb.Txn
}

// Begin opens the write transaction, waiting for any other writer to finish.
// Calling Begin again while one is open is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.txn == nil {
		u.txn = u.db.Txn(true)
	}
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.txn == nil {
		return ErrNoTransaction
	}
	u.txn.Commit()
	u.txn = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.txn == nil {
		return ErrNoTransaction
	}
	u.txn.Abort()
	u.txn = nil
	return nil
}

func (u *UnitOfWork) LoadRepository() ports.LoadRepository {
	return &LoadRepository{conn{db: u.db, txn: u.txn}}
}

func (u *UnitOfWork) BookingRepository() ports.BookingRepository {
	return &BookingRepository{conn{db: u.db, txn: u.txn}}
}

// conn is the transaction binding shared by both repositories.
type conn struct {
	db  *memdb.MemDB
	txn *memdb.Txn
}

func (c conn) read() *memdb.Txn {
	if c.txn != nil {
		return c.txn
	}
	return c.db.Txn(false)
}

func (c conn) write(fn func(txn *memdb.Txn) error) error {
	if c.txn != nil {
		return fn(c.txn)
	}

	txn := c.db.Txn(true)
	defer txn.Abort()
	if err := fn(txn); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
