// Package store is the data access layer: one method per entity operation,
// translated into GORM queries. Multi-step writes (order creation, stock
// adjustments) run inside database transactions so partial state can never
// be observed.
package store

import (
	"gorm.io/gorm"
)

// Store wraps the database handle and exposes entity operations
type Store struct {
	db *gorm.DB
}

// New creates a Store over an initialized database connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that compose their own
// queries (simulation tooling, tests)
func (s *Store) DB() *gorm.DB {
	return s.db
}
