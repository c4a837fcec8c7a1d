// Package store keeps the permanent catch log: one row per landed catch,
// surviving profile resets, backing the records screen.
package store

import (
	"context"
	"time"
)

// Catch is one logged landing. Size is zero for junk.
type Catch struct {
	ID        int64
	Profile   string
	SpeciesID string
	SizeCm    int
	AutoSold  bool
	CaughtAt  time.Time
}

// Store is the catch log. The SQLite implementation is the only real one;
// tests use in-memory databases through the same type.
type Store interface {
	Add(ctx context.Context, c Catch) error
	TopBySize(ctx context.Context, profile string, limit int) ([]Catch, error)
	TopBySizeForSpecies(ctx context.Context, profile, speciesID string, limit int) ([]Catch, error)
	Recent(ctx context.Context, profile string, limit int) ([]Catch, error)
	Close() error
}
