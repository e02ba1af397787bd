// Package storage persists named collections of JSON records, plus a
// single-value logo slot, on top of a pluggable key-value medium.
package storage

import "context"

// Provider is the durable medium. Get reports ok=false for a key that was
// never written; that is not an error.
type Provider interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Collection keys.
const (
	CollectionServices      = "services"
	CollectionProfessionals = "professionals"
	CollectionProducts      = "products"
	CollectionAppointments  = "appointments"
	CollectionClients       = "clients"
	CollectionExpenses      = "expenses"

	keyLogo = "logo"
)
