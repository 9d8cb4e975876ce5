package interfaces

import "context"

// Repository defines the interface for data persistence
type Repository interface {
	Contact() ContactRepository
	Vector() VectorIndexRepository

	// Ping probes connectivity to the backing store. Called once at startup;
	// a failure is fatal for the firestore backend.
	Ping(ctx context.Context) error
	Close() error
}
