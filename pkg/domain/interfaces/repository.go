package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Assessment() AssessmentRepository

	// Close releases the underlying storage
	Close() error
}
