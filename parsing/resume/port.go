package resume

import "context"

// Generator is the single network dependency: it sends a prompt to a
// hosted model and returns the raw text reply. Implementations live in
// internal/ai; tests substitute a deterministic stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Cache maps a content-hash key to a previously parsed record. It is a
// convenience cache, not a correctness-critical store: implementations
// need no locking and concurrent writers of the same key race harmlessly.
type Cache interface {
	// Get returns the cached record for key, with found=false on a miss.
	Get(ctx context.Context, key string) (*Record, bool, error)

	// Put stores the record under key, overwriting any previous value.
	Put(ctx context.Context, key string, record *Record) error
}

// TextSource extracts the textual content of a resume file.
// Satisfied by extract.Extractor.
type TextSource interface {
	Text(path string) (string, error)
}
