package store

import "context"

// Blob is the narrow persistence port the board depends on. The board
// serializes its whole card collection into one value; implementations
// only need to keep that value addressable.
type Blob interface {
	// Load returns the stored value, or nil when nothing has been
	// saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored value.
	Save(ctx context.Context, data []byte) error
}

// MemoryBlob is an in-process Blob for tests and ephemeral boards.
type MemoryBlob struct {
	data []byte

	// FailSave, when set, makes Save return that error.
	FailSave error
}

// Load returns the last saved value, nil if Save was never called.
func (m *MemoryBlob) Load(ctx context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save keeps a private copy of data.
func (m *MemoryBlob) Save(ctx context.Context, data []byte) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
