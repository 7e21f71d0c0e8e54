package graphstore

import (
	"fmt"
	"os"

	"github.com/kelindar/binary"
)

// snapshot is the on-disk encoding of a Store: the raw shortcut slice and
// edge metadata map, from which NewStore rebuilds the adjacency indices.
// Grounded on the teacher's ContractedGraph.SaveToFile/LoadGraph
// (encoding/gob, whole-struct encode to a single file); swapped for
// kelindar/binary, the teacher's own third-party binary codec, since this
// is exactly the "serialize a struct to a file" concern that dependency
// exists for.
type snapshot struct {
	Shortcuts []Shortcut
	EdgeMeta  map[EdgeID]EdgeMeta
}

// SaveSnapshot encodes the store's shortcuts and edge metadata to path.
// Adjacency indices are not persisted; LoadSnapshot rebuilds them.
func (s *Store) SaveSnapshot(path string) error {
	data, err := binary.Marshal(snapshot{Shortcuts: s.shortcuts, EdgeMeta: s.edgeMeta})
	if err != nil {
		return fmt.Errorf("graphstore: encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphstore: write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a Store previously written by SaveSnapshot.
func LoadSnapshot(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphstore: read snapshot: %w", err)
	}
	var snap snapshot
	if err := binary.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("graphstore: decode snapshot: %w", err)
	}
	return NewStore(snap.Shortcuts, snap.EdgeMeta), nil
}
