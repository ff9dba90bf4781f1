package entity

import (
	"procurement-management-api/internal/common"

	"github.com/google/uuid"
)

// Row holds every cell of one record, keyed by column name.
type Row map[string]Value

func (r Row) Clone() Row {
	out := make(Row, len(r))
	for column, value := range r {
		out[column] = value
	}

	return out
}

// Snapshot is a tabular view of one entity kind's records at a point in
// time, keyed by identity. Matching between baseline and edited snapshots
// is always identity-keyed, never positional.
type Snapshot struct {
	Kind    common.EntityKind
	Columns []string
	Rows    map[uuid.UUID]Row
}

func NewSnapshot(kind common.EntityKind, columns []string) *Snapshot {
	return &Snapshot{
		Kind:    kind,
		Columns: columns,
		Rows:    make(map[uuid.UUID]Row),
	}
}

func (s *Snapshot) Put(id uuid.UUID, row Row) {
	s.Rows[id] = row
}

func (s *Snapshot) Ids() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Rows))
	for id := range s.Rows {
		ids = append(ids, id)
	}

	return ids
}
