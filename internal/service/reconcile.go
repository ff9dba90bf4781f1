package service

import (
	"context"
	"fmt"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"
	"sort"

	"github.com/google/uuid"
)

// ReconcileSnapshots compares the baseline snapshot with the edited one,
// row by row and field by field, and issues the minimal set of partial
// updates through the store. Matching is identity-keyed only. Rows whose
// editable fields are all unchanged issue no update call at all.
//
// Validation, conversion and persistence failures are row-scoped: the
// offending row is reported and skipped, the rest of the batch continues.
// Only structural problems (nil snapshots, kind mismatch) fail the batch.
func ReconcileSnapshots(ctx context.Context, store repo.RecordStore, cfg *GridConfig, baseline, edited *entity.Snapshot) ([]entity.RowOutcome, error) {
	if baseline == nil || edited == nil {
		return nil, ErrNilSnapshot
	}
	if baseline.Kind != edited.Kind || baseline.Kind != cfg.Kind {
		return nil, ErrSnapshotKindMismatch
	}

	ids := baseline.Ids()
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	outcomes := make([]entity.RowOutcome, 0, len(ids))
	for _, id := range ids {
		editedRow, ok := edited.Rows[id]
		if !ok {
			// Absent from the edited snapshot: a deletion candidate,
			// handled by the deletion detector, not by reconciliation.
			continue
		}

		outcomes = append(outcomes, reconcileRow(ctx, store, cfg, id, baseline.Rows[id], editedRow))
	}

	return outcomes, nil
}

func reconcileRow(ctx context.Context, store repo.RecordStore, cfg *GridConfig, id uuid.UUID, baseRow, editedRow entity.Row) entity.RowOutcome {
	changed := make([]string, 0)
	payload := make(map[string]entity.Value)

	for _, field := range cfg.EditableFields {
		edit, ok := editedRow[field]
		if !ok {
			// Column missing from the edited row counts as untouched.
			continue
		}
		if baseRow[field].Equal(edit) {
			continue
		}

		changed = append(changed, field)

		target, value := field, edit
		if rename, ok := cfg.Renames[field]; ok {
			converted, err := rename.Convert(edit)
			if err != nil {
				return failedRow(id, changed, &ConversionError{Field: field, Err: err})
			}
			target, value = rename.Target, converted
		}
		payload[target] = value
	}

	if len(changed) == 0 {
		return entity.RowOutcome{Id: id.String(), Status: entity.RowUnchanged}
	}

	// Required fields are checked against the post-conversion payload: a
	// field the edit didn't touch is not in the payload and stays valid.
	for _, field := range cfg.RequiredFields {
		value, ok := payload[cfg.targetOf(field)]
		if ok && value.IsBlank() {
			return failedRow(id, changed, &ValidationError{Field: field, Reason: "required field is empty"})
		}
	}

	for _, field := range cfg.NumericFields {
		target := cfg.targetOf(field)
		value, ok := payload[target]
		if !ok {
			continue
		}

		if value.IsBlank() && cfg.nullable(field) {
			payload[target] = entity.NullValue()
			continue
		}

		number, err := value.Decimal()
		if err != nil {
			return failedRow(id, changed, &ValidationError{Field: field, Reason: fmt.Sprintf("not a number: %v", err)})
		}
		if cfg.positive(field) && !number.IsPositive() {
			return failedRow(id, changed, &ValidationError{Field: field, Reason: "must be positive"})
		}
		if cfg.nonNegative(field) && number.IsNegative() {
			return failedRow(id, changed, &ValidationError{Field: field, Reason: "can't be negative"})
		}
		payload[target] = entity.DecimalValue(number)
	}

	// Blank edits of nullable text fields persist as explicit null.
	for _, field := range cfg.NullableFields {
		target := cfg.targetOf(field)
		if value, ok := payload[target]; ok && value.IsBlank() {
			payload[target] = entity.NullValue()
		}
	}

	// An explicit null on a non-nullable column is a validation failure,
	// not something to bounce off the store's NOT NULL constraint.
	for _, field := range cfg.EditableFields {
		value, ok := payload[cfg.targetOf(field)]
		if ok && value.IsNull() && !cfg.nullable(field) {
			return failedRow(id, changed, &ValidationError{Field: field, Reason: "field can't be null"})
		}
	}

	fields := make(repo.Fields, len(payload))
	for target, value := range payload {
		fields[target] = value.Interface()
	}
	stripBookkeeping(cfg, fields)

	if len(fields) == 0 {
		return entity.RowOutcome{Id: id.String(), Status: entity.RowUnchanged}
	}

	if err := store.Update(ctx, id, fields); err != nil {
		return failedRow(id, changed, &PersistenceError{Err: err})
	}

	return entity.RowOutcome{Id: id.String(), Status: entity.RowUpdated, Fields: changed}
}

func stripBookkeeping(cfg *GridConfig, fields repo.Fields) {
	for _, field := range bookkeepingFields {
		delete(fields, field)
	}
	for _, field := range cfg.DisplayOnly {
		delete(fields, field)
	}
}

func failedRow(id uuid.UUID, changed []string, err error) entity.RowOutcome {
	return entity.RowOutcome{
		Id:     id.String(),
		Status: entity.RowFailed,
		Fields: changed,
		Reason: err.Error(),
	}
}

// DetectDeletions computes the identity set difference between baseline
// and edited snapshots. Identities only present in the edited snapshot are
// grid additions; those are reported back but never created here, record
// creation has its own flow.
func DetectDeletions(baseline, edited *entity.Snapshot) (deleted, added []uuid.UUID, err error) {
	if baseline == nil || edited == nil {
		return nil, nil, ErrNilSnapshot
	}
	if baseline.Kind != edited.Kind {
		return nil, nil, ErrSnapshotKindMismatch
	}

	deleted = make([]uuid.UUID, 0)
	for id := range baseline.Rows {
		if _, ok := edited.Rows[id]; !ok {
			deleted = append(deleted, id)
		}
	}

	added = make([]uuid.UUID, 0)
	for id := range edited.Rows {
		if _, ok := baseline.Rows[id]; !ok {
			added = append(added, id)
		}
	}

	sort.Slice(deleted, func(i, j int) bool { return deleted[i].String() < deleted[j].String() })
	sort.Slice(added, func(i, j int) bool { return added[i].String() < added[j].String() })

	return deleted, added, nil
}
