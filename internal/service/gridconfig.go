package service

import (
	"fmt"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"strings"
)

// ConvertFunc turns an edited display value into the persisted form.
type ConvertFunc func(entity.Value) (entity.Value, error)

// FieldRename maps an editable display field onto the persisted column it
// is a proxy for, with the conversion applied on the way down.
type FieldRename struct {
	Target  string
	Convert ConvertFunc
}

// GridConfig declares, per entity kind, which snapshot columns the grid may
// edit and how edited values are validated and converted before persisting.
// It is configuration, not code: built once at startup and checked there.
type GridConfig struct {
	Kind           common.EntityKind
	Columns        []string
	EditableFields []string
	RequiredFields []string
	NumericFields  []string
	PositiveFields []string // numeric and strictly > 0
	NonNegative    []string // numeric and >= 0
	NullableFields []string // a blank edit persists as explicit null
	DisplayOnly    []string // joined-in display columns, never persisted
	Renames        map[string]FieldRename
}

// Columns that exist on every snapshot and never enter an update payload.
var bookkeepingFields = []string{"id", "created_at", "updated_at"}

func (c *GridConfig) editable(field string) bool    { return contains(c.EditableFields, field) }
func (c *GridConfig) numeric(field string) bool     { return contains(c.NumericFields, field) }
func (c *GridConfig) nullable(field string) bool    { return contains(c.NullableFields, field) }
func (c *GridConfig) positive(field string) bool    { return contains(c.PositiveFields, field) }
func (c *GridConfig) nonNegative(field string) bool { return contains(c.NonNegative, field) }

// targetOf resolves the persisted column an editable field writes to.
func (c *GridConfig) targetOf(field string) string {
	if rename, ok := c.Renames[field]; ok {
		return rename.Target
	}

	return field
}

func (c *GridConfig) validate() error {
	known := make(map[string]bool, len(c.Columns))
	for _, column := range c.Columns {
		known[column] = true
	}

	for _, group := range [][]string{c.EditableFields, c.RequiredFields, c.NumericFields,
		c.PositiveFields, c.NonNegative, c.NullableFields, c.DisplayOnly} {
		for _, field := range group {
			if !known[field] {
				return fmt.Errorf("grid config %s: field %q is not a snapshot column", c.Kind, field)
			}
		}
	}

	for _, field := range c.DisplayOnly {
		if c.editable(field) {
			return fmt.Errorf("grid config %s: display-only field %q can't be editable", c.Kind, field)
		}
	}

	for field, rename := range c.Renames {
		if !c.editable(field) {
			return fmt.Errorf("grid config %s: rename source %q is not editable", c.Kind, field)
		}
		if rename.Target == "" || rename.Convert == nil {
			return fmt.Errorf("grid config %s: rename of %q is incomplete", c.Kind, field)
		}
		if contains(bookkeepingFields, rename.Target) {
			return fmt.Errorf("grid config %s: rename of %q targets bookkeeping column %q", c.Kind, field, rename.Target)
		}
	}

	for _, field := range append(c.RequiredFields, c.NumericFields...) {
		if !c.editable(field) {
			return fmt.Errorf("grid config %s: field %q must be editable to be validated", c.Kind, field)
		}
	}

	return nil
}

// GridConfigs builds and checks the per-kind configuration set.
func GridConfigs() (map[common.EntityKind]*GridConfig, error) {
	configs := map[common.EntityKind]*GridConfig{
		common.KindBidding: {
			Kind:           common.KindBidding,
			Columns:        []string{"id", "city", "date", "mode", "process_number", "created_at", "updated_at"},
			EditableFields: []string{"city", "date", "mode", "process_number"},
			RequiredFields: []string{"process_number", "city", "mode", "date"},
			Renames: map[string]FieldRename{
				"mode": {Target: "mode", Convert: convertModeLabel},
				"date": {Target: "date", Convert: convertTimestamp},
			},
		},
		common.KindItem: {
			Kind:           common.KindItem,
			Columns:        []string{"id", "bidding", "code", "name", "description", "unit", "quantity", "notes", "created_at", "updated_at"},
			EditableFields: []string{"code", "name", "description", "unit", "quantity", "notes"},
			RequiredFields: []string{"code", "name"},
			NumericFields:  []string{"quantity"},
			NonNegative:    []string{"quantity"},
			DisplayOnly:    []string{"bidding"},
		},
		common.KindSupplier: {
			Kind:           common.KindSupplier,
			Columns:        []string{"id", "name", "website", "email", "phone", "description", "created_at", "updated_at"},
			EditableFields: []string{"name", "website", "email", "phone", "description"},
			RequiredFields: []string{"name"},
			NullableFields: []string{"website", "email", "phone"},
		},
		common.KindBidder: {
			Kind:           common.KindBidder,
			Columns:        []string{"id", "name", "website", "email", "phone", "description", "created_at", "updated_at"},
			EditableFields: []string{"name", "website", "email", "phone", "description"},
			RequiredFields: []string{"name"},
			NullableFields: []string{"website", "email", "phone"},
		},
		common.KindQuote: {
			Kind:           common.KindQuote,
			Columns:        []string{"id", "item", "supplier", "base_price", "freight", "additional_costs", "tax_pct", "margin_pct", "sale_price", "notes", "link", "created_at", "updated_at"},
			EditableFields: []string{"base_price", "freight", "additional_costs", "tax_pct", "margin_pct", "notes", "link"},
			RequiredFields: []string{"base_price", "margin_pct"},
			NumericFields:  []string{"base_price", "freight", "additional_costs", "tax_pct", "margin_pct"},
			PositiveFields: []string{"base_price"},
			NullableFields: []string{"link"},
			DisplayOnly:    []string{"item", "supplier", "sale_price"},
		},
		common.KindBid: {
			Kind:           common.KindBid,
			Columns:        []string{"id", "item", "bidding", "bidder", "price", "notes", "created_at", "updated_at"},
			EditableFields: []string{"price", "notes"},
			RequiredFields: []string{"price"},
			NumericFields:  []string{"price"},
			PositiveFields: []string{"price"},
			DisplayOnly:    []string{"item", "bidding", "bidder"},
		},
	}

	for _, cfg := range configs {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}

	return configs, nil
}

// convertModeLabel turns the grid's mode label back into the stored
// enumeration value. The stored value itself is accepted too, so an
// untouched cell round-trips.
func convertModeLabel(v entity.Value) (entity.Value, error) {
	switch strings.TrimSpace(v.String()) {
	case common.InPersonLabel, common.InPerson:
		return entity.TextValue(common.InPerson), nil
	case common.ElectronicLabel, common.Electronic:
		return entity.TextValue(common.Electronic), nil
	}

	return entity.Value{}, fmt.Errorf("unknown bidding mode %q", v.String())
}

func convertTimestamp(v entity.Value) (entity.Value, error) {
	if v.IsBlank() {
		return entity.NullValue(), nil
	}

	t, err := v.Time()
	if err != nil {
		return entity.Value{}, err
	}

	return entity.TimeValue(t), nil
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}

	return false
}
