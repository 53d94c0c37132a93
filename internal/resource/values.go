package resource

import (
	"time"

	"retailapi/internal/model"
)

// Assignment is one column = value pair of an INSERT or UPDATE.
type Assignment struct {
	Column string
	Value  interface{}
}

// Values is an ordered list of assignments. Order follows the Definition's
// field order so generated statements are stable.
type Values []Assignment

// Get returns the value assigned to column.
func (v Values) Get(column string) (interface{}, bool) {
	for _, a := range v {
		if a.Column == column {
			return a.Value, true
		}
	}
	return nil, false
}

// Has reports whether column is assigned.
func (v Values) Has(column string) bool {
	_, ok := v.Get(column)
	return ok
}

// Map converts the assignments into the column map GORM expects.
func (v Values) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(v))
	for _, a := range v {
		m[a.Column] = a.Value
	}
	return m
}

// Columns lists the assigned columns in order.
func (v Values) Columns() []string {
	cols := make([]string, len(v))
	for i, a := range v {
		cols[i] = a.Column
	}
	return cols
}

// Fecha returns column as a date. It accepts parsed input as well as the raw
// types a database row scan produces.
func (v Values) Fecha(column string) (model.Fecha, bool) {
	raw, ok := v.Get(column)
	if !ok || raw == nil {
		return model.Fecha{}, false
	}
	switch t := raw.(type) {
	case model.Fecha:
		return t, true
	case time.Time:
		return model.NewFecha(t), true
	case string:
		f, err := model.ParseFecha(truncateDate(t))
		return f, err == nil
	case []byte:
		f, err := model.ParseFecha(truncateDate(string(t)))
		return f, err == nil
	}
	return model.Fecha{}, false
}

func truncateDate(s string) string {
	if len(s) > len(model.LayoutFecha) {
		return s[:len(model.LayoutFecha)]
	}
	return s
}

// Merge overlays v on top of a stored row, returning the assignments of every
// field in d as they will be after the update.
func (d *Definition) Merge(stored map[string]interface{}, v Values) Values {
	merged := make(Values, 0, len(d.Fields))
	for _, f := range d.Fields {
		col := f.ColumnName()
		if val, ok := v.Get(col); ok {
			merged = append(merged, Assignment{Column: col, Value: val})
			continue
		}
		if val, ok := stored[col]; ok {
			merged = append(merged, Assignment{Column: col, Value: val})
		}
	}
	return merged
}
