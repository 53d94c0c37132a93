package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LayoutFecha is the only accepted wire format for dates (ISO-8601 calendar date).
const LayoutFecha = "2006-01-02"

// Fecha is a calendar date without time of day. It is stored in DATE columns and
// serialized as "YYYY-MM-DD".
type Fecha struct {
	time.Time
}

// NewFecha truncates t to its calendar date in UTC.
func NewFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Hoy returns the current date.
func Hoy() Fecha { return NewFecha(time.Now()) }

// ParseFecha parses s strictly as YYYY-MM-DD.
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(LayoutFecha, strings.TrimSpace(s))
	if err != nil {
		return Fecha{}, err
	}
	return Fecha{Time: t}, nil
}

func (f Fecha) String() string { return f.Format(LayoutFecha) }

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value implements driver.Valuer.
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

// Scan implements sql.Scanner. Drivers hand back DATE values either as time.Time
// or as text depending on the engine.
func (f *Fecha) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = Fecha{}
	case time.Time:
		*f = NewFecha(v)
	case string:
		return f.scanText(v)
	case []byte:
		return f.scanText(string(v))
	default:
		return fmt.Errorf("fecha: tipo no soportado %T", value)
	}
	return nil
}

func (f *Fecha) scanText(s string) error {
	if len(s) >= len(LayoutFecha) {
		s = s[:len(LayoutFecha)]
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// GormDataType makes AutoMigrate create DATE columns.
func (Fecha) GormDataType() string { return "date" }
