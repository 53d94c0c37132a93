// Package resource declares, for every entity exposed by the gateway, the table
// it lives in, its writable fields with their validation rules, its unique
// constraints, the rows it references and the rows that reference it.
//
// One Definition drives Create, Replace and PartialUpdate generically: the same
// field table is parsed with every field mandatory (create/replace) or optional
// (patch), and the same constraint metadata feeds the pre-checks run before the
// mutating statement.
package resource

import (
	"fmt"
	"strings"
)

// Kind is the wire/storage type of a field.
type Kind int

const (
	KindInt Kind = iota
	KindText
	KindDecimal
	KindDate
	// KindFlag is the 'S'/'N' active flag. Input is case-insensitive, storage is uppercase.
	KindFlag
	// KindPassword is received in clear text and stored as a bcrypt hash in Column.
	KindPassword
)

// Field is one writable attribute of an entity.
type Field struct {
	// Name is the JSON key. It is also the column unless Column is set.
	Name   string
	Column string
	Kind   Kind
	// Required fields must be present on create and replace and cannot be null.
	// Fields that are not required are nullable.
	Required bool
	// Rule is a go-playground/validator tag checked against the decoded value.
	Rule string
	// DefaultToday fills a missing date with the current date on create and replace.
	DefaultToday bool
}

// ColumnName returns the storage column of the field.
func (f Field) ColumnName() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Name
}

// Unique is a uniqueness constraint beyond the primary key.
type Unique struct {
	Columns []string
	// Fold compares text columns case-insensitively.
	Fold    bool
	Message string
}

// Reference is a foreign key held by the entity.
type Reference struct {
	Column string
	Table  string
	Key    string
	// Label names the referenced entity in error messages ("cliente", "sucursal"...).
	Label string
}

// Dependent is a table whose rows reference the entity and block its deletion.
type Dependent struct {
	Table  string
	Column string
	// Label names the dependent rows in error messages ("empleados asociados").
	Label string
}

// Definition describes one entity.
type Definition struct {
	// Name is the singular, capitalized Spanish name ("Ciudad").
	Name     string
	Feminine bool
	// Path is the URL segment the entity is mounted under.
	Path       string
	Table      string
	Key        string
	Fields     []Field
	Uniques    []Unique
	References []Reference
	Dependents []Dependent
	// Order is the ORDER BY clause used by List.
	Order string
	// Check validates relations between fields. Parse runs it on create and
	// replace; partial updates run it against the merged row.
	Check func(v Values) error
}

// Field looks up a field by JSON name.
func (d *Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the key followed by every field column.
func (d *Definition) Columns() []string {
	cols := make([]string, 0, len(d.Fields)+1)
	cols = append(cols, d.Key)
	for _, f := range d.Fields {
		cols = append(cols, f.ColumnName())
	}
	return cols
}

func (d *Definition) article() string {
	if d.Feminine {
		return "una"
	}
	return "un"
}

func (d *Definition) participle(stem string) string {
	if d.Feminine {
		return stem + "a"
	}
	return stem + "o"
}

// Message builds the success text for an operation: "creada", "actualizado"...
func (d *Definition) Message(stem string) string {
	return fmt.Sprintf("%s %s con éxito", d.Name, d.participle(stem))
}

// NotFoundMessage is the detail returned when the id does not exist.
func (d *Definition) NotFoundMessage() string {
	return fmt.Sprintf("%s no %s", d.Name, d.participle("encontrad"))
}

// DuplicateKeyMessage is the detail returned when the caller-supplied id is taken.
func (d *Definition) DuplicateKeyMessage(id interface{}) string {
	return fmt.Sprintf("Ya existe %s %s con %s %v", d.article(), strings.ToLower(d.Name), d.Key, id)
}

func (d *Definition) definite() string {
	if d.Feminine {
		return "la"
	}
	return "el"
}

// DependentMessage is the detail returned when a delete is blocked by dependent rows.
func (d *Definition) DependentMessage(label string) string {
	return fmt.Sprintf("No se puede eliminar %s %s: tiene %s", d.definite(), strings.ToLower(d.Name), label)
}

// MissingReferenceMessage is the detail returned when a referenced row does not exist.
func (r Reference) MissingReferenceMessage(id interface{}) string {
	return fmt.Sprintf("No existe %s con id %v", r.Label, id)
}
