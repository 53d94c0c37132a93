package repository

import (
	"errors"
	"fmt"
	"strings"

	"retailapi/internal/apierror"
	"retailapi/internal/resource"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes remapped to client errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// op identifies the statement that failed, since the same FK code means
// "missing parent" on write and "has children" on delete.
type op int

const (
	opRead op = iota
	opWrite
	opDelete
)

// translate converts a database error into an *apierror.Error when it is a
// constraint violation. Anything else is wrapped and returned as an internal
// error so raw driver text never reaches the client.
func translate(def *resource.Definition, o op, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.Wrap(apierror.KindNotFound, err, def.NotFoundMessage())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apierror.Wrap(apierror.KindConflict, err, uniqueMessage(def, pgErr.Detail))
		case pgForeignKeyViolation:
			if o == opRead {
				break
			}
			if o == opDelete {
				return apierror.Wrap(apierror.KindConflict, err, dependentMessage(def, pgErr.TableName))
			}
			return apierror.Wrap(apierror.KindBadRequest, err, referenceMessage(def, pgErr.Detail))
		case pgNotNullViolation:
			return apierror.Wrap(apierror.KindBadRequest, err, fmt.Sprintf("El campo %s es obligatorio", pgErr.ColumnName))
		case pgCheckViolation:
			return apierror.Wrap(apierror.KindBadRequest, err, "Un valor no cumple las restricciones de "+strings.ToLower(def.Name))
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.Wrap(apierror.KindConflict, err, "Registro duplicado")
	case errors.Is(err, gorm.ErrForeignKeyViolated) && o != opRead:
		if o == opDelete {
			return apierror.Wrap(apierror.KindConflict, err, dependentMessage(def, ""))
		}
		return apierror.Wrap(apierror.KindBadRequest, err, "Referencia a un registro inexistente")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apierror.Wrap(apierror.KindBadRequest, err, "Un valor no cumple las restricciones de "+strings.ToLower(def.Name))
	}
	return fmt.Errorf("%s: %w", def.Table, err)
}

// parseKeyDetail extracts the columns and values from a PostgreSQL detail
// message such as `Key (id_producto, id_sucursal)=(1, 2) already exists.`
func parseKeyDetail(detail string) (cols []string, vals []string) {
	start := strings.Index(detail, "Key (")
	if start < 0 {
		return nil, nil
	}
	rest := detail[start+len("Key ("):]
	end := strings.Index(rest, ")=(")
	if end < 0 {
		return nil, nil
	}
	cols = splitList(rest[:end])
	for i, c := range cols {
		cols[i] = indexColumn(c)
	}
	rest = rest[end+len(")=("):]
	if stop := strings.Index(rest, ")"); stop >= 0 {
		vals = splitList(rest[:stop])
	}
	return cols, vals
}

// indexColumn reduces an expression index entry such as `lower((correo)::text)`
// to the column it covers.
func indexColumn(expr string) string {
	if !strings.HasPrefix(expr, "lower(") {
		return expr
	}
	col := strings.NewReplacer("lower(", "", "(", "", ")", "").Replace(expr)
	if cast := strings.Index(col, "::"); cast >= 0 {
		col = col[:cast]
	}
	return strings.Trim(col, `"`)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func uniqueMessage(def *resource.Definition, detail string) string {
	cols, vals := parseKeyDetail(detail)
	if len(cols) == 1 && cols[0] == def.Key && len(vals) == 1 {
		return def.DuplicateKeyMessage(vals[0])
	}
	for _, u := range def.Uniques {
		if sameColumns(u.Columns, cols) {
			return u.Message
		}
	}
	return "Registro duplicado"
}

func referenceMessage(def *resource.Definition, detail string) string {
	cols, vals := parseKeyDetail(detail)
	if len(cols) == 1 {
		for _, ref := range def.References {
			if ref.Column == cols[0] && len(vals) == 1 {
				return ref.MissingReferenceMessage(vals[0])
			}
		}
	}
	return "Referencia a un registro inexistente"
}

func dependentMessage(def *resource.Definition, table string) string {
	for _, dep := range def.Dependents {
		if dep.Table == table {
			return def.DependentMessage(dep.Label)
		}
	}
	return def.DependentMessage("registros asociados")
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, c := range a {
		seen[c] = true
	}
	for _, c := range b {
		if !seen[c] {
			return false
		}
	}
	return true
}
