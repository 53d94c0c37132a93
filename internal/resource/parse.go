package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"retailapi/internal/apierror"
	"retailapi/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Mode selects how strictly a payload is parsed.
type Mode int

const (
	// ModeCreate requires the key and every required field.
	ModeCreate Mode = iota
	// ModeReplace requires every required field; absent nullable fields become NULL.
	ModeReplace
	// ModePatch accepts any non-empty subset of fields.
	ModePatch
)

// BcryptCost is the work factor used for password fields.
var BcryptCost = 12

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0 and gte=0 work on money fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// Body is a decoded JSON object. A missing key means "absent"; a key holding
// the literal null means "set to NULL".
type Body map[string]json.RawMessage

// ParseKey decodes the caller-supplied primary key of a create payload.
func (d *Definition) ParseKey(body Body) (int64, error) {
	raw, ok := body[d.Key]
	if !ok || isNull(raw) {
		return 0, apierror.BadRequest("El campo %s es obligatorio", d.Key)
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, apierror.BadRequest("El campo %s debe ser un número entero", d.Key)
	}
	if id <= 0 {
		return 0, apierror.BadRequest("El campo %s debe ser mayor que cero", d.Key)
	}
	return id, nil
}

// Parse turns a payload into the column assignments of an INSERT (ModeCreate)
// or UPDATE (ModeReplace, ModePatch). The key is never part of the result.
func (d *Definition) Parse(body Body, mode Mode) (Values, error) {
	if mode == ModePatch && len(body) == 0 {
		return nil, apierror.BadRequest("Debe enviar al menos un dato")
	}

	values := make(Values, 0, len(d.Fields))
	for _, f := range d.Fields {
		raw, present := body[f.Name]
		if !present {
			if mode == ModePatch {
				continue
			}
			if f.DefaultToday {
				values = append(values, Assignment{Column: f.ColumnName(), Value: model.Hoy()})
				continue
			}
			if f.Kind == KindPassword && mode == ModeReplace {
				// the stored hash is kept
				continue
			}
			if f.Required {
				return nil, apierror.BadRequest("El campo %s es obligatorio", f.Name)
			}
			if mode == ModeReplace {
				values = append(values, Assignment{Column: f.ColumnName(), Value: nil})
			}
			continue
		}

		if isNull(raw) {
			if f.Required {
				return nil, apierror.BadRequest("El campo %s no puede ser nulo", f.Name)
			}
			values = append(values, Assignment{Column: f.ColumnName(), Value: nil})
			continue
		}

		v, err := decodeField(f, raw)
		if err != nil {
			return nil, err
		}
		values = append(values, Assignment{Column: f.ColumnName(), Value: v})
	}

	if len(values) == 0 {
		return nil, apierror.BadRequest("No se envió ningún campo actualizable")
	}
	if mode != ModePatch && d.Check != nil {
		if err := d.Check(values); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeField(f Field, raw json.RawMessage) (interface{}, error) {
	var value interface{}
	switch f.Kind {
	case KindInt:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, apierror.BadRequest("El campo %s debe ser un número entero", f.Name)
		}
		value = n
	case KindDecimal:
		var n decimal.Decimal
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, apierror.BadRequest("El campo %s debe ser numérico", f.Name)
		}
		value = n
	case KindDate:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, apierror.BadRequest("El campo %s debe ser una fecha YYYY-MM-DD", f.Name)
		}
		fecha, err := model.ParseFecha(s)
		if err != nil {
			return nil, apierror.BadRequest("Formato de fecha inválido en %s, use YYYY-MM-DD", f.Name)
		}
		value = fecha
	case KindFlag:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, apierror.BadRequest("El campo %s debe ser 'S' o 'N'", f.Name)
		}
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "S" && s != "N" {
			return nil, apierror.BadRequest("El campo %s debe ser 'S' o 'N'", f.Name)
		}
		value = s
	case KindText, KindPassword:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, apierror.BadRequest("El campo %s debe ser texto", f.Name)
		}
		value = strings.TrimSpace(s)
	}

	if f.Rule != "" {
		if err := validate.Var(value, f.Rule); err != nil {
			return nil, ruleError(f, err)
		}
	}

	if f.Kind == KindPassword {
		hash, err := bcrypt.GenerateFromPassword([]byte(value.(string)), BcryptCost)
		if err != nil {
			return nil, apierror.Wrap(apierror.KindInternal, err, "No se pudo procesar la contraseña")
		}
		return string(hash), nil
	}
	return value, nil
}

func ruleError(f Field, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apierror.BadRequest("Valor inválido para %s", f.Name)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gt":
		return apierror.BadRequest("El campo %s debe ser mayor que %s", f.Name, fe.Param())
	case "gte":
		return apierror.BadRequest("El campo %s debe ser mayor o igual que %s", f.Name, fe.Param())
	case "min":
		return apierror.BadRequest("El campo %s debe tener al menos %s caracteres", f.Name, fe.Param())
	case "max":
		return apierror.BadRequest("El campo %s admite como máximo %s caracteres", f.Name, fe.Param())
	default:
		return apierror.BadRequest("Valor inválido para %s (%s)", f.Name, fe.Tag())
	}
}
