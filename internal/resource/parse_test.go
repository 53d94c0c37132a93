package resource

import (
	"encoding/json"
	"strings"
	"testing"

	"retailapi/internal/apierror"
	"retailapi/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	BcryptCost = bcrypt.MinCost
}

func body(t *testing.T, js string) Body {
	t.Helper()
	var b Body
	require.NoError(t, json.Unmarshal([]byte(js), &b))
	return b
}

func requireBadRequest(t *testing.T, err error, contains string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest), "expected bad request, got %v", err)
	if contains != "" {
		assert.Contains(t, err.Error(), contains)
	}
}

func TestParseKey(t *testing.T) {
	id, err := Ciudad.ParseKey(body(t, `{"id_ciudad": 7, "descripcion": "Talca"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = Ciudad.ParseKey(body(t, `{"descripcion": "Talca"}`))
	requireBadRequest(t, err, "id_ciudad")

	_, err = Ciudad.ParseKey(body(t, `{"id_ciudad": "siete"}`))
	requireBadRequest(t, err, "entero")

	_, err = Ciudad.ParseKey(body(t, `{"id_ciudad": 0}`))
	requireBadRequest(t, err, "mayor que cero")
}

func TestParse_CreateRequiresEveryRequiredField(t *testing.T) {
	_, err := Sucursal.Parse(body(t, `{"nombre_sucursal": "Centro"}`), ModeCreate)
	requireBadRequest(t, err, "id_ciudad")
}

func TestParse_CreateLeavesAbsentNullableOut(t *testing.T) {
	v, err := Sucursal.Parse(body(t, `{"nombre_sucursal": " Centro ", "id_ciudad": 1}`), ModeCreate)
	require.NoError(t, err)

	assert.False(t, v.Has("direccion"))
	nombre, _ := v.Get("nombre_sucursal")
	assert.Equal(t, "Centro", nombre, "text is trimmed")
	ciudad, _ := v.Get("id_ciudad")
	assert.Equal(t, int64(1), ciudad)
}

func TestParse_ReplaceNullsAbsentNullable(t *testing.T) {
	v, err := Sucursal.Parse(body(t, `{"nombre_sucursal": "Centro", "id_ciudad": 1}`), ModeReplace)
	require.NoError(t, err)

	dir, ok := v.Get("direccion")
	assert.True(t, ok)
	assert.Nil(t, dir)
}

func TestParse_ExplicitNull(t *testing.T) {
	v, err := Sucursal.Parse(body(t, `{"direccion": null}`), ModePatch)
	require.NoError(t, err)
	dir, ok := v.Get("direccion")
	assert.True(t, ok)
	assert.Nil(t, dir)

	_, err = Sucursal.Parse(body(t, `{"nombre_sucursal": null}`), ModePatch)
	requireBadRequest(t, err, "no puede ser nulo")
}

func TestParse_PatchEmptyBody(t *testing.T) {
	_, err := Producto.Parse(Body{}, ModePatch)
	requireBadRequest(t, err, "al menos un dato")
}

func TestParse_PatchOnlyUnknownKeys(t *testing.T) {
	_, err := Producto.Parse(body(t, `{"color": "rojo", "id_producto": 3}`), ModePatch)
	requireBadRequest(t, err, "ningún campo")
}

func TestParse_PatchKeepsOnlySuppliedFields(t *testing.T) {
	v, err := Producto.Parse(body(t, `{"precio": 150.0}`), ModePatch)
	require.NoError(t, err)
	require.Len(t, v, 1)
	precio, _ := v.Get("precio")
	assert.True(t, decimal.NewFromInt(150).Equal(precio.(decimal.Decimal)))
}

func TestParse_NumericBounds(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
		js   string
	}{
		{"precio cero", Producto, `{"precio": 0}`},
		{"salario negativo", Empleado, `{"salario": -10}`},
		{"stock negativo", StockSucursal, `{"cantidad": -1}`},
		{"detalle cero", DetallePedido, `{"cantidad": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Parse(body(t, tt.js), ModePatch)
			requireBadRequest(t, err, "mayor")
		})
	}

	_, err := StockSucursal.Parse(body(t, `{"cantidad": 0}`), ModePatch)
	assert.NoError(t, err, "stock may be zero")
}

func TestParse_ActivoFlag(t *testing.T) {
	v, err := Cliente.Parse(body(t, `{"activo": "s"}`), ModePatch)
	require.NoError(t, err)
	activo, _ := v.Get("activo")
	assert.Equal(t, "S", activo)

	_, err = Cliente.Parse(body(t, `{"activo": "x"}`), ModePatch)
	requireBadRequest(t, err, "'S' o 'N'")
}

func TestParse_Dates(t *testing.T) {
	v, err := Pedido.Parse(body(t, `{"fecha_pedido": "2024-03-15"}`), ModePatch)
	require.NoError(t, err)
	fecha, ok := v.Fecha("fecha_pedido")
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", fecha.String())

	_, err = Pedido.Parse(body(t, `{"fecha_pedido": "15/03/2024"}`), ModePatch)
	requireBadRequest(t, err, "YYYY-MM-DD")
}

func TestParse_DefaultToday(t *testing.T) {
	v, err := StockSucursal.Parse(body(t, `{"id_producto": 1, "id_sucursal": 2, "cantidad": 5}`), ModeCreate)
	require.NoError(t, err)
	fecha, ok := v.Fecha("fecha_actualizacion")
	require.True(t, ok)
	assert.Equal(t, model.Hoy().String(), fecha.String())
}

func TestParse_PasswordIsHashed(t *testing.T) {
	js := `{"nombres": "Ana", "apellidos": "Rojas", "correo": "ana@example.com",
		"password": "secreto1", "activo": "S"}`
	v, err := Cliente.Parse(body(t, js), ModeCreate)
	require.NoError(t, err)

	assert.False(t, v.Has("password"))
	hash, ok := v.Get("password_hash")
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash.(string)), []byte("secreto1")))
}

func TestParse_ReplaceWithoutPasswordKeepsHash(t *testing.T) {
	js := `{"nombres": "Ana", "apellidos": "Rojas", "correo": "ana@example.com", "activo": "N"}`
	v, err := Cliente.Parse(body(t, js), ModeReplace)
	require.NoError(t, err)
	assert.False(t, v.Has("password_hash"))

	_, err = Cliente.Parse(body(t, js), ModeCreate)
	requireBadRequest(t, err, "password")
}

func TestParse_TextRulesOnlyCapLength(t *testing.T) {
	v, err := Cliente.Parse(body(t, `{"correo": "no-es-correo", "password": "12345"}`), ModePatch)
	require.NoError(t, err)
	correo, _ := v.Get("correo")
	assert.Equal(t, "no-es-correo", correo)
	assert.True(t, v.Has("password_hash"))

	v, err = Producto.Parse(body(t, `{"imagen_url": "img/cafe.jpg"}`), ModePatch)
	require.NoError(t, err)
	imagen, _ := v.Get("imagen_url")
	assert.Equal(t, "img/cafe.jpg", imagen)

	long := strings.Repeat("a", 151)
	_, err = Cliente.Parse(body(t, `{"correo": "`+long+`"}`), ModePatch)
	requireBadRequest(t, err, "correo admite como máximo 150")

	_, err = Producto.Parse(body(t, `{"imagen_url": "`+strings.Repeat("a", 501)+`"}`), ModePatch)
	requireBadRequest(t, err, "imagen_url admite como máximo 500")

	_, err = Cliente.Parse(body(t, `{"password": ""}`), ModePatch)
	requireBadRequest(t, err, "password")
}

func TestParse_CrossFieldChecks(t *testing.T) {
	js := `{"periodo_inicio": "2024-02-01", "periodo_fin": "2024-01-01",
		"total_calculado": 10, "id_sucursal": 1}`
	_, err := ReporteVentas.Parse(body(t, js), ModeCreate)
	requireBadRequest(t, err, "periodo_fin")

	js = `{"periodo_inicio": "2024-01-01", "periodo_fin": "2024-01-01",
		"total_calculado": 10, "id_sucursal": 1}`
	_, err = ReporteVentas.Parse(body(t, js), ModeCreate)
	assert.NoError(t, err)
}

func TestParse_FacturaTotalsAreStoredAsGiven(t *testing.T) {
	js := `{"numero_factura": "F-1", "id_pedido": 10, "fecha_emision": "2024-01-01",
		"total_neto": 100, "iva": 19, "total_con_iva": 119.5}`
	v, err := Factura.Parse(body(t, js), ModeCreate)
	require.NoError(t, err)
	total, ok := v.Get("total_con_iva")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("119.5").Equal(total.(decimal.Decimal)))
}

func TestMerge(t *testing.T) {
	stored := map[string]interface{}{
		"id_stock": int64(1), "id_producto": int64(3), "id_sucursal": int64(4),
		"cantidad": int64(9), "ubicacion_bodega": nil, "fecha_actualizacion": "2024-01-01",
	}
	merged := StockSucursal.Merge(stored, Values{{Column: "id_sucursal", Value: int64(5)}})

	suc, _ := merged.Get("id_sucursal")
	prod, _ := merged.Get("id_producto")
	assert.Equal(t, int64(5), suc)
	assert.Equal(t, int64(3), prod)
	assert.False(t, merged.Has("id_stock"), "the key is not a field")

	fecha, ok := merged.Fecha("fecha_actualizacion")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", fecha.String())
}
