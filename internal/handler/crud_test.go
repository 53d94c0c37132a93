package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"retailapi/internal/apierror"
	"retailapi/internal/dto"
	"retailapi/internal/middleware"
	"retailapi/internal/model"
	"retailapi/internal/repository"
	"retailapi/internal/repository/repotest"
	"retailapi/internal/resource"
	"retailapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	resource.BcryptCost = bcrypt.MinCost
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func newEngine(repo *repotest.Memory) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1 := r.Group("/v1")
	NewCrudHandler(resource.Ciudad, service.NewCrudService[model.Ciudad](resource.Ciudad, repo)).Mount(v1)
	NewCrudHandler(resource.Cargo, service.NewCrudService[model.Cargo](resource.Cargo, repo)).Mount(v1)
	NewCrudHandler(resource.Producto, service.NewCrudService[model.Producto](resource.Producto, repo)).Mount(v1)
	NewCrudHandler(resource.StockSucursal, service.NewCrudService[model.StockSucursal](resource.StockSucursal, repo)).Mount(v1)
	NewCrudHandler(resource.Pedido, service.NewCrudService[model.Pedido](resource.Pedido, repo)).Mount(v1)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), w.Body.String())
	return e.Detail
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func TestCiudadLifecycle(t *testing.T) {
	r := newEngine(repotest.NewMemory())

	w := do(t, r, http.MethodPost, "/v1/ciudades", `{"id_ciudad": 1, "descripcion": "Santiago"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.MensajeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Ciudad creada con éxito", created.Message)
	assert.Equal(t, int64(1), created.ID)

	w = do(t, r, http.MethodGet, "/v1/ciudades/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id_ciudad": 1, "descripcion": "Santiago"}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/v1/ciudades", `{"id_ciudad": 1, "descripcion": "Santiago"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/v1/ciudades", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id_ciudad": 1, "descripcion": "Santiago"}]`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/v1/ciudades/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/v1/ciudades/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ciudad no encontrada", detail(t, w))
}

func TestListar_EmptyIsArray(t *testing.T) {
	r := newEngine(repotest.NewMemory())

	w := do(t, r, http.MethodGet, "/v1/cargos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCargoDuplicateDescripcion(t *testing.T) {
	r := newEngine(repotest.NewMemory())

	w := do(t, r, http.MethodPost, "/v1/cargos", `{"id_cargo": 1, "descripcion": "Cajero"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/v1/cargos", `{"id_cargo": 2, "descripcion": "Cajero"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Ya existe un cargo con esa descripción", detail(t, w))
}

func TestCargoWithEmployeesCannotBeDeleted(t *testing.T) {
	repo := repotest.NewMemory()
	repo.Seed(resource.Cargo, map[string]interface{}{"id_cargo": int64(1), "descripcion": "Cajero"})
	repo.Seed(resource.Empleado, map[string]interface{}{"id_empleado": int64(1), "id_cargo": int64(1)})
	r := newEngine(repo)

	w := do(t, r, http.MethodDelete, "/v1/cargos/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, repo.Count(resource.Cargo))
}

func TestProductoPatchPrecio(t *testing.T) {
	repo := repotest.NewMemory()
	repo.Seed(resource.Producto, map[string]interface{}{
		"id_producto": int64(1), "nombre": "Café", "marca": "Andes",
		"precio": decimal.NewFromInt(100), "id_categoria": int64(1),
	})
	r := newEngine(repo)

	w := do(t, r, http.MethodPatch, "/v1/productos/1", `{"precio": 150.0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/productos/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var p model.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.True(t, decimal.NewFromInt(150).Equal(p.Precio))
	assert.Equal(t, "Café", p.Nombre)
	require.NotNil(t, p.Marca)
	assert.Equal(t, "Andes", *p.Marca)
}

func TestBadRequests(t *testing.T) {
	repo := repotest.NewMemory()
	repo.Seed(resource.Producto, map[string]interface{}{
		"id_producto": int64(1), "nombre": "Café", "precio": decimal.NewFromInt(100), "id_categoria": int64(1),
	})
	r := newEngine(repo)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		detail string
	}{
		{"empty patch", http.MethodPatch, "/v1/productos/1", `{}`, http.StatusBadRequest, ""},
		{"patch without body", http.MethodPatch, "/v1/productos/1", "", http.StatusBadRequest, ""},
		{"negative stock", http.MethodPost, "/v1/stock-sucursal",
			`{"id_stock": 1, "id_producto": 1, "id_sucursal": 1, "cantidad": -1}`, http.StatusBadRequest, ""},
		{"missing client", http.MethodPost, "/v1/pedidos",
			`{"id_pedido": 1, "fecha_pedido": "2024-05-01", "id_cliente": 5, "id_estado_pedido": 1, "total": 0}`,
			http.StatusBadRequest, "No existe cliente con id 5"},
		{"invalid id", http.MethodGet, "/v1/productos/abc", "", http.StatusBadRequest, "ID inválido"},
		{"zero id", http.MethodDelete, "/v1/productos/0", "", http.StatusBadRequest, "ID inválido"},
		{"array body", http.MethodPost, "/v1/ciudades", `[1, 2]`, http.StatusBadRequest, "JSON inválido: se esperaba un objeto"},
		{"malformed body", http.MethodPut, "/v1/ciudades/1", `{"descripcion":`, http.StatusBadRequest, "JSON inválido: se esperaba un objeto"},
		{"replace missing", http.MethodPut, "/v1/ciudades/9", `{"descripcion": "Talca"}`, http.StatusNotFound, "Ciudad no encontrada"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.detail != "" {
				assert.Equal(t, tt.detail, detail(t, w))
			}
		})
	}
}

func TestInternalErrorsAreMasked(t *testing.T) {
	repo := repotest.NewMemory()
	repo.Err = errors.New("pq: connection refused")
	r := newEngine(repo)

	w := do(t, r, http.MethodGet, "/v1/ciudades", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error interno del servidor", detail(t, w))
}

// ── Composite reads ──────────────────────────────────────────────────────────

type stubPedidoRepo struct{ rows []repository.PedidoDetalleRow }

func (s stubPedidoRepo) ListarPorCliente(context.Context, int64) ([]repository.PedidoDetalleRow, error) {
	return s.rows, nil
}

func TestPedidosPorCliente(t *testing.T) {
	repo := repotest.NewMemory()
	repo.Seed(resource.Cliente, map[string]interface{}{"id_cliente": int64(3)})
	fecha, err := model.ParseFecha("2024-05-02")
	require.NoError(t, err)
	pedidos := stubPedidoRepo{rows: []repository.PedidoDetalleRow{{
		IDPedido: 20, FechaPedido: fecha, IDCliente: 3, IDEstadoPedido: 1,
		Total: decimal.NewFromInt(0), DescripcionEstado: "Pendiente",
	}}}

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewPedidosHandler(service.NewPedidoService(repo, pedidos))
	r.GET("/v1/clientes/:id/pedidos", h.ListarPorCliente)

	w := do(t, r, http.MethodGet, "/v1/clientes/3/pedidos", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got []dto.PedidoClienteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Pendiente", got[0].DescripcionEstado)
	assert.Equal(t, "2024-05-02", got[0].FechaPedido.String())
	assert.Contains(t, w.Body.String(), `"detalles":[]`)

	w = do(t, r, http.MethodGet, "/v1/clientes/4/pedidos", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type stubFacturaService struct{}

func (stubFacturaService) GenerarPDF(_ context.Context, id int64) ([]byte, string, error) {
	if id != 1 {
		return nil, "", apierror.NotFound("Factura no encontrada")
	}
	return []byte("%PDF-1.3 test"), "factura_F-1.pdf", nil
}

func TestDescargarPDF(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/v1/facturas/:id/pdf", NewFacturasHandler(stubFacturaService{}).DescargarPDF)

	w := do(t, r, http.MethodGet, "/v1/facturas/1/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="factura_F-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 test", w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/facturas/2/pdf", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Factura no encontrada", detail(t, w))
}
