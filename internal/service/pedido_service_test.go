package service

import (
	"context"
	"testing"

	"retailapi/internal/apierror"
	"retailapi/internal/model"
	"retailapi/internal/repository"
	"retailapi/internal/repository/repotest"
	"retailapi/internal/resource"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPedidoRepo struct {
	rows []repository.PedidoDetalleRow
	got  int64
}

func (s *stubPedidoRepo) ListarPorCliente(_ context.Context, idCliente int64) ([]repository.PedidoDetalleRow, error) {
	s.got = idCliente
	return s.rows, nil
}

func ptr[T any](v T) *T { return &v }

func TestListarPorCliente_GroupsLinesUnderTheirOrder(t *testing.T) {
	crud := repotest.NewMemory()
	crud.Seed(resource.Cliente, map[string]interface{}{"id_cliente": int64(3)})

	fecha := mustFecha(t, "2024-05-02")
	repo := &stubPedidoRepo{rows: []repository.PedidoDetalleRow{
		{
			IDPedido: 20, FechaPedido: fecha, IDCliente: 3, IDEstadoPedido: 1,
			Total: decimal.NewFromInt(300), DescripcionEstado: "Pendiente",
			IDDetallePedido: ptr(int64(1)), IDProducto: ptr(int64(7)), Cantidad: ptr(int64(2)),
			PrecioUnitario: decimal.NewNullDecimal(decimal.NewFromInt(100)),
			Subtotal:       decimal.NewNullDecimal(decimal.NewFromInt(200)),
			NombreProducto: ptr("Café"),
		},
		{
			IDPedido: 20, FechaPedido: fecha, IDCliente: 3, IDEstadoPedido: 1,
			Total: decimal.NewFromInt(300), DescripcionEstado: "Pendiente",
			IDDetallePedido: ptr(int64(2)), IDProducto: ptr(int64(8)), Cantidad: ptr(int64(1)),
			PrecioUnitario: decimal.NewNullDecimal(decimal.NewFromInt(100)),
			Subtotal:       decimal.NewNullDecimal(decimal.NewFromInt(100)),
			NombreProducto: ptr("Té"), ImagenURL: ptr("https://example.com/te.png"),
		},
		{
			IDPedido: 10, FechaPedido: mustFecha(t, "2024-04-01"), IDCliente: 3, IDEstadoPedido: 2,
			Total: decimal.Zero, DescripcionEstado: "Entregado",
		},
	}}
	svc := NewPedidoService(crud, repo)

	got, err := svc.ListarPorCliente(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), repo.got)
	require.Len(t, got, 2)

	assert.Equal(t, int64(20), got[0].IDPedido)
	assert.Equal(t, "Pendiente", got[0].DescripcionEstado)
	require.Len(t, got[0].Detalles, 2)
	assert.Equal(t, "Café", got[0].Detalles[0].NombreProducto)
	assert.Nil(t, got[0].Detalles[0].ImagenURL)
	assert.Equal(t, int64(8), got[0].Detalles[1].IDProducto)
	assert.True(t, decimal.NewFromInt(100).Equal(got[0].Detalles[1].Subtotal))

	assert.Equal(t, int64(10), got[1].IDPedido)
	assert.NotNil(t, got[1].Detalles)
	assert.Empty(t, got[1].Detalles)
}

func TestListarPorCliente_ClientWithoutOrders(t *testing.T) {
	crud := repotest.NewMemory()
	crud.Seed(resource.Cliente, map[string]interface{}{"id_cliente": int64(3)})
	svc := NewPedidoService(crud, &stubPedidoRepo{})

	got, err := svc.ListarPorCliente(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListarPorCliente_UnknownClient(t *testing.T) {
	svc := NewPedidoService(repotest.NewMemory(), &stubPedidoRepo{})

	_, err := svc.ListarPorCliente(context.Background(), 42)
	e := requireKind(t, err, apierror.KindNotFound)
	assert.Equal(t, "Cliente no encontrado", e.Msg)
}

type stubFacturaRepo struct {
	factura *model.Factura
	lineas  []model.LineaFactura
	err     error
}

func (s *stubFacturaRepo) ObtenerConLineas(context.Context, int64) (*model.Factura, []model.LineaFactura, error) {
	return s.factura, s.lineas, s.err
}

func TestGenerarPDF(t *testing.T) {
	repo := &stubFacturaRepo{
		factura: &model.Factura{
			IDFactura: 1, NumeroFactura: "F-0001", IDPedido: 10,
			FechaEmision: mustFecha(t, "2024-05-02"),
			TotalNeto:    decimal.NewFromInt(100), IVA: decimal.NewFromInt(19), TotalConIVA: decimal.NewFromInt(119),
		},
		lineas: []model.LineaFactura{
			{NombreProducto: "Café", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(100)},
		},
	}
	svc := NewFacturaService(repo, "Tienda Central")

	doc, name, err := svc.GenerarPDF(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "factura_F-0001.pdf", name)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestGenerarPDF_NotFound(t *testing.T) {
	repo := &stubFacturaRepo{err: apierror.NotFound("%s", resource.Factura.NotFoundMessage())}
	svc := NewFacturaService(repo, "Tienda Central")

	_, _, err := svc.GenerarPDF(context.Background(), 9)
	requireKind(t, err, apierror.KindNotFound)
}
