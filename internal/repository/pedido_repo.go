package repository

import (
	"context"

	"retailapi/internal/model"
	"retailapi/internal/resource"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoDetalleRow is one row of the orders-by-client join: the order with its
// status description and, when the order has lines, one of its detail lines
// with the product name and image.
type PedidoDetalleRow struct {
	IDPedido           int64
	FechaPedido        model.Fecha
	IDCliente          int64
	IDEmpleadoVendedor *int64
	IDSucursalOrigen   *int64
	IDEstadoPedido     int64
	Total              decimal.Decimal
	DescripcionEstado  string

	IDDetallePedido *int64
	IDProducto      *int64
	Cantidad        *int64
	PrecioUnitario  decimal.NullDecimal
	Subtotal        decimal.NullDecimal
	NombreProducto  *string
	ImagenURL       *string
}

// PedidoRepository holds the order queries that span several tables.
type PedidoRepository interface {
	ListarPorCliente(ctx context.Context, idCliente int64) ([]PedidoDetalleRow, error)
}

type pedidoRepository struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

const pedidosPorClienteSQL = `
SELECT p.id_pedido, p.fecha_pedido, p.id_cliente, p.id_empleado_vendedor,
       p.id_sucursal_origen, p.id_estado_pedido, p.total,
       e.descripcion AS descripcion_estado,
       d.id_detalle_pedido, d.id_producto, d.cantidad, d.precio_unitario, d.subtotal,
       pr.nombre AS nombre_producto, pr.imagen_url
FROM pedido p
JOIN estado_pedido e ON e.id_estado_pedido = p.id_estado_pedido
LEFT JOIN detalle_pedido d ON d.id_pedido = p.id_pedido
LEFT JOIN producto pr ON pr.id_producto = d.id_producto
WHERE p.id_cliente = ?
ORDER BY p.fecha_pedido DESC, p.id_pedido DESC, d.id_detalle_pedido ASC`

// ListarPorCliente runs a single joined query; orders without lines yield one
// row with NULL detail columns.
func (r *pedidoRepository) ListarPorCliente(ctx context.Context, idCliente int64) ([]PedidoDetalleRow, error) {
	var rows []PedidoDetalleRow
	err := r.db.WithContext(ctx).Raw(pedidosPorClienteSQL, idCliente).Scan(&rows).Error
	if err != nil {
		return nil, translate(resource.Pedido, opRead, err)
	}
	return rows, nil
}
