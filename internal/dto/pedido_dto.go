package dto

import (
	"retailapi/internal/model"

	"github.com/shopspring/decimal"
)

// ── Response DTOs ─────────────────────────────────────────────────────────────

// PedidoClienteResponse is one order of GET /v1/clientes/:id/pedidos.
type PedidoClienteResponse struct {
	IDPedido           int64                          `json:"id_pedido"`
	FechaPedido        model.Fecha                    `json:"fecha_pedido"`
	IDCliente          int64                          `json:"id_cliente"`
	IDEmpleadoVendedor *int64                         `json:"id_empleado_vendedor"`
	IDSucursalOrigen   *int64                         `json:"id_sucursal_origen"`
	IDEstadoPedido     int64                          `json:"id_estado_pedido"`
	Total              decimal.Decimal                `json:"total"`
	DescripcionEstado  string                         `json:"descripcion_estado"`
	Detalles           []DetallePedidoClienteResponse `json:"detalles"`
}

type DetallePedidoClienteResponse struct {
	IDDetallePedido int64           `json:"id_detalle_pedido"`
	IDProducto      int64           `json:"id_producto"`
	Cantidad        int64           `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	NombreProducto  string          `json:"nombre_producto"`
	ImagenURL       *string         `json:"imagen_url"`
}
