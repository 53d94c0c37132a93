package model

import "github.com/shopspring/decimal"

// EstadoPedido is an order lifecycle label (pendiente, pagado, despachado...).
type EstadoPedido struct {
	IDEstadoPedido int64  `gorm:"column:id_estado_pedido;primaryKey;autoIncrement:false" json:"id_estado_pedido"`
	Descripcion    string `gorm:"column:descripcion;type:varchar(100);not null;uniqueIndex:idx_estado_pedido_descripcion_ci,expression:LOWER(descripcion)" json:"descripcion"`
}

func (EstadoPedido) TableName() string { return "estado_pedido" }

// Pedido is a client purchase request composed of DetallePedido lines.
type Pedido struct {
	IDPedido           int64           `gorm:"column:id_pedido;primaryKey;autoIncrement:false" json:"id_pedido"`
	FechaPedido        Fecha           `gorm:"column:fecha_pedido;not null;index" json:"fecha_pedido"`
	IDCliente          int64           `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	IDEmpleadoVendedor *int64          `gorm:"column:id_empleado_vendedor" json:"id_empleado_vendedor"`
	IDSucursalOrigen   *int64          `gorm:"column:id_sucursal_origen" json:"id_sucursal_origen"`
	IDEstadoPedido     int64           `gorm:"column:id_estado_pedido;not null" json:"id_estado_pedido"`
	Total              decimal.Decimal `gorm:"column:total;type:decimal(12,2);not null;check:chk_pedido_total,total >= 0" json:"total"`

	Cliente  *Cliente      `gorm:"foreignKey:IDCliente;references:IDCliente" json:"-"`
	Vendedor *Empleado     `gorm:"foreignKey:IDEmpleadoVendedor;references:IDEmpleado" json:"-"`
	Sucursal *Sucursal     `gorm:"foreignKey:IDSucursalOrigen;references:IDSucursal" json:"-"`
	Estado   *EstadoPedido `gorm:"foreignKey:IDEstadoPedido;references:IDEstadoPedido" json:"-"`
}

func (Pedido) TableName() string { return "pedido" }

// DetallePedido is one line of an order.
type DetallePedido struct {
	IDDetallePedido int64           `gorm:"column:id_detalle_pedido;primaryKey;autoIncrement:false" json:"id_detalle_pedido"`
	IDPedido        int64           `gorm:"column:id_pedido;not null;index" json:"id_pedido"`
	IDProducto      int64           `gorm:"column:id_producto;not null;index" json:"id_producto"`
	Cantidad        int64           `gorm:"column:cantidad;not null;check:chk_detalle_cantidad,cantidad > 0" json:"cantidad"`
	PrecioUnitario  decimal.Decimal `gorm:"column:precio_unitario;type:decimal(12,2);not null" json:"precio_unitario"`
	Subtotal        decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2);not null" json:"subtotal"`

	Pedido   *Pedido   `gorm:"foreignKey:IDPedido;references:IDPedido" json:"-"`
	Producto *Producto `gorm:"foreignKey:IDProducto;references:IDProducto" json:"-"`
}

func (DetallePedido) TableName() string { return "detalle_pedido" }
