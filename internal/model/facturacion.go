package model

import "github.com/shopspring/decimal"

// Factura is the billing document issued for exactly one Pedido.
type Factura struct {
	IDFactura     int64           `gorm:"column:id_factura;primaryKey;autoIncrement:false" json:"id_factura"`
	NumeroFactura string          `gorm:"column:numero_factura;type:varchar(30);not null;uniqueIndex:idx_factura_numero_ci,expression:LOWER(numero_factura)" json:"numero_factura"`
	IDPedido      int64           `gorm:"column:id_pedido;not null;uniqueIndex" json:"id_pedido"`
	FechaEmision  Fecha           `gorm:"column:fecha_emision;not null;index" json:"fecha_emision"`
	TotalNeto     decimal.Decimal `gorm:"column:total_neto;type:decimal(12,2);not null" json:"total_neto"`
	IVA           decimal.Decimal `gorm:"column:iva;type:decimal(12,2);not null" json:"iva"`
	TotalConIVA   decimal.Decimal `gorm:"column:total_con_iva;type:decimal(12,2);not null" json:"total_con_iva"`

	Pedido *Pedido `gorm:"foreignKey:IDPedido;references:IDPedido" json:"-"`
}

func (Factura) TableName() string { return "factura" }

// TipoTransaccion labels a payment kind (efectivo, debito, credito...).
type TipoTransaccion struct {
	IDTipoTransaccion int64  `gorm:"column:id_tipo_transaccion;primaryKey;autoIncrement:false" json:"id_tipo_transaccion"`
	Descripcion       string `gorm:"column:descripcion;type:varchar(100);not null;uniqueIndex:idx_tipo_transaccion_descripcion_ci,expression:LOWER(descripcion)" json:"descripcion"`
}

func (TipoTransaccion) TableName() string { return "tipo_transaccion" }

// Transaccion is a payment event against an invoice.
type Transaccion struct {
	IDTransaccion     int64           `gorm:"column:id_transaccion;primaryKey;autoIncrement:false" json:"id_transaccion"`
	IDFactura         int64           `gorm:"column:id_factura;not null;index" json:"id_factura"`
	IDTipoTransaccion int64           `gorm:"column:id_tipo_transaccion;not null" json:"id_tipo_transaccion"`
	Monto             decimal.Decimal `gorm:"column:monto;type:decimal(12,2);not null;check:chk_transaccion_monto,monto > 0" json:"monto"`
	FechaTransaccion  Fecha           `gorm:"column:fecha_transaccion;not null;index" json:"fecha_transaccion"`
	ReferenciaPago    *string         `gorm:"column:referencia_pago;type:varchar(100)" json:"referencia_pago"`
	IDEmpleadoCajero  *int64          `gorm:"column:id_empleado_cajero" json:"id_empleado_cajero"`

	Factura *Factura         `gorm:"foreignKey:IDFactura;references:IDFactura" json:"-"`
	Tipo    *TipoTransaccion `gorm:"foreignKey:IDTipoTransaccion;references:IDTipoTransaccion" json:"-"`
	Cajero  *Empleado        `gorm:"foreignKey:IDEmpleadoCajero;references:IDEmpleado" json:"-"`
}

func (Transaccion) TableName() string { return "transaccion" }

// LineaFactura is an order line as printed on an invoice. It is read from a
// join and never persisted.
type LineaFactura struct {
	NombreProducto string          `json:"nombre_producto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
