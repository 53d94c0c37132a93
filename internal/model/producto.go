package model

import "github.com/shopspring/decimal"

// Categoria classifies products.
type Categoria struct {
	IDCategoria int64  `gorm:"column:id_categoria;primaryKey;autoIncrement:false" json:"id_categoria"`
	Descripcion string `gorm:"column:descripcion;type:varchar(100);not null;uniqueIndex:idx_categoria_descripcion_ci,expression:LOWER(descripcion)" json:"descripcion"`
}

func (Categoria) TableName() string { return "categoria" }

// Producto is a sellable item. Stock is tracked per branch in StockSucursal.
type Producto struct {
	IDProducto           int64           `gorm:"column:id_producto;primaryKey;autoIncrement:false" json:"id_producto"`
	Nombre               string          `gorm:"column:nombre;type:varchar(150);not null;index" json:"nombre"`
	Marca                *string         `gorm:"column:marca;type:varchar(100)" json:"marca"`
	DescripcionDetallada *string         `gorm:"column:descripcion_detallada;type:text" json:"descripcion_detallada"`
	Precio               decimal.Decimal `gorm:"column:precio;type:decimal(12,2);not null;check:chk_producto_precio,precio > 0" json:"precio"`
	IDCategoria          int64           `gorm:"column:id_categoria;not null;index" json:"id_categoria"`
	ImagenURL            *string         `gorm:"column:imagen_url;type:varchar(500)" json:"imagen_url"`

	Categoria *Categoria `gorm:"foreignKey:IDCategoria;references:IDCategoria" json:"-"`
}

func (Producto) TableName() string { return "producto" }

// StockSucursal is the quantity of one product held at one branch.
// (id_producto, id_sucursal) is unique.
type StockSucursal struct {
	IDStock            int64   `gorm:"column:id_stock;primaryKey;autoIncrement:false" json:"id_stock"`
	IDProducto         int64   `gorm:"column:id_producto;not null;uniqueIndex:uq_stock_producto_sucursal" json:"id_producto"`
	IDSucursal         int64   `gorm:"column:id_sucursal;not null;uniqueIndex:uq_stock_producto_sucursal" json:"id_sucursal"`
	Cantidad           int64   `gorm:"column:cantidad;not null;default:0;check:chk_stock_cantidad,cantidad >= 0" json:"cantidad"`
	UbicacionBodega    *string `gorm:"column:ubicacion_bodega;type:varchar(100)" json:"ubicacion_bodega"`
	FechaActualizacion Fecha   `gorm:"column:fecha_actualizacion;not null" json:"fecha_actualizacion"`

	Producto *Producto `gorm:"foreignKey:IDProducto;references:IDProducto" json:"-"`
	Sucursal *Sucursal `gorm:"foreignKey:IDSucursal;references:IDSucursal" json:"-"`
}

func (StockSucursal) TableName() string { return "stock_sucursal" }

// RegistroInventario is the audit trail of stock-affecting events. Every reference
// is optional so the log survives the removal of what it describes.
type RegistroInventario struct {
	IDRegistro            int64   `gorm:"column:id_registro;primaryKey;autoIncrement:false" json:"id_registro"`
	TipoActividad         string  `gorm:"column:tipo_actividad;type:varchar(50);not null" json:"tipo_actividad"`
	IDProducto            *int64  `gorm:"column:id_producto;index" json:"id_producto"`
	IDSucursal            *int64  `gorm:"column:id_sucursal;index" json:"id_sucursal"`
	CantidadAfectada      int64   `gorm:"column:cantidad_afectada;not null" json:"cantidad_afectada"`
	StockAnterior         *int64  `gorm:"column:stock_anterior" json:"stock_anterior"`
	StockNuevo            *int64  `gorm:"column:stock_nuevo" json:"stock_nuevo"`
	Fecha                 Fecha   `gorm:"column:fecha;not null" json:"fecha"`
	IDEmpleadoResponsable *int64  `gorm:"column:id_empleado_responsable;index" json:"id_empleado_responsable"`
	Observaciones         *string `gorm:"column:observaciones;type:text" json:"observaciones"`

	Producto    *Producto `gorm:"foreignKey:IDProducto;references:IDProducto" json:"-"`
	Sucursal    *Sucursal `gorm:"foreignKey:IDSucursal;references:IDSucursal" json:"-"`
	Responsable *Empleado `gorm:"foreignKey:IDEmpleadoResponsable;references:IDEmpleado" json:"-"`
}

func (RegistroInventario) TableName() string { return "registro_inventario" }
