package resource

import "retailapi/internal/apierror"

const (
	ruleDescripcion = "min=1,max=100"
	ruleNombre      = "min=1,max=100"
	ruleTelefono    = "max=20"
	ruleCorreo      = "max=150"
	rulePassword    = "min=1,max=72"
)

func descripcionUnica(msg string) []Unique {
	return []Unique{{Columns: []string{"descripcion"}, Fold: true, Message: msg}}
}

var Ciudad = &Definition{
	Name: "Ciudad", Feminine: true, Path: "ciudades",
	Table: "ciudad", Key: "id_ciudad",
	Fields: []Field{
		{Name: "descripcion", Kind: KindText, Required: true, Rule: ruleDescripcion},
	},
	Dependents: []Dependent{
		{Table: "sucursal", Column: "id_ciudad", Label: "sucursales asociadas"},
	},
	Order: "id_ciudad ASC",
}

var Cargo = &Definition{
	Name: "Cargo", Path: "cargos",
	Table: "cargo", Key: "id_cargo",
	Fields: []Field{
		{Name: "descripcion", Kind: KindText, Required: true, Rule: ruleDescripcion},
	},
	Uniques: descripcionUnica("Ya existe un cargo con esa descripción"),
	Dependents: []Dependent{
		{Table: "empleado", Column: "id_cargo", Label: "empleados asociados"},
	},
	Order: "id_cargo ASC",
}

var Categoria = &Definition{
	Name: "Categoría", Feminine: true, Path: "categorias",
	Table: "categoria", Key: "id_categoria",
	Fields: []Field{
		{Name: "descripcion", Kind: KindText, Required: true, Rule: ruleDescripcion},
	},
	Uniques: descripcionUnica("Ya existe una categoría con esa descripción"),
	Dependents: []Dependent{
		{Table: "producto", Column: "id_categoria", Label: "productos asociados"},
	},
	Order: "id_categoria ASC",
}

var EstadoPedido = &Definition{
	Name: "Estado de pedido", Path: "estados-pedido",
	Table: "estado_pedido", Key: "id_estado_pedido",
	Fields: []Field{
		{Name: "descripcion", Kind: KindText, Required: true, Rule: ruleDescripcion},
	},
	Uniques: descripcionUnica("Ya existe un estado de pedido con esa descripción"),
	Dependents: []Dependent{
		{Table: "pedido", Column: "id_estado_pedido", Label: "pedidos asociados"},
	},
	Order: "id_estado_pedido ASC",
}

var TipoTransaccion = &Definition{
	Name: "Tipo de transacción", Path: "tipos-transaccion",
	Table: "tipo_transaccion", Key: "id_tipo_transaccion",
	Fields: []Field{
		{Name: "descripcion", Kind: KindText, Required: true, Rule: ruleDescripcion},
	},
	Uniques: descripcionUnica("Ya existe un tipo de transacción con esa descripción"),
	Dependents: []Dependent{
		{Table: "transaccion", Column: "id_tipo_transaccion", Label: "transacciones asociadas"},
	},
	Order: "id_tipo_transaccion ASC",
}

var Sucursal = &Definition{
	Name: "Sucursal", Feminine: true, Path: "sucursales",
	Table: "sucursal", Key: "id_sucursal",
	Fields: []Field{
		{Name: "nombre_sucursal", Kind: KindText, Required: true, Rule: ruleNombre},
		{Name: "direccion", Kind: KindText, Rule: "max=200"},
		{Name: "id_ciudad", Kind: KindInt, Required: true},
	},
	Uniques: []Unique{
		{Columns: []string{"nombre_sucursal"}, Fold: true, Message: "Ya existe una sucursal con ese nombre"},
	},
	References: []Reference{
		{Column: "id_ciudad", Table: "ciudad", Key: "id_ciudad", Label: "ciudad"},
	},
	Dependents: []Dependent{
		{Table: "empleado", Column: "id_sucursal", Label: "empleados asociados"},
		{Table: "stock_sucursal", Column: "id_sucursal", Label: "stock asociado"},
		{Table: "pedido", Column: "id_sucursal_origen", Label: "pedidos asociados"},
		{Table: "reporte_ventas", Column: "id_sucursal", Label: "reportes de ventas asociados"},
		{Table: "registro_inventario", Column: "id_sucursal", Label: "registros de inventario asociados"},
	},
	Order: "id_sucursal ASC",
}

var Empleado = &Definition{
	Name: "Empleado", Path: "empleados",
	Table: "empleado", Key: "id_empleado",
	Fields: []Field{
		{Name: "rut", Kind: KindText, Required: true, Rule: "min=1,max=12"},
		{Name: "nombres", Kind: KindText, Required: true, Rule: ruleNombre},
		{Name: "apellidos", Kind: KindText, Required: true, Rule: ruleNombre},
		{Name: "correo", Kind: KindText, Required: true, Rule: ruleCorreo},
		{Name: "telefono", Kind: KindText, Rule: ruleTelefono},
		{Name: "salario", Kind: KindDecimal, Required: true, Rule: "gt=0"},
		{Name: "id_cargo", Kind: KindInt, Required: true},
		{Name: "id_sucursal", Kind: KindInt, Required: true},
		{Name: "password", Column: "password_hash", Kind: KindPassword, Required: true, Rule: rulePassword},
		{Name: "activo", Kind: KindFlag, Required: true},
	},
	Uniques: []Unique{
		{Columns: []string{"rut"}, Fold: true, Message: "Ya existe un empleado con ese rut"},
		{Columns: []string{"correo"}, Fold: true, Message: "Ya existe un empleado con ese correo"},
	},
	References: []Reference{
		{Column: "id_cargo", Table: "cargo", Key: "id_cargo", Label: "cargo"},
		{Column: "id_sucursal", Table: "sucursal", Key: "id_sucursal", Label: "sucursal"},
	},
	Dependents: []Dependent{
		{Table: "pedido", Column: "id_empleado_vendedor", Label: "pedidos asociados"},
		{Table: "transaccion", Column: "id_empleado_cajero", Label: "transacciones asociadas"},
		{Table: "reporte_desempenio", Column: "id_empleado", Label: "reportes de desempeño asociados"},
		{Table: "registro_inventario", Column: "id_empleado_responsable", Label: "registros de inventario asociados"},
	},
	Order: "id_empleado ASC",
}

var Cliente = &Definition{
	Name: "Cliente", Path: "clientes",
	Table: "cliente", Key: "id_cliente",
	Fields: []Field{
		{Name: "nombres", Kind: KindText, Required: true, Rule: ruleNombre},
		{Name: "apellidos", Kind: KindText, Required: true, Rule: ruleNombre},
		{Name: "correo", Kind: KindText, Required: true, Rule: ruleCorreo},
		{Name: "telefono", Kind: KindText, Rule: ruleTelefono},
		{Name: "password", Column: "password_hash", Kind: KindPassword, Required: true, Rule: rulePassword},
		{Name: "activo", Kind: KindFlag, Required: true},
	},
	Uniques: []Unique{
		{Columns: []string{"correo"}, Fold: true, Message: "Ya existe un cliente con ese correo"},
	},
	Dependents: []Dependent{
		{Table: "pedido", Column: "id_cliente", Label: "pedidos asociados"},
	},
	Order: "id_cliente ASC",
}

var Producto = &Definition{
	Name: "Producto", Path: "productos",
	Table: "producto", Key: "id_producto",
	Fields: []Field{
		{Name: "nombre", Kind: KindText, Required: true, Rule: "min=1,max=150"},
		{Name: "marca", Kind: KindText, Rule: "max=100"},
		{Name: "descripcion_detallada", Kind: KindText},
		{Name: "precio", Kind: KindDecimal, Required: true, Rule: "gt=0"},
		{Name: "id_categoria", Kind: KindInt, Required: true},
		{Name: "imagen_url", Kind: KindText, Rule: "max=500"},
	},
	References: []Reference{
		{Column: "id_categoria", Table: "categoria", Key: "id_categoria", Label: "categoría"},
	},
	Dependents: []Dependent{
		{Table: "stock_sucursal", Column: "id_producto", Label: "stock asociado"},
		{Table: "detalle_pedido", Column: "id_producto", Label: "detalles de pedido asociados"},
		{Table: "registro_inventario", Column: "id_producto", Label: "registros de inventario asociados"},
	},
	Order: "id_producto ASC",
}

var StockSucursal = &Definition{
	Name: "Stock de sucursal", Path: "stock-sucursal",
	Table: "stock_sucursal", Key: "id_stock",
	Fields: []Field{
		{Name: "id_producto", Kind: KindInt, Required: true},
		{Name: "id_sucursal", Kind: KindInt, Required: true},
		{Name: "cantidad", Kind: KindInt, Required: true, Rule: "gte=0"},
		{Name: "ubicacion_bodega", Kind: KindText, Rule: "max=100"},
		{Name: "fecha_actualizacion", Kind: KindDate, Required: true, DefaultToday: true},
	},
	Uniques: []Unique{
		{Columns: []string{"id_producto", "id_sucursal"}, Message: "Ya existe stock para ese producto en esa sucursal"},
	},
	References: []Reference{
		{Column: "id_producto", Table: "producto", Key: "id_producto", Label: "producto"},
		{Column: "id_sucursal", Table: "sucursal", Key: "id_sucursal", Label: "sucursal"},
	},
	Order: "id_stock ASC",
}

var RegistroInventario = &Definition{
	Name: "Registro de inventario", Path: "registros-inventario",
	Table: "registro_inventario", Key: "id_registro",
	Fields: []Field{
		{Name: "tipo_actividad", Kind: KindText, Required: true, Rule: "min=1,max=50"},
		{Name: "id_producto", Kind: KindInt},
		{Name: "id_sucursal", Kind: KindInt},
		{Name: "cantidad_afectada", Kind: KindInt, Required: true},
		{Name: "stock_anterior", Kind: KindInt, Rule: "gte=0"},
		{Name: "stock_nuevo", Kind: KindInt, Rule: "gte=0"},
		{Name: "fecha", Kind: KindDate, Required: true, DefaultToday: true},
		{Name: "id_empleado_responsable", Kind: KindInt},
		{Name: "observaciones", Kind: KindText},
	},
	References: []Reference{
		{Column: "id_producto", Table: "producto", Key: "id_producto", Label: "producto"},
		{Column: "id_sucursal", Table: "sucursal", Key: "id_sucursal", Label: "sucursal"},
		{Column: "id_empleado_responsable", Table: "empleado", Key: "id_empleado", Label: "empleado"},
	},
	Order: "fecha DESC, id_registro DESC",
}

var Pedido = &Definition{
	Name: "Pedido", Path: "pedidos",
	Table: "pedido", Key: "id_pedido",
	Fields: []Field{
		{Name: "fecha_pedido", Kind: KindDate, Required: true},
		{Name: "id_cliente", Kind: KindInt, Required: true},
		{Name: "id_empleado_vendedor", Kind: KindInt},
		{Name: "id_sucursal_origen", Kind: KindInt},
		{Name: "id_estado_pedido", Kind: KindInt, Required: true},
		{Name: "total", Kind: KindDecimal, Required: true, Rule: "gte=0"},
	},
	References: []Reference{
		{Column: "id_cliente", Table: "cliente", Key: "id_cliente", Label: "cliente"},
		{Column: "id_empleado_vendedor", Table: "empleado", Key: "id_empleado", Label: "empleado vendedor"},
		{Column: "id_sucursal_origen", Table: "sucursal", Key: "id_sucursal", Label: "sucursal"},
		{Column: "id_estado_pedido", Table: "estado_pedido", Key: "id_estado_pedido", Label: "estado de pedido"},
	},
	Dependents: []Dependent{
		{Table: "detalle_pedido", Column: "id_pedido", Label: "detalles asociados"},
		{Table: "factura", Column: "id_pedido", Label: "una factura asociada"},
	},
	Order: "fecha_pedido DESC, id_pedido DESC",
}

var DetallePedido = &Definition{
	Name: "Detalle de pedido", Path: "detalles-pedido",
	Table: "detalle_pedido", Key: "id_detalle_pedido",
	Fields: []Field{
		{Name: "id_pedido", Kind: KindInt, Required: true},
		{Name: "id_producto", Kind: KindInt, Required: true},
		{Name: "cantidad", Kind: KindInt, Required: true, Rule: "gt=0"},
		{Name: "precio_unitario", Kind: KindDecimal, Required: true, Rule: "gte=0"},
		{Name: "subtotal", Kind: KindDecimal, Required: true, Rule: "gte=0"},
	},
	References: []Reference{
		{Column: "id_pedido", Table: "pedido", Key: "id_pedido", Label: "pedido"},
		{Column: "id_producto", Table: "producto", Key: "id_producto", Label: "producto"},
	},
	Order: "id_detalle_pedido ASC",
}

var Factura = &Definition{
	Name: "Factura", Feminine: true, Path: "facturas",
	Table: "factura", Key: "id_factura",
	Fields: []Field{
		{Name: "numero_factura", Kind: KindText, Required: true, Rule: "min=1,max=30"},
		{Name: "id_pedido", Kind: KindInt, Required: true},
		{Name: "fecha_emision", Kind: KindDate, Required: true},
		{Name: "total_neto", Kind: KindDecimal, Required: true, Rule: "gte=0"},
		{Name: "iva", Kind: KindDecimal, Required: true, Rule: "gte=0"},
		{Name: "total_con_iva", Kind: KindDecimal, Required: true, Rule: "gte=0"},
	},
	Uniques: []Unique{
		{Columns: []string{"numero_factura"}, Fold: true, Message: "Ya existe una factura con ese número"},
		{Columns: []string{"id_pedido"}, Message: "El pedido ya tiene una factura"},
	},
	References: []Reference{
		{Column: "id_pedido", Table: "pedido", Key: "id_pedido", Label: "pedido"},
	},
	Dependents: []Dependent{
		{Table: "transaccion", Column: "id_factura", Label: "transacciones asociadas"},
	},
	Order: "fecha_emision DESC, id_factura DESC",
}

var Transaccion = &Definition{
	Name: "Transacción", Feminine: true, Path: "transacciones",
	Table: "transaccion", Key: "id_transaccion",
	Fields: []Field{
		{Name: "id_factura", Kind: KindInt, Required: true},
		{Name: "id_tipo_transaccion", Kind: KindInt, Required: true},
		{Name: "monto", Kind: KindDecimal, Required: true, Rule: "gt=0"},
		{Name: "fecha_transaccion", Kind: KindDate, Required: true},
		{Name: "referencia_pago", Kind: KindText, Rule: "max=100"},
		{Name: "id_empleado_cajero", Kind: KindInt},
	},
	References: []Reference{
		{Column: "id_factura", Table: "factura", Key: "id_factura", Label: "factura"},
		{Column: "id_tipo_transaccion", Table: "tipo_transaccion", Key: "id_tipo_transaccion", Label: "tipo de transacción"},
		{Column: "id_empleado_cajero", Table: "empleado", Key: "id_empleado", Label: "empleado cajero"},
	},
	Order: "fecha_transaccion DESC, id_transaccion DESC",
}

var ReporteVentas = &Definition{
	Name: "Reporte de ventas", Path: "reportes-ventas",
	Table: "reporte_ventas", Key: "id_reporte",
	Fields: []Field{
		{Name: "fecha_generacion", Kind: KindDate, Required: true, DefaultToday: true},
		{Name: "periodo_inicio", Kind: KindDate, Required: true},
		{Name: "periodo_fin", Kind: KindDate, Required: true},
		{Name: "total_calculado", Kind: KindDecimal, Required: true, Rule: "gte=0"},
		{Name: "id_sucursal", Kind: KindInt, Required: true},
	},
	References: []Reference{
		{Column: "id_sucursal", Table: "sucursal", Key: "id_sucursal", Label: "sucursal"},
	},
	Order: "fecha_generacion DESC, id_reporte DESC",
	Check: checkPeriodo("periodo_inicio", "periodo_fin"),
}

var ReporteDesempenio = &Definition{
	Name: "Reporte de desempeño", Path: "reportes-desempenio",
	Table: "reporte_desempenio", Key: "id_reporte_desempenio",
	Fields: []Field{
		{Name: "id_empleado", Kind: KindInt, Required: true},
		{Name: "fecha_generacion", Kind: KindDate, Required: true, DefaultToday: true},
		{Name: "periodo_evaluacion_inicio", Kind: KindDate, Required: true},
		{Name: "periodo_evaluacion_fin", Kind: KindDate, Required: true},
		{Name: "datos_evaluacion", Kind: KindText},
	},
	References: []Reference{
		{Column: "id_empleado", Table: "empleado", Key: "id_empleado", Label: "empleado"},
	},
	Order: "fecha_generacion DESC, id_reporte_desempenio DESC",
	Check: checkPeriodo("periodo_evaluacion_inicio", "periodo_evaluacion_fin"),
}

// All lists every definition in the order the routes are mounted.
func All() []*Definition {
	return []*Definition{
		Ciudad, Cargo, Categoria, EstadoPedido, TipoTransaccion,
		Sucursal, Empleado, Cliente, Producto, StockSucursal, RegistroInventario,
		Pedido, DetallePedido, Factura, Transaccion, ReporteVentas, ReporteDesempenio,
	}
}

func checkPeriodo(inicio, fin string) func(Values) error {
	return func(v Values) error {
		a, okA := v.Fecha(inicio)
		b, okB := v.Fecha(fin)
		if okA && okB && b.Before(a.Time) {
			return apierror.BadRequest("%s no puede ser anterior a %s", fin, inicio)
		}
		return nil
	}
}
