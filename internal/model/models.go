package model

import "github.com/shopspring/decimal"

func init() {
	// Money goes on the wire as a JSON number, e.g. "precio": 150.5.
	decimal.MarshalJSONWithoutQuotes = true
}

// All lists every persisted model in dependency order (parents first).
func All() []interface{} {
	return []interface{}{
		&Ciudad{}, &Cargo{}, &Categoria{}, &EstadoPedido{}, &TipoTransaccion{},
		&Sucursal{}, &Empleado{}, &Cliente{}, &Producto{},
		&StockSucursal{}, &RegistroInventario{},
		&Pedido{}, &DetallePedido{}, &Factura{}, &Transaccion{},
		&ReporteVentas{}, &ReporteDesempenio{},
	}
}
