package repository

import (
	"context"

	"retailapi/internal/model"
	"retailapi/internal/resource"

	"gorm.io/gorm"
)

// FacturaRepository loads an invoice together with the lines of its order.
type FacturaRepository interface {
	ObtenerConLineas(ctx context.Context, id int64) (*model.Factura, []model.LineaFactura, error)
}

type facturaRepository struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository {
	return &facturaRepository{db: db}
}

func (r *facturaRepository) ObtenerConLineas(ctx context.Context, id int64) (*model.Factura, []model.LineaFactura, error) {
	var f model.Factura
	if err := r.db.WithContext(ctx).Where(eq("id_factura", id)).Take(&f).Error; err != nil {
		return nil, nil, translate(resource.Factura, opRead, err)
	}

	var lineas []model.LineaFactura
	err := r.db.WithContext(ctx).
		Table("detalle_pedido d").
		Select("pr.nombre AS nombre_producto, d.cantidad, d.precio_unitario, d.subtotal").
		Joins("JOIN producto pr ON pr.id_producto = d.id_producto").
		Where("d.id_pedido = ?", f.IDPedido).
		Order("d.id_detalle_pedido ASC").
		Scan(&lineas).Error
	if err != nil {
		return nil, nil, translate(resource.Factura, opRead, err)
	}
	return &f, lineas, nil
}
