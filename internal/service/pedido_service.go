package service

import (
	"context"

	"retailapi/internal/apierror"
	"retailapi/internal/dto"
	"retailapi/internal/repository"
	"retailapi/internal/resource"
)

// PedidoService serves the composite order reads.
type PedidoService interface {
	ListarPorCliente(ctx context.Context, idCliente int64) ([]dto.PedidoClienteResponse, error)
}

type pedidoService struct {
	crud repository.CrudRepository
	repo repository.PedidoRepository
}

func NewPedidoService(crud repository.CrudRepository, repo repository.PedidoRepository) PedidoService {
	return &pedidoService{crud: crud, repo: repo}
}

func (s *pedidoService) ListarPorCliente(ctx context.Context, idCliente int64) ([]dto.PedidoClienteResponse, error) {
	ok, err := s.crud.Exists(ctx, resource.Cliente.Table, resource.Cliente.Key, idCliente)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.NotFound("%s", resource.Cliente.NotFoundMessage())
	}

	rows, err := s.repo.ListarPorCliente(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	return agruparPedidos(rows), nil
}

// agruparPedidos folds the joined rows into one entry per order, keeping the
// order in which orders first appear.
func agruparPedidos(rows []repository.PedidoDetalleRow) []dto.PedidoClienteResponse {
	result := make([]dto.PedidoClienteResponse, 0)
	index := make(map[int64]int)
	for _, r := range rows {
		i, seen := index[r.IDPedido]
		if !seen {
			result = append(result, dto.PedidoClienteResponse{
				IDPedido:           r.IDPedido,
				FechaPedido:        r.FechaPedido,
				IDCliente:          r.IDCliente,
				IDEmpleadoVendedor: r.IDEmpleadoVendedor,
				IDSucursalOrigen:   r.IDSucursalOrigen,
				IDEstadoPedido:     r.IDEstadoPedido,
				Total:              r.Total,
				DescripcionEstado:  r.DescripcionEstado,
				Detalles:           make([]dto.DetallePedidoClienteResponse, 0),
			})
			i = len(result) - 1
			index[r.IDPedido] = i
		}
		if r.IDDetallePedido == nil {
			continue
		}
		d := dto.DetallePedidoClienteResponse{
			IDDetallePedido: *r.IDDetallePedido,
			PrecioUnitario:  r.PrecioUnitario.Decimal,
			Subtotal:        r.Subtotal.Decimal,
			ImagenURL:       r.ImagenURL,
		}
		if r.IDProducto != nil {
			d.IDProducto = *r.IDProducto
		}
		if r.Cantidad != nil {
			d.Cantidad = *r.Cantidad
		}
		if r.NombreProducto != nil {
			d.NombreProducto = *r.NombreProducto
		}
		result[i].Detalles = append(result[i].Detalles, d)
	}
	return result
}
