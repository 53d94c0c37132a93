package service

import (
	"context"
	"fmt"

	"retailapi/internal/infra"
	"retailapi/internal/repository"
)

// FacturaService renders invoices.
type FacturaService interface {
	// GenerarPDF returns the invoice document and a suggested file name.
	GenerarPDF(ctx context.Context, id int64) ([]byte, string, error)
}

type facturaService struct {
	repo    repository.FacturaRepository
	negocio string
}

func NewFacturaService(repo repository.FacturaRepository, negocio string) FacturaService {
	return &facturaService{repo: repo, negocio: negocio}
}

func (s *facturaService) GenerarPDF(ctx context.Context, id int64) ([]byte, string, error) {
	f, lineas, err := s.repo.ObtenerConLineas(ctx, id)
	if err != nil {
		return nil, "", err
	}
	doc, err := infra.GenerateFacturaPDF(f, lineas, s.negocio)
	if err != nil {
		return nil, "", err
	}
	return doc, fmt.Sprintf("factura_%s.pdf", f.NumeroFactura), nil
}
