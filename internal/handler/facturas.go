package handler

import (
	"fmt"
	"net/http"

	"retailapi/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// DescargarPDF godoc
// @Summary      Factura en PDF
// @Description  Genera la factura con las líneas de su pedido.
// @Tags         facturas
// @Produce      application/pdf
// @Param        id   path     int  true  "ID de la factura"
// @Success      200  {file}   file
// @Failure      404  {object} apierror.APIError
// @Router       /v1/facturas/{id}/pdf [get]
func (h *FacturasHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, nombre, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", nombre))
	c.Data(http.StatusOK, "application/pdf", doc)
}
