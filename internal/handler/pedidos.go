package handler

import (
	"net/http"

	"retailapi/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// ListarPorCliente godoc
// @Summary      Pedidos de un cliente
// @Description  Devuelve los pedidos del cliente con la descripción de su estado y sus detalles (nombre e imagen del producto).
// @Tags         clientes
// @Produce      json
// @Param        id   path     int  true  "ID del cliente"
// @Success      200  {array}  dto.PedidoClienteResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id}/pedidos [get]
func (h *PedidosHandler) ListarPorCliente(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorCliente(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
