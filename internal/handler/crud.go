package handler

import (
	"net/http"

	"retailapi/internal/resource"
	"retailapi/internal/service"

	"github.com/gin-gonic/gin"
)

// CrudHandler exposes the six entity operations of one resource over HTTP.
type CrudHandler[T any] struct {
	def *resource.Definition
	svc service.CrudService[T]
}

func NewCrudHandler[T any](def *resource.Definition, svc service.CrudService[T]) *CrudHandler[T] {
	return &CrudHandler[T]{def: def, svc: svc}
}

// Listar GET /v1/<recurso>
func (h *CrudHandler[T]) Listar(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ObtenerPorID GET /v1/<recurso>/:id
func (h *CrudHandler[T]) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Crear POST /v1/<recurso>
func (h *CrudHandler[T]) Crear(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Reemplazar PUT /v1/<recurso>/:id
func (h *CrudHandler[T]) Reemplazar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.Reemplazar(c.Request.Context(), id, body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /v1/<recurso>/:id
func (h *CrudHandler[T]) ActualizarParcial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), id, body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/<recurso>/:id
func (h *CrudHandler[T]) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Mount registers the six routes under rg.
func (h *CrudHandler[T]) Mount(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.def.Path)
	g.GET("", h.Listar)
	g.GET("/:id", h.ObtenerPorID)
	g.POST("", h.Crear)
	g.PUT("/:id", h.Reemplazar)
	g.PATCH("/:id", h.ActualizarParcial)
	g.DELETE("/:id", h.Eliminar)
}
