package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc CustomerService
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc CustomerService) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/clientes
// @Summary   Listar clientes activos
// @Tags      clientes
// @Security  Bearer
// @Produce   json
// @Success   200  {array}   dto.CustomerResponse
// @Router    /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clientes/:id
// @Summary   Obtener cliente
// @Tags      clientes
// @Security  Bearer
// @Produce   json
// @Param     id   path      int  true  "ID del cliente"
// @Success   200  {object}  dto.CustomerResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Router    /api/clientes/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/clientes
// @Summary   Crear cliente
// @Tags      clientes
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body  body      dto.CustomerRequest  true  "cliente"
// @Success   201   {object}  dto.CreatedResponse
// @Failure   400   {object}  dto.ErrorResponse
// @Router    /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id, "Cliente creado exitosamente")
}

// Update PUT /api/clientes/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CustomerRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return message(c, "Cliente actualizado exitosamente")
}

// Delete DELETE /api/clientes/:id (soft delete, solo admin)
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return message(c, "Cliente eliminado exitosamente")
}
