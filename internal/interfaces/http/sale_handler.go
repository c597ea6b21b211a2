package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// SaleHandler ventas diarias.
type SaleHandler struct {
	uc SaleService
}

func NewSaleHandler(uc SaleService) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary   Listar ventas
// @Tags      ventas
// @Security  Bearer
// @Produce   json
// @Success   200  {array}  dto.SaleResponse
// @Router    /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Pending godoc
// @Summary   Ventas pendientes
// @Tags      ventas
// @Security  Bearer
// @Produce   json
// @Success   200  {array}  dto.SaleResponse
// @Router    /api/ventas/pendientes [get]
func (h *SaleHandler) Pending(c *fiber.Ctx) error {
	list, err := h.uc.ListPending(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ByCustomer GET /api/ventas/cliente/:id
func (h *SaleHandler) ByCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListByCustomer(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/ventas/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Registrar venta
// @Description  El estado lo decide el servidor: pendiente solo si tipo_venta es pendiente.
// @Description  Las ventas a crédito o pendientes usan medio_pago n/a.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSaleRequest  true  "venta"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id, "Venta registrada exitosamente")
}

// Update PUT /api/ventas/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateSaleRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return message(c, "Venta actualizada exitosamente")
}

// Delete DELETE /api/ventas/:id (solo admin)
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return message(c, "Venta eliminada exitosamente")
}
