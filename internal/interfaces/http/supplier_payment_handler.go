package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// SupplierPaymentHandler pagos a proveedores.
type SupplierPaymentHandler struct {
	uc SupplierPaymentService
}

func NewSupplierPaymentHandler(uc SupplierPaymentService) *SupplierPaymentHandler {
	return &SupplierPaymentHandler{uc: uc}
}

// BySupplier GET /api/pagos-proveedores/proveedor/:id
func (h *SupplierPaymentHandler) BySupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListBySupplier(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Total GET /api/pagos-proveedores/proveedor/:id/total
func (h *SupplierPaymentHandler) Total(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.TotalBySupplier(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary   Registrar pago a proveedor
// @Tags      proveedores
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body  body      dto.CreateSupplierPaymentRequest  true  "pago"
// @Success   201   {object}  dto.CreatedResponse
// @Failure   400   {object}  dto.ErrorResponse
// @Failure   404   {object}  dto.ErrorResponse
// @Router    /api/pagos-proveedores [post]
func (h *SupplierPaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierPaymentRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id, "Pago registrado exitosamente")
}

// Delete DELETE /api/pagos-proveedores/:id (solo admin)
func (h *SupplierPaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return message(c, "Pago eliminado exitosamente")
}
