package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// PaymentHandler abonos de clientes.
type PaymentHandler struct {
	uc PaymentService
}

func NewPaymentHandler(uc PaymentService) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// ByCustomer GET /api/abonos/cliente/:id
func (h *PaymentHandler) ByCustomer(c *fiber.Ctx) error {
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

// Total GET /api/abonos/cliente/:id/total
func (h *PaymentHandler) Total(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.TotalByCustomer(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar abono
// @Description  La fecha del abono la asigna el servidor. El valor debe ser mayor que cero.
// @Tags         abonos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePaymentRequest  true  "abono"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/abonos [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id, "Abono registrado exitosamente")
}
