package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// BusinessHandler datos del negocio (encabezado de reportes).
type BusinessHandler struct {
	uc BusinessService
}

func NewBusinessHandler(uc BusinessService) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get GET /api/negocio
// @Summary      Datos del negocio
// @Description  Si no existe registro se crea uno por defecto.
// @Tags         negocio
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/negocio [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/negocio/:id (solo admin)
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateBusinessRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return message(c, "Datos del negocio actualizados exitosamente")
}
