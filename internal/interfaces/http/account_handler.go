package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler saldo, estado de cuenta y listado de cuentas.
type AccountHandler struct {
	uc AccountService
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc AccountService) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Balance godoc
// @Summary      Saldo del cliente
// @Description  Créditos completados menos abonos, con crédito disponible = límite - max(0, saldo).
// @Tags         cartera
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/saldo [get]
func (h *AccountHandler) Balance(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Balance(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta del cliente
// @Description  Ventas a crédito completadas y abonos, más reciente primero, con totales.
// @Tags         cartera
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.StatementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/estado-cuenta [get]
func (h *AccountHandler) Statement(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Statement(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StatementPDF GET /api/clientes/:id/estado-cuenta/pdf
// @Summary   Estado de cuenta en PDF
// @Tags      cartera
// @Security  Bearer
// @Produce   application/pdf
// @Param     id   path  int  true  "ID del cliente"
// @Success   200  {file}  binary
// @Failure   404  {object}  dto.ErrorResponse
// @Router    /api/clientes/{id}/estado-cuenta/pdf [get]
func (h *AccountHandler) StatementPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.uc.StatementPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

// List GET /api/estado-cuentas
// Clientes con saldo distinto de cero o con ventas a crédito, ordenados por nombre.
func (h *AccountHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListAccounts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
