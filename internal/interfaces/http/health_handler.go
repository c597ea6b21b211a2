package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthResponse respuesta de /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler reporta si la API y la base de datos responden.
type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

// NewHealthHandler db puede ser nil (sin verificación de base de datos).
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

// Check GET /api/health
// @Summary   Estado del servicio
// @Tags      health
// @Produce   json
// @Success   200  {object}  HealthResponse
// @Failure   503  {object}  HealthResponse
// @Router    /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
				Status: "ERROR", Message: "Base de datos no disponible", Timestamp: h.now(),
			})
		}
	}
	return c.JSON(HealthResponse{Status: "OK", Message: "API Tienda funcionando correctamente", Timestamp: h.now()})
}
