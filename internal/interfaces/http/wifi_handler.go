package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
)

// WifiHandler redes WiFi publicadas por un negocio.
type WifiHandler struct {
	uc *usecase.WifiUseCase
}

func NewWifiHandler(uc *usecase.WifiUseCase) *WifiHandler {
	return &WifiHandler{uc: uc}
}

// List godoc
// @Summary      Redes WiFi de un negocio (con payload QR)
// @Tags         wifi
// @Produce      json
// @Param        id  path  int  true  "ID del negocio"
// @Success      200   {array}  dto.WifiResponse
// @Router       /api/businesses/{id}/wifi [get]
func (h *WifiHandler) List(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	out, err := h.uc.List(c.UserContext(), GetSession(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar red WiFi
// @Tags         wifi
// @Security     Bearer
// @Param        body  body  dto.WifiRequest  true  "Red"
// @Success      201   {object}  dto.WifiResponse
// @Router       /api/businesses/{id}/wifi [post]
func (h *WifiHandler) Create(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.WifiRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar red WiFi
// @Tags         wifi
// @Security     Bearer
// @Router       /api/businesses/{id}/wifi/{wifiId} [put]
func (h *WifiHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	wifiID, ok := paramID(c, "wifiId")
	if !ok {
		return badParam(c, "wifiId")
	}
	var in dto.WifiRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), id, wifiID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar red WiFi
// @Tags         wifi
// @Security     Bearer
// @Router       /api/businesses/{id}/wifi/{wifiId} [delete]
func (h *WifiHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	wifiID, ok := paramID(c, "wifiId")
	if !ok {
		return badParam(c, "wifiId")
	}
	if err := h.uc.Delete(c.UserContext(), GetSession(c), id, wifiID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
