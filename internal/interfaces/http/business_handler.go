package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
)

// BusinessHandler maneja las peticiones HTTP del directorio de negocios.
type BusinessHandler struct {
	uc     *usecase.BusinessUseCase
	authUC *auth.AuthUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase, authUC *auth.AuthUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc, authUC: authUC}
}

// List godoc
// @Summary      Listar negocios
// @Tags         businesses
// @Produce      json
// @Param        q            query  string  false  "Texto en nombre o descripción"
// @Param        category_id  query  int     false  "Categoría"
// @Param        city         query  string  false  "Ciudad"
// @Param        limit        query  int     false  "Límite (default 20)"
// @Param        offset       query  int     false  "Offset"
// @Success      200   {object}  dto.BusinessListResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	in := dto.BusinessListRequest{
		Query: c.Query("q"),
		City:  c.Query("city"),
		Page:  dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)},
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badParam(c, "category_id")
		}
		in.CategoryID = &id
	}
	out, err := h.uc.List(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Perfil de un negocio por username
// @Tags         businesses
// @Produce      json
// @Param        username  path  string  true  "Slug del negocio"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/businesses/{username} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	key := c.Params("username")
	var (
		out *dto.BusinessResponse
		err error
	)
	// Un username siempre contiene letras: un valor puramente numérico es un id.
	if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
		out, err = h.uc.Get(c.UserContext(), GetSession(c), id)
	} else {
		out, err = h.uc.GetByUsername(c.UserContext(), GetSession(c), key)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear el negocio propio
// @Description  Vincula el negocio a la cuenta y refresca la sesión (rol owner).
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sess := GetSession(c)
	out, err := h.uc.Create(c.UserContext(), sess, in)
	if err != nil {
		return writeError(c, err)
	}
	if _, err := h.authUC.Refresh(c.UserContext(), GetSlot(c), sess); err != nil {
		// El negocio ya existe; la sesión se pondrá al día en el próximo refresh.
		requestLogger(c).Warn().Err(err).Int64("business_id", out.ID).Msg("refrescar sesión tras crear negocio")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar negocio
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del negocio"
// @Param        body  body  dto.UpdateBusinessRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/businesses/{id} [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar negocio (admin)
// @Tags         businesses
// @Security     Bearer
// @Param        id  path  int  true  "ID del negocio"
// @Success      204
// @Router       /api/businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if err := h.uc.Delete(c.UserContext(), GetSession(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

