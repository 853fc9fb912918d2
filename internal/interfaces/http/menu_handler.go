package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
)

// MenuHandler menú de un negocio: lectura pública, mutaciones con sesión.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Get godoc
// @Summary      Menú completo de un negocio
// @Tags         menu
// @Produce      json
// @Param        id  path  int  true  "ID del negocio"
// @Success      200   {object}  dto.MenuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/menu [get]
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	out, err := h.uc.GetMenu(c.UserContext(), GetSession(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear categoría del menú
// @Tags         menu
// @Security     Bearer
// @Param        id    path  int  true  "ID del negocio"
// @Param        body  body  dto.MenuCategoryRequest  true  "Categoría"
// @Success      201   {object}  dto.MenuCategoryResponse
// @Router       /api/businesses/{id}/menu/categories [post]
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.MenuCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCategory godoc
// @Summary      Renombrar o reordenar categoría del menú
// @Tags         menu
// @Security     Bearer
// @Router       /api/businesses/{id}/menu/categories/{categoryId} [put]
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	catID, ok := paramID(c, "categoryId")
	if !ok {
		return badParam(c, "categoryId")
	}
	var in dto.MenuCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCategory(c.UserContext(), GetSession(c), id, catID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría del menú (con sus ítems)
// @Tags         menu
// @Security     Bearer
// @Router       /api/businesses/{id}/menu/categories/{categoryId} [delete]
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	catID, ok := paramID(c, "categoryId")
	if !ok {
		return badParam(c, "categoryId")
	}
	if err := h.uc.DeleteCategory(c.UserContext(), GetSession(c), id, catID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSubcategory godoc
// @Summary      Crear subcategoría del menú
// @Tags         menu
// @Security     Bearer
// @Router       /api/businesses/{id}/menu/subcategories [post]
func (h *MenuHandler) CreateSubcategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.MenuSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateSubcategory(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteSubcategory godoc
// @Summary      Eliminar subcategoría del menú
// @Tags         menu
// @Security     Bearer
// @Router       /api/businesses/{id}/menu/subcategories/{subcategoryId} [delete]
func (h *MenuHandler) DeleteSubcategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	subID, ok := paramID(c, "subcategoryId")
	if !ok {
		return badParam(c, "subcategoryId")
	}
	if err := h.uc.DeleteSubcategory(c.UserContext(), GetSession(c), id, subID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateItem godoc
// @Summary      Crear ítem del menú
// @Tags         menu
// @Security     Bearer
// @Param        body  body  dto.MenuItemRequest  true  "Ítem"
// @Success      201   {object}  dto.MenuItemResponse
// @Router       /api/businesses/{id}/menu/items [post]
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateItem(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar ítem del menú
// @Tags         menu
// @Security     Bearer
// @Param        body  body  dto.UpdateMenuItemRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.MenuItemResponse
// @Router       /api/businesses/{id}/menu/items/{itemId} [put]
func (h *MenuHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return badParam(c, "itemId")
	}
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateItem(c.UserContext(), GetSession(c), id, itemID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar ítem del menú
// @Tags         menu
// @Security     Bearer
// @Router       /api/businesses/{id}/menu/items/{itemId} [delete]
func (h *MenuHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return badParam(c, "itemId")
	}
	if err := h.uc.DeleteItem(c.UserContext(), GetSession(c), id, itemID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
