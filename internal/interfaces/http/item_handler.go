package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-movil/internal/application/dto"
	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// ItemHandler maneja las peticiones HTTP de artículos.
type ItemHandler struct {
	store *inventory.Store
}

// NewItemHandler construye el handler.
func NewItemHandler(store *inventory.Store) *ItemHandler {
	return &ItemHandler{store: store}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if in.PurchasePrice.IsNegative() || negative(in.SellingPrice) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los precios no pueden ser negativos"})
	}

	id := h.store.AddItem(inventory.ItemInput{
		Category:      entity.ItemCategory(in.Category),
		Description:   in.Description,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		ImageURI:      in.ImageURI,
		Status:        entity.ItemStatus(in.Status),
		Quantity:      in.Quantity,
	})
	item, _ := h.store.ItemByID(id)
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemResponse(item))
}

// List godoc
// @Summary      Listar artículos (con filtros y búsqueda)
// @Description  q busca por descripción, código o categoría sin distinguir
//
//	mayúsculas; status y category filtran; sin parámetros devuelve todo.
//
// @Tags         items
// @Produce      json
// @Param        q         query  string  false  "Búsqueda por substring"
// @Param        status    query  string  false  "in | out"
// @Param        category  query  string  false  "Categoría fija"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	// La consulta vacía se trata aquí (el almacén no la especial-casea):
	// q vacío equivale a no buscar.
	if q := c.Query("q"); q != "" {
		return c.JSON(dto.ToItemListResponse(h.store.SearchItems(q)))
	}
	if status := c.Query("status"); status != "" {
		if status != string(entity.StatusIn) && status != string(entity.StatusOut) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser in u out"})
		}
		return c.JSON(dto.ToItemListResponse(h.store.ItemsByStatus(entity.ItemStatus(status))))
	}
	if category := c.Query("category"); category != "" {
		if !entity.ItemCategory(category).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría desconocida"})
		}
		return c.JSON(dto.ToItemListResponse(h.store.ItemsByCategory(entity.ItemCategory(category))))
	}
	return c.JSON(dto.ToItemListResponse(h.store.Items()))
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, ok := h.store.ItemByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(dto.ToItemResponse(item))
}

// GetByCode godoc
// @Summary      Obtener artículo por código legible
// @Tags         items
// @Produce      json
// @Param        code  path  string  true  "Código del artículo (ITM-...)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/code/{code} [get]
func (h *ItemHandler) GetByCode(c *fiber.Ctx) error {
	item, ok := h.store.ItemByCode(c.Params("code"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(dto.ToItemResponse(item))
}

// Update godoc
// @Summary      Actualizar artículo (campos parciales)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.store.ItemByID(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if negative(in.PurchasePrice, in.SellingPrice) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los precios no pueden ser negativos"})
	}

	upd := inventory.ItemUpdate{
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		ImageURI:      in.ImageURI,
		Description:   in.Description,
		Quantity:      in.Quantity,
	}
	if in.Category != nil {
		cat := entity.ItemCategory(*in.Category)
		upd.Category = &cat
	}
	if in.Status != nil {
		st := entity.ItemStatus(*in.Status)
		upd.Status = &st
	}
	h.store.UpdateItem(id, upd)

	item, _ := h.store.ItemByID(id)
	return c.JSON(dto.ToItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar artículo
// @Description  No borra en cascada: transacciones y facturas quedan como historial.
// @Tags         items
// @Param        id  path  string  true  "ID del artículo"
// @Success      204
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteItem(c.Params("id")) // no-op silencioso si no existe
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStock godoc
// @Summary      Ajuste directo de stock
// @Description  Corrección fuera del flujo de transacciones: no genera movimiento ni factura.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateStockRequest  true  "quantity, is_addition"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [patch]
func (h *ItemHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.store.ItemByID(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	h.store.UpdateStock(id, in.Quantity, in.IsAddition)
	item, _ := h.store.ItemByID(id)
	return c.JSON(dto.ToItemResponse(item))
}
