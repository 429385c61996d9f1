package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP para Stock y sus posiciones anidadas.
type StockHandler struct {
	uc       *usecase.StockUseCase
	reportUC *usecase.StockReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, reportUC *usecase.StockReportUseCase) *StockHandler {
	return &StockHandler{uc: uc, reportUC: reportUC}
}

// stockError mapea errores de dominio a respuestas HTTP: not-found -> 404,
// producto inexistente o posición duplicada -> 400 con el mensaje que nombra
// los ids, el resto -> 500.
func stockError(c *fiber.Ctx, err error) error {
	var missing *domain.ProductMissingError
	var duplicate *domain.DuplicatePositionError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "stock no encontrado"})
	case errors.As(err, &missing), errors.As(err, &duplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}

// Create godoc
// @Summary      Crear stock con posiciones (idempotente sobre address)
// @Description  Devuelve 201 si el stock fue creado y 200 si ya existía uno con la misma dirección.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "Stock con posiciones"
// @Success      201   {object}  dto.StockResponse
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if errs := in.Validate(); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "validación fallida", Fields: errs})
	}
	out, created, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return stockError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// List godoc
// @Summary      Listar stocks
// @Description  products=<id> filtra por stocks con una posición de ese producto; si no, search=<texto> busca en title/description de los productos de las posiciones.
// @Tags         stocks
// @Produce      json
// @Param        products  query  string  false  "ID de producto"
// @Param        search    query  string  false  "Texto libre"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("products"), c.Query("search"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener stock por ID (con todas sus posiciones)
// @Tags         stocks
// @Produce      json
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "stock no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar stock (PUT): address + sincronización de posiciones por clave
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del stock"
// @Param        body  body  dto.UpdateStockRequest  true  "Stock con posiciones"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if errs := in.Validate(); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "validación fallida", Fields: errs})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar stock parcialmente (PATCH)
// @Description  address opcional; las posiciones recibidas se sincronizan por clave (stock, producto). Cada posición debe traer product, quantity y price explícitos.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del stock"
// @Param        body  body  dto.PatchStockRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [patch]
func (h *StockHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if errs := in.Validate(); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "validación fallida", Fields: errs})
	}
	out, err := h.uc.Patch(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar stock (las posiciones caen en cascada)
// @Tags         stocks
// @Param        id  path  string  true  "ID del stock"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return stockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF de inventario del stock
// @Tags         stocks
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del stock"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id}/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
