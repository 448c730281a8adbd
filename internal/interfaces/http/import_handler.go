package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ImportHandler maneja el asistente de importación en dos etapas (solo admin).
// La etapa de categorías debe correr antes que la de productos en cada ciclo.
type ImportHandler struct {
	session *exchange.ImportSession
	configs repository.TransferConfigRepository
}

// NewImportHandler construye el handler.
func NewImportHandler(session *exchange.ImportSession, configs repository.TransferConfigRepository) *ImportHandler {
	return &ImportHandler{session: session, configs: configs}
}

// Categories godoc
// @Summary      Etapa 1: importar categorías desde el POS/ERP
// @Description  Baja CATEGORIAS.TXT del servidor configurado y hace upsert de cada registro. Los errores por línea no abortan el lote.
// @Tags         import
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/import/categorias [post]
func (h *ImportHandler) Categories(c *fiber.Ctx) error {
	cfg, err := h.configs.GetActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.session.RunCategoryImport(c.Context(), cfg)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(dto.ToImportResult(out, "categorías importadas"))
}

// Products godoc
// @Summary      Etapa 2: importar productos desde el POS/ERP
// @Description  Baja PRODUTOS.TXT y hace upsert de cada producto con su registro cacheado regenerado. Exige que la etapa de categorías haya corrido en este ciclo.
// @Tags         import
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/import/productos [post]
func (h *ImportHandler) Products(c *fiber.Ctx) error {
	cfg, err := h.configs.GetActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.session.RunProductImport(c.Context(), cfg)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(dto.ToImportResult(out, "productos importados"))
}

// transferError mapea la taxonomía de errores del intercambio a HTTP. Los
// fallos de configuración son culpa del operador (400); el orden de etapas es
// un conflicto (409); lo demás es el servidor remoto (502).
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrConfigIncomplete):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIG_INCOMPLETE", Message: err.Error()})
	case errors.Is(err, domain.ErrStagePending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STAGE_PENDING", Message: err.Error()})
	case errors.Is(err, domain.ErrUnresolvableHost),
		errors.Is(err, domain.ErrConnectTimeout),
		errors.Is(err, domain.ErrConnection),
		errors.Is(err, domain.ErrAuthFailed),
		errors.Is(err, domain.ErrDirectoryNotFound),
		errors.Is(err, domain.ErrRemoteFileNotFound),
		errors.Is(err, domain.ErrTransfer):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "TRANSFER", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
