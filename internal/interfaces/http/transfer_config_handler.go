package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// TransferConfigHandler administra las configuraciones FTP/SFTP (solo admin).
type TransferConfigHandler struct {
	uc *usecase.TransferConfigUseCase
}

// NewTransferConfigHandler construye el handler.
func NewTransferConfigHandler(uc *usecase.TransferConfigUseCase) *TransferConfigHandler {
	return &TransferConfigHandler{uc: uc}
}

// Create godoc
// @Summary      Crear configuración de transferencia
// @Description  Activarla desactiva cualquier otra configuración activa.
// @Tags         transfer-configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveTransferConfigRequest  true  "Configuración"
// @Success      201   {object}  dto.TransferConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfer-configs [post]
func (h *TransferConfigHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveTransferConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Host == "" || in.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "host y username son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar configuración de transferencia
// @Description  Password vacío conserva el guardado. Activarla desactiva las demás.
// @Tags         transfer-configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la configuración"
// @Param        body  body  dto.SaveTransferConfigRequest  true  "Configuración"
// @Success      200   {object}  dto.TransferConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfer-configs/{id} [put]
func (h *TransferConfigHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.SaveTransferConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar configuraciones de transferencia
// @Tags         transfer-configs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransferConfigResponse
// @Router       /api/transfer-configs [get]
func (h *TransferConfigHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener configuración por ID
// @Tags         transfer-configs
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la configuración"
// @Success      200  {object}  dto.TransferConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfer-configs/{id} [get]
func (h *TransferConfigHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar configuración de transferencia
// @Tags         transfer-configs
// @Security     Bearer
// @Param        id  path  int  true  "ID de la configuración"
// @Success      204
// @Router       /api/transfer-configs/{id} [delete]
func (h *TransferConfigHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
