package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TransferConfigUseCase administración de configuraciones de transferencia.
// La invariante "como máximo una activa" se aplica aquí: guardar una
// configuración activa desactiva primero todas las demás. No es transaccional;
// dos guardados concurrentes resuelven en último-gana.
type TransferConfigUseCase struct {
	repo repository.TransferConfigRepository
}

// NewTransferConfigUseCase construye el caso de uso.
func NewTransferConfigUseCase(repo repository.TransferConfigRepository) *TransferConfigUseCase {
	return &TransferConfigUseCase{repo: repo}
}

// Create crea una configuración nueva.
func (uc *TransferConfigUseCase) Create(ctx context.Context, in dto.SaveTransferConfigRequest) (*dto.TransferConfigResponse, error) {
	now := time.Now()
	cfg := &entity.TransferConfig{
		Name:      in.Name,
		Host:      in.Host,
		Port:      portOrDefault(in.Port),
		Username:  in.Username,
		Password:  in.Password,
		RemoteDir: in.RemoteDir,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.save(ctx, cfg); err != nil {
		return nil, err
	}
	return toTransferConfigResponse(cfg), nil
}

// Update edita una configuración existente. Si Password viene vacío se
// conserva el anterior (el formulario no reenvía la contraseña guardada).
func (uc *TransferConfigUseCase) Update(ctx context.Context, id int64, in dto.SaveTransferConfigRequest) (*dto.TransferConfigResponse, error) {
	cfg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	cfg.Name = in.Name
	cfg.Host = in.Host
	cfg.Port = portOrDefault(in.Port)
	cfg.Username = in.Username
	if in.Password != "" {
		cfg.Password = in.Password
	}
	cfg.RemoteDir = in.RemoteDir
	cfg.Active = in.Active
	cfg.UpdatedAt = time.Now()
	if err := uc.save(ctx, cfg); err != nil {
		return nil, err
	}
	return toTransferConfigResponse(cfg), nil
}

// save aplica la regla de exclusividad antes de persistir.
func (uc *TransferConfigUseCase) save(ctx context.Context, cfg *entity.TransferConfig) error {
	if cfg.Active {
		if err := uc.repo.DeactivateAll(ctx); err != nil {
			return err
		}
	}
	return uc.repo.Save(ctx, cfg)
}

// GetByID obtiene una configuración por ID.
func (uc *TransferConfigUseCase) GetByID(ctx context.Context, id int64) (*dto.TransferConfigResponse, error) {
	cfg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	return toTransferConfigResponse(cfg), nil
}

// List lista todas las configuraciones.
func (uc *TransferConfigUseCase) List(ctx context.Context) ([]dto.TransferConfigResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferConfigResponse, 0, len(list))
	for _, cfg := range list {
		items = append(items, *toTransferConfigResponse(cfg))
	}
	return items, nil
}

// Delete elimina una configuración por ID.
func (uc *TransferConfigUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func portOrDefault(port int) int {
	if port <= 0 {
		return 21
	}
	return port
}

func toTransferConfigResponse(cfg *entity.TransferConfig) *dto.TransferConfigResponse {
	return &dto.TransferConfigResponse{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
		RemoteDir: cfg.RemoteDir,
		Active:    cfg.Active,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}
}
