package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/pos"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Cada guardado regenera el
// registro posicional cacheado (Ref) de forma explícita: no hay hooks de
// persistencia, la codificación es parte del caso de uso.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con el ID que asigna el ERP.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := in.UnitMeasure
	if unit == "" {
		unit = "kg"
	}
	if !entity.ValidUnitMeasure(unit) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           in.ID,
		Name:         in.Name,
		Description:  in.Description,
		Quantity:     in.Quantity,
		Price:        in.Price,
		UnitMeasure:  unit,
		MeasureValue: in.MeasureValue,
		CategoryID:   in.CategoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	product.Ref = encodeRef(product)
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto y regenera su Ref.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.UnitMeasure != nil {
		if !entity.ValidUnitMeasure(*in.UnitMeasure) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.MeasureValue != nil {
		product.MeasureValue = *in.MeasureValue
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	product.UpdatedAt = time.Now()
	product.Ref = encodeRef(product)
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// encodeRef regenera el registro posicional de 217 caracteres del producto.
func encodeRef(p *entity.Product) string {
	return pos.EncodeProduct(pos.ProductRecord{
		ID:           p.ID,
		Name:         p.Name,
		Unit:         p.UnitMeasure,
		Price:        p.Price,
		Stock:        p.Quantity,
		MeasureValue: p.MeasureValue,
		CategoryID:   p.CategoryID,
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		UnitMeasure:  p.UnitMeasure,
		MeasureValue: p.MeasureValue,
		CategoryID:   p.CategoryID,
		Ref:          p.Ref,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
