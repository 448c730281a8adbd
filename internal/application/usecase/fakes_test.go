package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: repos en memoria y exportador espía.
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

type memProductRepo struct {
	byID map[int64]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[int64]*entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Upsert(_ context.Context, p *entity.Product) (bool, error) {
	_, exists := r.byID[p.ID]
	cp := *p
	r.byID[p.ID] = &cp
	return !exists, nil
}

func (r *memProductRepo) UpdateStockAndRef(_ context.Context, id int64, quantity int64, ref string) error {
	if p, ok := r.byID[id]; ok {
		p.Quantity = quantity
		p.Ref = ref
	}
	return nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type memOrderRepo struct {
	byID   map[int64]*entity.Order
	nextID int64
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{byID: map[int64]*entity.Order{}, nextID: 1}
}

func (r *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	o.ID = r.nextID
	r.nextID++
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	r.byID[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *memOrderRepo) MarkComplete(_ context.Context, id int64) error {
	if o, ok := r.byID[id]; ok {
		o.Complete = true
	}
	return nil
}

func (r *memOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.byID))
	for _, o := range r.byID {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memConfigRepo struct {
	byID   map[int64]*entity.TransferConfig
	nextID int64
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{byID: map[int64]*entity.TransferConfig{}, nextID: 1}
}

func (r *memConfigRepo) Save(_ context.Context, cfg *entity.TransferConfig) error {
	if cfg.ID == 0 {
		cfg.ID = r.nextID
		r.nextID++
	}
	cp := *cfg
	r.byID[cfg.ID] = &cp
	return nil
}

func (r *memConfigRepo) GetByID(_ context.Context, id int64) (*entity.TransferConfig, error) {
	cfg, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *cfg
	return &cp, nil
}

func (r *memConfigRepo) GetActive(_ context.Context) (*entity.TransferConfig, error) {
	for _, cfg := range r.byID {
		if cfg.Active {
			cp := *cfg
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memConfigRepo) DeactivateAll(_ context.Context) error {
	for _, cfg := range r.byID {
		cfg.Active = false
	}
	return nil
}

func (r *memConfigRepo) List(_ context.Context) ([]*entity.TransferConfig, error) {
	out := make([]*entity.TransferConfig, 0, len(r.byID))
	for _, cfg := range r.byID {
		cp := *cfg
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memConfigRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

// fakeExporter registra los pedidos exportados y puede simular fallos.
type fakeExporter struct {
	exported []*entity.Order
	err      error
}

func (e *fakeExporter) Export(_ context.Context, order *entity.Order) error {
	if e.err != nil {
		return e.err
	}
	e.exported = append(e.exported, order)
	return nil
}
