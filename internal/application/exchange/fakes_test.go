package exchange_test

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: sesión de transferencia, dialer y repos en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

type fakeSession struct {
	files       map[string][]byte // archivos remotos disponibles
	uploads     map[string][]byte // lo que recibió vía Upload
	chdirErr    error
	downloadErr error
	uploadErr   error
	dir         string
	closes      int
}

func newFakeSession() *fakeSession {
	return &fakeSession{files: map[string][]byte{}, uploads: map[string][]byte{}}
}

func (s *fakeSession) ChangeDir(path string) error {
	if s.chdirErr != nil {
		return s.chdirErr
	}
	s.dir = path
	return nil
}

func (s *fakeSession) Upload(name string, data []byte) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads[name] = append([]byte(nil), data...)
	return nil
}

func (s *fakeSession) Download(name string) ([]byte, error) {
	if s.downloadErr != nil {
		return nil, s.downloadErr
	}
	data, ok := s.files[name]
	if !ok {
		return nil, domain.ErrRemoteFileNotFound
	}
	return data, nil
}

func (s *fakeSession) Close() error {
	s.closes++
	return nil
}

type fakeDialer struct {
	sess    *fakeSession
	dialErr error
	dials   int
}

func (d *fakeDialer) Dial(host string, port int, user, password string, timeout time.Duration) (exchange.Session, error) {
	d.dials++
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.sess, nil
}

type memCategoryRepo struct {
	byID map[int64]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: map[int64]*entity.Category{}}
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	return r.byID[id], nil
}

func (r *memCategoryRepo) Upsert(_ context.Context, c *entity.Category) (bool, error) {
	_, exists := r.byID[c.ID]
	r.byID[c.ID] = c
	return !exists, nil
}

func (r *memCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type memProductRepo struct {
	byID map[int64]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[int64]*entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) Upsert(_ context.Context, p *entity.Product) (bool, error) {
	_, exists := r.byID[p.ID]
	r.byID[p.ID] = p
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
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
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
	return r.byID[id], nil
}

func (r *memConfigRepo) GetActive(_ context.Context) (*entity.TransferConfig, error) {
	for _, c := range r.byID {
		if c.Active {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memConfigRepo) DeactivateAll(_ context.Context) error {
	for _, c := range r.byID {
		c.Active = false
	}
	return nil
}

func (r *memConfigRepo) List(_ context.Context) ([]*entity.TransferConfig, error) {
	out := make([]*entity.TransferConfig, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memConfigRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func activeConfig() *entity.TransferConfig {
	return &entity.TransferConfig{
		ID:       1,
		Name:     "Servidor principal",
		Host:     "ftp.ejemplo.com",
		Port:     21,
		Username: "tienda",
		Password: "secreto",
		Active:   true,
	}
}
