package exchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/pos"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// Nombres de archivo que publica el POS/ERP en el servidor.
const (
	CategoriesFile = "CATEGORIAS.TXT"
	ProductsFile   = "PRODUTOS.TXT"
)

// ImportSession orquesta el asistente de importación en dos etapas: primero
// categorías, después productos. La etapa 2 exige que la etapa 1 haya corrido
// en el ciclo actual; el flag se marca al iniciar la etapa 1 (antes de
// intentar la conexión) y se limpia cuando la etapa 2 termina sin fallo
// estructural.
type ImportSession struct {
	dialer     Dialer
	categories repository.CategoryRepository
	products   repository.ProductRepository
	timeout    time.Duration
	log        *logger.Logger

	mu             sync.Mutex
	categoriesDone bool
}

// NewImportSession construye el orquestador de importación.
func NewImportSession(dialer Dialer, categories repository.CategoryRepository, products repository.ProductRepository, timeout time.Duration, log *logger.Logger) *ImportSession {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ImportSession{
		dialer:     dialer,
		categories: categories,
		products:   products,
		timeout:    timeout,
		log:        log,
	}
}

// RunCategoryImport ejecuta la etapa 1: baja CATEGORIAS.TXT y hace upsert de
// cada registro. Un fallo estructural (conexión, directorio, archivo ausente)
// aborta la operación entera; los errores por línea quedan en el Outcome.
func (s *ImportSession) RunCategoryImport(ctx context.Context, cfg *entity.TransferConfig) (Outcome, error) {
	s.mu.Lock()
	s.categoriesDone = true
	s.mu.Unlock()

	blob, err := s.fetch(cfg, CategoriesFile)
	if err != nil {
		return Outcome{}, err
	}

	out := ParseBatch(blob, pos.CategoryMinLen, func(line string) (bool, error) {
		rec, err := pos.DecodeCategory(line)
		if err != nil {
			return false, err
		}
		return s.categories.Upsert(ctx, &entity.Category{ID: rec.ID, Name: rec.Name})
	})

	s.log.Info().
		Int("creadas", out.Created).
		Int("actualizadas", out.Updated).
		Int("errores", len(out.Errors)).
		Msg("importación de categorías terminada")
	return out, nil
}

// RunProductImport ejecuta la etapa 2: baja PRODUTOS.TXT (variante de 207
// caracteres, sin categoría) y hace upsert de cada producto con su registro
// cacheado regenerado. Falla con ErrStagePending si la etapa 1 no corrió en
// este ciclo; al terminar sin fallo estructural limpia el flag para exigir un
// ciclo nuevo.
func (s *ImportSession) RunProductImport(ctx context.Context, cfg *entity.TransferConfig) (Outcome, error) {
	s.mu.Lock()
	done := s.categoriesDone
	s.mu.Unlock()
	if !done {
		return Outcome{}, domain.ErrStagePending
	}

	blob, err := s.fetch(cfg, ProductsFile)
	if err != nil {
		return Outcome{}, err
	}

	out := ParseBatch(blob, pos.ProductImportLen, func(line string) (bool, error) {
		rec, err := pos.DecodeProduct(line)
		if err != nil {
			return false, err
		}
		return s.products.Upsert(ctx, productFromRecord(rec))
	})

	s.mu.Lock()
	s.categoriesDone = false
	s.mu.Unlock()

	s.log.Info().
		Int("creados", out.Created).
		Int("actualizados", out.Updated).
		Int("errores", len(out.Errors)).
		Msg("importación de productos terminada")
	return out, nil
}

// fetch valida la configuración, abre la sesión, navega si corresponde y baja
// el archivo decodificado desde Latin-1. La sesión se cierra en todo camino de
// salida y siempre antes de procesar el contenido.
func (s *ImportSession) fetch(cfg *entity.TransferConfig, name string) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("%w: no hay configuración activa", domain.ErrConfigIncomplete)
	}
	if field := cfg.MissingField(); field != "" {
		return "", fmt.Errorf("%w: falta %s", domain.ErrConfigIncomplete, field)
	}

	sess, err := s.dialer.Dial(cfg.Host, cfg.Port, cfg.Username, cfg.Password, s.timeout)
	if err != nil {
		return "", err
	}
	closed := false
	defer func() {
		if !closed {
			_ = sess.Close()
		}
	}()

	if cfg.RemoteDir != "" {
		if err := sess.ChangeDir(cfg.RemoteDir); err != nil {
			return "", err
		}
	}

	raw, err := sess.Download(name)
	if err != nil {
		return "", err
	}

	closed = true
	if err := sess.Close(); err != nil {
		s.log.Warn().Err(err).Msg("cierre de sesión con error")
	}
	return pos.FromLatin1(raw), nil
}

// productFromRecord materializa la entidad desde el registro de importación y
// regenera el Ref cacheado (forma completa de 217, categoría en ceros).
func productFromRecord(rec pos.ProductRecord) *entity.Product {
	return &entity.Product{
		ID:           rec.ID,
		Name:         rec.Name,
		Quantity:     rec.Stock,
		Price:        rec.Price,
		UnitMeasure:  rec.Unit,
		MeasureValue: rec.MeasureValue,
		CategoryID:   rec.CategoryID,
		Ref:          pos.EncodeProduct(rec),
	}
}
