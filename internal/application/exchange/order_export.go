package exchange

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/pos"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// OrderExporter genera el archivo pedido_<id>.txt de un pedido completado y
// lo sube al servidor del POS/ERP. El archivo se deja primero en el spool
// local; si la subida termina bien se archiva en el directorio de enviados.
// El exportador no decide sobre el estado del pedido: un fallo de
// transferencia se reporta y el pedido sigue completo (fuego y olvido en el
// caller).
type OrderExporter struct {
	dialer  Dialer
	configs repository.TransferConfigRepository
	spool   string
	sent    string
	timeout time.Duration
	log     *logger.Logger
}

// NewOrderExporter construye el exportador. spool y sent son directorios
// locales (se crean si faltan en el primer uso).
func NewOrderExporter(dialer Dialer, configs repository.TransferConfigRepository, spool, sent string, timeout time.Duration, log *logger.Logger) *OrderExporter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OrderExporter{dialer: dialer, configs: configs, spool: spool, sent: sent, timeout: timeout, log: log}
}

// Export materializa y sube el archivo del pedido. Devuelve error ante
// cualquier fallo estructural; el caller decide si lo propaga o solo lo
// registra.
func (e *OrderExporter) Export(ctx context.Context, order *entity.Order) error {
	refs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		if item.ProductRef != "" {
			refs = append(refs, item.ProductRef)
		}
	}
	content := BuildOrderFile(refs)
	name := fmt.Sprintf("pedido_%d.txt", order.ID)

	if err := os.MkdirAll(e.spool, 0o755); err != nil {
		return fmt.Errorf("crear spool: %w", err)
	}
	local := filepath.Join(e.spool, name)
	payload := pos.ToLatin1(content)
	if err := os.WriteFile(local, payload, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", local, err)
	}

	cfg, err := e.configs.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("leer configuración activa: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("%w: no hay configuración activa", domain.ErrConfigIncomplete)
	}
	if field := cfg.MissingField(); field != "" {
		return fmt.Errorf("%w: falta %s", domain.ErrConfigIncomplete, field)
	}

	if err := e.upload(cfg, name, payload); err != nil {
		return err
	}

	// Subida confirmada: archivar el staging en enviados.
	if err := os.MkdirAll(e.sent, 0o755); err != nil {
		return fmt.Errorf("crear directorio de enviados: %w", err)
	}
	if err := os.Rename(local, filepath.Join(e.sent, name)); err != nil {
		return fmt.Errorf("archivar %s: %w", name, err)
	}

	e.log.Info().Str("archivo", name).Int("registros", len(refs)).Msg("pedido exportado y archivado")
	return nil
}

// upload abre la sesión, navega si corresponde y sube el payload. La sesión
// se cierra en todo camino de salida.
func (e *OrderExporter) upload(cfg *entity.TransferConfig, name string, payload []byte) error {
	sess, err := e.dialer.Dial(cfg.Host, cfg.Port, cfg.Username, cfg.Password, e.timeout)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	if cfg.RemoteDir != "" {
		if err := sess.ChangeDir(cfg.RemoteDir); err != nil {
			return err
		}
	}
	return sess.Upload(name, payload)
}
