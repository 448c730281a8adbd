package exchange_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/pos"
)

func testOrder() *entity.Order {
	ref1 := pos.EncodeProduct(pos.ProductRecord{ID: 1, Name: "Castanha", Unit: "kg"})
	ref2 := pos.EncodeProduct(pos.ProductRecord{ID: 2, Name: "Açaí", Unit: "l"})
	return &entity.Order{
		ID:       9,
		Complete: true,
		Items: []entity.OrderItem{
			{ProductID: 1, Quantity: 2, ProductRef: ref1},
			{ProductID: 2, Quantity: 1, ProductRef: ref2},
		},
	}
}

func newExporter(t *testing.T, dialer *fakeDialer) (*exchange.OrderExporter, string, string, *memConfigRepo) {
	t.Helper()
	spool := filepath.Join(t.TempDir(), "pedidos")
	sent := filepath.Join(spool, "enviados")
	configs := newMemConfigRepo()
	require.NoError(t, configs.Save(context.Background(), activeConfig()))
	return exchange.NewOrderExporter(dialer, configs, spool, sent, 5*time.Second, testLogger()), spool, sent, configs
}

func TestExport_SubeYArchivaElPedido(t *testing.T) {
	sess := newFakeSession()
	e, spool, sent, _ := newExporter(t, &fakeDialer{sess: sess})

	order := testOrder()
	require.NoError(t, e.Export(context.Background(), order))

	// El remoto recibió el archivo con los registros separados por línea en blanco.
	payload, ok := sess.uploads["pedido_9.txt"]
	require.True(t, ok)
	want := exchange.BuildOrderFile([]string{order.Items[0].ProductRef, order.Items[1].ProductRef})
	assert.Equal(t, want, pos.FromLatin1(payload))

	// El staging se movió a enviados.
	_, err := os.Stat(filepath.Join(sent, "pedido_9.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(spool, "pedido_9.txt"))
	assert.True(t, os.IsNotExist(err), "el staging no debe quedar en el spool tras el envío")

	assert.Equal(t, 1, sess.closes)
}

func TestExport_NavegaAlDirectorioConfigurado(t *testing.T) {
	sess := newFakeSession()
	e, _, _, configs := newExporter(t, &fakeDialer{sess: sess})
	cfg, _ := configs.GetActive(context.Background())
	cfg.RemoteDir = "/destino"
	require.NoError(t, configs.Save(context.Background(), cfg))

	require.NoError(t, e.Export(context.Background(), testOrder()))
	assert.Equal(t, "/destino", sess.dir)
}

func TestExport_FalloDeSubidaConservaElStaging(t *testing.T) {
	sess := newFakeSession()
	sess.uploadErr = domain.ErrTransfer
	e, spool, sent, _ := newExporter(t, &fakeDialer{sess: sess})

	err := e.Export(context.Background(), testOrder())
	require.ErrorIs(t, err, domain.ErrTransfer)

	// Sin subida confirmada no se archiva: el archivo queda en el spool.
	_, statErr := os.Stat(filepath.Join(spool, "pedido_9.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(sent, "pedido_9.txt"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Equal(t, 1, sess.closes, "la sesión se cierra también en el camino de error")
}

func TestExport_SinConfiguracionActiva(t *testing.T) {
	e := exchange.NewOrderExporter(&fakeDialer{sess: newFakeSession()}, newMemConfigRepo(),
		filepath.Join(t.TempDir(), "pedidos"), filepath.Join(t.TempDir(), "enviados"),
		5*time.Second, testLogger())

	err := e.Export(context.Background(), testOrder())
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
}

func TestExport_ItemsSinRefSeOmiten(t *testing.T) {
	sess := newFakeSession()
	e, _, _, _ := newExporter(t, &fakeDialer{sess: sess})

	order := testOrder()
	order.Items[1].ProductRef = ""
	require.NoError(t, e.Export(context.Background(), order))

	assert.Equal(t, order.Items[0].ProductRef, pos.FromLatin1(sess.uploads["pedido_9.txt"]))
}
