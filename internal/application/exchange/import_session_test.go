package exchange_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/pos"
)

func newSession(d *fakeDialer, cats *memCategoryRepo, prods *memProductRepo) *exchange.ImportSession {
	return exchange.NewImportSession(d, cats, prods, 5*time.Second, testLogger())
}

func categoriesBlob(names map[int64]string) []byte {
	var lines []string
	for id, name := range names {
		lines = append(lines, pos.EncodeCategory(pos.CategoryRecord{ID: id, Name: name}))
	}
	return pos.ToLatin1(strings.Join(lines, "\r\n") + "\r\n")
}

func TestRunCategoryImport_CreaYActualiza(t *testing.T) {
	sess := newFakeSession()
	sess.files[exchange.CategoriesFile] = categoriesBlob(map[int64]string{1: "CASTANHAS"})
	dialer := &fakeDialer{sess: sess}
	cats := newMemCategoryRepo()
	s := newSession(dialer, cats, newMemProductRepo())

	out, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 0, out.Updated)
	assert.Empty(t, out.Errors)

	got, _ := cats.GetByID(context.Background(), 1)
	require.NotNil(t, got)
	assert.Equal(t, "CASTANHAS", got.Name)

	// Segunda corrida: mismo registro, ahora cuenta como actualización.
	out, err = s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Created)
	assert.Equal(t, 1, out.Updated)
}

func TestRunCategoryImport_LineaMalaNoAbortaElLote(t *testing.T) {
	good1 := pos.EncodeCategory(pos.CategoryRecord{ID: 1, Name: "CASTANHAS"})
	good2 := pos.EncodeCategory(pos.CategoryRecord{ID: 2, Name: "TEMPEROS"})
	blob := good1 + "\n" + "corta" + "\n" + good2 + "\n"

	sess := newFakeSession()
	sess.files[exchange.CategoriesFile] = pos.ToLatin1(blob)
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), newMemProductRepo())

	out, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Created)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 2, out.Errors[0].Line)
}

func TestRunCategoryImport_ConfigIncompleta(t *testing.T) {
	dialer := &fakeDialer{sess: newFakeSession()}
	s := newSession(dialer, newMemCategoryRepo(), newMemProductRepo())

	cfg := activeConfig()
	cfg.Host = "   "
	_, err := s.RunCategoryImport(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrConfigIncomplete)
	assert.Contains(t, err.Error(), "host")
	assert.Zero(t, dialer.dials, "no debe intentarse la conexión con config incompleta")

	cfg = activeConfig()
	cfg.Username = ""
	_, err = s.RunCategoryImport(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrConfigIncomplete)
	assert.Contains(t, err.Error(), "usuario")
}

func TestRunCategoryImport_HostIrresolubleNoLlegaAlLote(t *testing.T) {
	dialer := &fakeDialer{dialErr: fmt.Errorf("%w: \"noexiste.local\"", domain.ErrUnresolvableHost)}
	cats := newMemCategoryRepo()
	s := newSession(dialer, cats, newMemProductRepo())

	_, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.ErrorIs(t, err, domain.ErrUnresolvableHost)
	assert.Empty(t, cats.byID, "un fallo de conexión nunca llega al procesamiento del lote")
}

func TestRunCategoryImport_CierraSesionTrasFalloDeNavegacion(t *testing.T) {
	sess := newFakeSession()
	sess.chdirErr = domain.ErrDirectoryNotFound
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), newMemProductRepo())

	cfg := activeConfig()
	cfg.RemoteDir = "/carpeta"
	_, err := s.RunCategoryImport(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrDirectoryNotFound)
	assert.Equal(t, 1, sess.closes, "la sesión debe cerrarse aunque la navegación falle")
}

func TestRunCategoryImport_CierraSesionTrasArchivoAusente(t *testing.T) {
	sess := newFakeSession() // sin CATEGORIAS.TXT
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), newMemProductRepo())

	_, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.ErrorIs(t, err, domain.ErrRemoteFileNotFound)
	assert.Equal(t, 1, sess.closes)
}

func TestRunCategoryImport_CierraAntesDeProcesar(t *testing.T) {
	sess := newFakeSession()
	sess.files[exchange.CategoriesFile] = categoriesBlob(map[int64]string{1: "CASTANHAS"})
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), newMemProductRepo())

	_, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, sess.closes, "exactamente un cierre por operación")
}

func TestRunProductImport_ExigeEtapaDeCategorias(t *testing.T) {
	s := newSession(&fakeDialer{sess: newFakeSession()}, newMemCategoryRepo(), newMemProductRepo())

	_, err := s.RunProductImport(context.Background(), activeConfig())
	assert.ErrorIs(t, err, domain.ErrStagePending)
}

func TestRunProductImport_FlujoCompleto(t *testing.T) {
	// PRODUTOS.TXT trae la variante de 207 caracteres, sin categoría.
	full := pos.EncodeProduct(pos.ProductRecord{
		ID:           55,
		Name:         "Açaí com Granola",
		Unit:         "kg",
		Price:        decimal.NewFromFloat(12.50),
		Stock:        -3,
		MeasureValue: decimal.NewFromFloat(0.50),
	})
	imported := string([]rune(full)[:pos.ProductImportLen])

	sess := newFakeSession()
	sess.files[exchange.CategoriesFile] = categoriesBlob(map[int64]string{1: "CONGELADOS"})
	sess.files[exchange.ProductsFile] = pos.ToLatin1(imported + "\r\n")
	prods := newMemProductRepo()
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), prods)

	_, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)

	out, err := s.RunProductImport(context.Background(), activeConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)
	assert.Empty(t, out.Errors)

	p, _ := prods.GetByID(context.Background(), 55)
	require.NotNil(t, p)
	assert.Equal(t, "Açaí com Granola", p.Name)
	assert.Equal(t, int64(-3), p.Quantity)
	assert.Equal(t, "kg", p.UnitMeasure)
	assert.Nil(t, p.CategoryID, "la importación deja la categoría en nil")
	assert.Len(t, []rune(p.Ref), pos.ProductRecordLen, "el Ref cacheado se regenera en forma completa")

	// La etapa 2 exitosa limpia el flag: el ciclo siguiente vuelve a exigir categorías.
	_, err = s.RunProductImport(context.Background(), activeConfig())
	assert.ErrorIs(t, err, domain.ErrStagePending)
}

func TestRunProductImport_FalloEstructuralNoLimpiaElFlag(t *testing.T) {
	sess := newFakeSession()
	sess.files[exchange.CategoriesFile] = categoriesBlob(map[int64]string{1: "CONGELADOS"})
	// sin PRODUTOS.TXT: la etapa 2 falla estructuralmente
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), newMemProductRepo())

	_, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)

	_, err = s.RunProductImport(context.Background(), activeConfig())
	require.ErrorIs(t, err, domain.ErrRemoteFileNotFound)

	// El flag sigue puesto: se puede reintentar la etapa 2 sin repetir la 1.
	sess.files[exchange.ProductsFile] = pos.ToLatin1("")
	out, err := s.RunProductImport(context.Background(), activeConfig())
	require.NoError(t, err)
	assert.Zero(t, out.Created)
}

func TestRunProductImport_LineaCortaQuedaComoError(t *testing.T) {
	sess := newFakeSession()
	sess.files[exchange.CategoriesFile] = categoriesBlob(map[int64]string{1: "CONGELADOS"})
	sess.files[exchange.ProductsFile] = pos.ToLatin1(strings.Repeat("0", 206) + "\n")
	s := newSession(&fakeDialer{sess: sess}, newMemCategoryRepo(), newMemProductRepo())

	_, err := s.RunCategoryImport(context.Background(), activeConfig())
	require.NoError(t, err)

	out, err := s.RunProductImport(context.Background(), activeConfig())
	require.NoError(t, err)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0].Message, "tamaño inválido")
}
