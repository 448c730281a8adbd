package exchange_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
)

func TestBuildOrderFile_SeparadorEntreRegistros(t *testing.T) {
	r1 := strings.Repeat("1", 217)
	r2 := strings.Repeat("2", 217)

	got := exchange.BuildOrderFile([]string{r1, r2})

	// Línea en blanco entre registros, ninguna después del último.
	assert.Equal(t, r1+"\n"+"\n"+r2, got)
}

func TestBuildOrderFile_UnSoloRegistroSinSeparador(t *testing.T) {
	r1 := strings.Repeat("1", 217)
	assert.Equal(t, r1, exchange.BuildOrderFile([]string{r1}))
}

func TestBuildOrderFile_Vacio(t *testing.T) {
	assert.Equal(t, "", exchange.BuildOrderFile(nil))
}

func TestParseBatch_LineasValidasYUnaCorta(t *testing.T) {
	blob := strings.Join([]string{
		"000000001AAA",
		"000000002BBB",
		"corta", // menos de 9 caracteres
		"000000003CCC",
	}, "\n")

	seen := map[string]bool{}
	out := exchange.ParseBatch(blob, 9, func(line string) (bool, error) {
		created := !seen[line]
		seen[line] = true
		return created, nil
	})

	assert.Equal(t, 3, out.Created)
	assert.Equal(t, 0, out.Updated)
	require.Len(t, out.Errors, 1, "la línea corta no aborta el lote")
	assert.Equal(t, 3, out.Errors[0].Line)
	assert.Contains(t, out.Errors[0].Message, "tamaño inválido")
}

func TestParseBatch_IgnoraLineasVaciasYCRLF(t *testing.T) {
	blob := "000000001AAA\r\n\r\n   \n000000002BBB\r\n"

	var lines []string
	out := exchange.ParseBatch(blob, 9, func(line string) (bool, error) {
		lines = append(lines, line)
		return true, nil
	})

	assert.Equal(t, []string{"000000001AAA", "000000002BBB"}, lines)
	assert.Empty(t, out.Errors)
}

func TestParseBatch_ErrorDeLineaNoAborta(t *testing.T) {
	blob := "000000001AAA\n000000002BAD\n000000003CCC"

	out := exchange.ParseBatch(blob, 9, func(line string) (bool, error) {
		if strings.HasSuffix(line, "BAD") {
			return false, errors.New("registro corrupto")
		}
		return false, nil
	})

	assert.Equal(t, 2, out.Updated)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 2, out.Errors[0].Line)
	assert.Equal(t, "registro corrupto", out.Errors[0].Message)
}

func TestParseBatch_NumeracionDeLineas1Based(t *testing.T) {
	// La numeración cuenta también las líneas vacías, como el archivo original.
	blob := "\n\ncorta"
	out := exchange.ParseBatch(blob, 9, func(string) (bool, error) { return true, nil })

	require.Len(t, out.Errors, 1)
	assert.Equal(t, 3, out.Errors[0].Line)
}

func TestParseBatch_AcumulaTodosLosErrores(t *testing.T) {
	// Más de 10 errores: el Outcome conserva todos; el recorte es del DTO.
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("x\n")
	}
	out := exchange.ParseBatch(sb.String(), 9, func(string) (bool, error) { return true, nil })
	assert.Len(t, out.Errors, 15)
}
