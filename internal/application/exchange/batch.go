package exchange

import (
	"fmt"
	"strings"
)

// LineError error de una línea del lote (numeración 1-based).
type LineError struct {
	Line    int
	Message string
}

func (e LineError) String() string {
	return fmt.Sprintf("Línea %d: %s", e.Line, e.Message)
}

// Outcome resultado agregado de procesar un lote. Errors conserva todos los
// errores; el recorte a los primeros 10 para la respuesta HTTP lo hace el DTO.
type Outcome struct {
	Created int
	Updated int
	Errors  []LineError
}

// BuildOrderFile arma el contenido del archivo de pedido: un registro por
// línea con una línea en blanco entre registros consecutivos, sin línea en
// blanco después del último.
func BuildOrderFile(refs []string) string {
	return strings.Join(refs, "\n\n")
}

// ParseBatch recorre un lote línea por línea: separa por '\n', limpia '\r' y
// espacios, salta líneas vacías y valida el ancho mínimo antes de delegar en
// apply (decodificación + upsert). Un error de línea se registra y se sigue
// con la siguiente; el lote nunca se aborta por una línea mala.
func ParseBatch(blob string, minWidth int, apply func(line string) (created bool, err error)) Outcome {
	var out Outcome
	for idx, raw := range strings.Split(blob, "\n") {
		line := strings.TrimSpace(strings.ReplaceAll(raw, "\r", ""))
		if line == "" {
			continue
		}
		n := idx + 1
		if width := len([]rune(line)); width < minWidth {
			out.Errors = append(out.Errors, LineError{
				Line:    n,
				Message: fmt.Sprintf("tamaño inválido (%d caracteres, se esperaban al menos %d)", width, minWidth),
			})
			continue
		}
		created, err := apply(line)
		if err != nil {
			out.Errors = append(out.Errors, LineError{Line: n, Message: err.Error()})
			continue
		}
		if created {
			out.Created++
		} else {
			out.Updated++
		}
	}
	return out
}
