package pos

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Los archivos de intercambio con el POS viajan en ISO-8859-1 (un byte por
// carácter). Escribirlos o leerlos como UTF-8 rompería los cortes
// posicionales en cuanto aparezca un carácter acentuado.

// ToLatin1 codifica el texto a bytes ISO-8859-1, sustituyendo los caracteres
// sin representación en el charset.
func ToLatin1(s string) []byte {
	b, _ := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(s))
	return b
}

// FromLatin1 decodifica bytes ISO-8859-1 a string. Nunca falla: todo byte
// tiene punto de código asignado en Latin-1.
func FromLatin1(b []byte) string {
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out)
}

// Sanitize normaliza el texto al repertorio Latin-1 (ida y vuelta por el
// charset), de modo que cada carácter del registro ocupe exactamente un byte
// en el archivo.
func Sanitize(s string) string {
	return FromLatin1(ToLatin1(s))
}
