package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrOrderComplete = errors.New("el pedido ya está completo")
)

// Errores del intercambio de archivos con el POS/ERP. Los fallos estructurales
// (conexión, autenticación, navegación, archivo completo ausente) abortan la
// operación entera; los errores por línea se acumulan en el resultado del lote.
var (
	ErrConfigIncomplete   = errors.New("configuración de transferencia incompleta")
	ErrUnresolvableHost   = errors.New("no se pudo resolver el host")
	ErrConnectTimeout     = errors.New("tiempo agotado al conectar")
	ErrConnection         = errors.New("error de conexión")
	ErrAuthFailed         = errors.New("autenticación rechazada")
	ErrDirectoryNotFound  = errors.New("directorio remoto no encontrado")
	ErrRemoteFileNotFound = errors.New("archivo remoto no encontrado")
	ErrTransfer           = errors.New("error de transferencia")
	ErrStagePending       = errors.New("primero debe importarse el archivo de categorías")
)
