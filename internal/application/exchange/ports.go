package exchange

import "time"

// Session es una conexión ya autenticada con el servidor de archivos del
// POS/ERP. Una sesión atiende exactamente una operación; el caller debe
// cerrar en todo camino de salida, incluso tras un fallo intermedio.
type Session interface {
	// ChangeDir navega al directorio remoto. domain.ErrDirectoryNotFound si no existe.
	ChangeDir(path string) error
	// Upload escribe los bytes bajo el nombre remoto. No toca el filesystem local.
	Upload(name string, data []byte) error
	// Download trae el archivo remoto completo. domain.ErrRemoteFileNotFound si no existe.
	Download(name string) ([]byte, error)
	// Close libera la sesión; es idempotente.
	Close() error
}

// Dialer abre sesiones contra el servidor: conectar + autenticar en un paso,
// con los fallos clasificados sobre los errores de dominio (ErrUnresolvableHost,
// ErrConnectTimeout, ErrConnection, ErrAuthFailed). Lo implementan los
// adaptadores FTP y SFTP; no se reintenta, un fallo sube de inmediato.
type Dialer interface {
	Dial(host string, port int, user, password string, timeout time.Duration) (Session, error)
}
