// Package ftp adapta el cliente FTP (jlaffaye/ftp) al puerto exchange.Session,
// clasificando los fallos del protocolo sobre los errores de dominio.
package ftp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"strconv"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

var _ exchange.Dialer = (*Dialer)(nil)

// Dialer abre sesiones FTP.
type Dialer struct{}

// NewDialer construye el dialer FTP.
func NewDialer() *Dialer {
	return &Dialer{}
}

// Dial conecta y autentica. Clasifica el fallo: ErrUnresolvableHost si el DNS
// no resuelve, ErrConnectTimeout si se agota el plazo, ErrAuthFailed si el
// servidor rechaza credenciales, ErrConnection para el resto.
func (d *Dialer) Dial(host string, port int, user, password string, timeout time.Duration) (exchange.Session, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(timeout))
	if err != nil {
		return nil, classifyDialError(host, err)
	}
	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		if isProtoError(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	return &session{conn: conn}, nil
}

// session sesión FTP autenticada; una operación por sesión.
type session struct {
	conn   *ftp.ServerConn
	closed bool
}

// ChangeDir navega al directorio remoto.
func (s *session) ChangeDir(path string) error {
	if err := s.conn.ChangeDir(path); err != nil {
		if isProtoError(err) {
			return fmt.Errorf("%w: %q", domain.ErrDirectoryNotFound, path)
		}
		return fmt.Errorf("%w: cwd %q: %v", domain.ErrTransfer, path, err)
	}
	return nil
}

// Upload escribe los bytes bajo el nombre remoto (STOR binario).
func (s *session) Upload(name string, data []byte) error {
	if err := s.conn.Stor(name, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: stor %q: %v", domain.ErrTransfer, name, err)
	}
	return nil
}

// Download trae el archivo remoto completo (RETR binario).
func (s *session) Download(name string) ([]byte, error) {
	resp, err := s.conn.Retr(name)
	if err != nil {
		if isProtoError(err) {
			return nil, fmt.Errorf("%w: %q", domain.ErrRemoteFileNotFound, name)
		}
		return nil, fmt.Errorf("%w: retr %q: %v", domain.ErrTransfer, name, err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: leer %q: %v", domain.ErrTransfer, name, err)
	}
	return data, nil
}

// Close termina la sesión (QUIT). Idempotente.
func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Quit()
}

// classifyDialError asigna el fallo de conexión a la taxonomía de dominio.
func classifyDialError(host string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %q", domain.ErrUnresolvableHost, host)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %q", domain.ErrConnectTimeout, host)
	}
	return fmt.Errorf("%w: %v", domain.ErrConnection, err)
}

// isProtoError indica si el error es una respuesta de error del servidor FTP
// (5xx/4xx), en oposición a un fallo de red local.
func isProtoError(err error) bool {
	var protoErr *textproto.Error
	return errors.As(err, &protoErr)
}
