// Package sftp adapta el cliente SFTP (pkg/sftp sobre x/crypto/ssh) al puerto
// exchange.Session. Es la variante segura del intercambio; se selecciona con
// EXCHANGE_PROTOCOL=sftp.
package sftp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

var _ exchange.Dialer = (*Dialer)(nil)

// Dialer abre sesiones SFTP con autenticación por contraseña.
type Dialer struct{}

// NewDialer construye el dialer SFTP.
func NewDialer() *Dialer {
	return &Dialer{}
}

// Dial conecta por SSH y abre el subsistema SFTP, clasificando los fallos
// sobre los errores de dominio.
func (d *Dialer) Dial(host string, port int, user, password string, timeout time.Duration) (exchange.Session, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	sshCfg := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.Password(password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}
	conn, err := ssh.Dial("tcp", addr, sshCfg)
	if err != nil {
		return nil, classifyDialError(host, err)
	}
	client, err := sftp.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: abrir subsistema sftp: %v", domain.ErrConnection, err)
	}
	return &session{conn: conn, client: client}, nil
}

// session sesión SFTP autenticada. SFTP no tiene directorio de trabajo: el
// cambio de directorio se emula guardando una base remota que prefija los
// nombres de archivo.
type session struct {
	conn   *ssh.Client
	client *sftp.Client
	base   string
	closed bool
}

// ChangeDir verifica que el directorio remoto exista y lo fija como base.
func (s *session) ChangeDir(dir string) error {
	info, err := s.client.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", domain.ErrDirectoryNotFound, dir)
	}
	s.base = dir
	return nil
}

// Upload escribe los bytes bajo el nombre remoto.
func (s *session) Upload(name string, data []byte) error {
	f, err := s.client.Create(s.join(name))
	if err != nil {
		return fmt.Errorf("%w: crear %q: %v", domain.ErrTransfer, name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: escribir %q: %v", domain.ErrTransfer, name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cerrar %q: %v", domain.ErrTransfer, name, err)
	}
	return nil
}

// Download trae el archivo remoto completo.
func (s *session) Download(name string) ([]byte, error) {
	f, err := s.client.Open(s.join(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", domain.ErrRemoteFileNotFound, name)
		}
		return nil, fmt.Errorf("%w: abrir %q: %v", domain.ErrTransfer, name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: leer %q: %v", domain.ErrTransfer, name, err)
	}
	return data, nil
}

// Close cierra el subsistema SFTP y la conexión SSH. Idempotente.
func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.client.Close()
	if cErr := s.conn.Close(); err == nil {
		err = cErr
	}
	return err
}

func (s *session) join(name string) string {
	if s.base == "" {
		return name
	}
	return path.Join(s.base, name)
}

// classifyDialError asigna el fallo de conexión SSH a la taxonomía de dominio.
func classifyDialError(host string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %q", domain.ErrUnresolvableHost, host)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %q", domain.ErrConnectTimeout, host)
	}
	if strings.Contains(err.Error(), "unable to authenticate") {
		return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrConnection, err)
}
