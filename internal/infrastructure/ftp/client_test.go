package ftp

import (
	"errors"
	"net"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyDialError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "fallo de resolución DNS",
			err:  &net.DNSError{Err: "no such host", Name: "ftp.noexiste.local", IsNotFound: true},
			want: domain.ErrUnresolvableHost,
		},
		{
			name: "timeout de conexión",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}},
			want: domain.ErrConnectTimeout,
		},
		{
			name: "conexión rechazada",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want: domain.ErrConnection,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyDialError("ftp.noexiste.local", tc.err), tc.want)
		})
	}
}

func TestIsProtoError(t *testing.T) {
	assert.True(t, isProtoError(&textproto.Error{Code: 550, Msg: "File unavailable"}))
	assert.True(t, isProtoError(&textproto.Error{Code: 530, Msg: "Not logged in"}))
	assert.False(t, isProtoError(errors.New("broken pipe")))
}

func TestDial_HostIrresoluble(t *testing.T) {
	// Dirección inventada bajo .invalid (RFC 2606): la resolución debe fallar
	// sin tocar la red de verdad.
	d := NewDialer()
	_, err := d.Dial("ftp.servidor.invalid", 21, "u", "p", 2*time.Second)
	assert.ErrorIs(t, err, domain.ErrUnresolvableHost)
}
