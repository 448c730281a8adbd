package entity

import (
	"strings"
	"time"
)

// TransferConfig configuración del servidor FTP/SFTP para el intercambio de
// archivos con el POS/ERP. La administra un operador desde el dashboard; como
// máximo una configuración está activa a la vez (último guardado gana).
type TransferConfig struct {
	ID        int64
	Name      string
	Host      string
	Port      int // 21 por defecto
	Username  string
	Password  string
	RemoteDir string // vacío = raíz del servidor
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MissingField devuelve el nombre del primer campo obligatorio vacío, o ""
// si la configuración alcanza para intentar una conexión.
func (c *TransferConfig) MissingField() string {
	if strings.TrimSpace(c.Host) == "" {
		return "host"
	}
	if strings.TrimSpace(c.Username) == "" {
		return "usuario"
	}
	return ""
}
