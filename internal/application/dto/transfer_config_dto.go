package dto

import "time"

// SaveTransferConfigRequest entrada para crear o editar una configuración de
// transferencia. Activarla desactiva cualquier otra configuración activa.
type SaveTransferConfigRequest struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	Host      string `json:"host" validate:"required,max=255"`
	Port      int    `json:"port" validate:"omitempty,min=1,max=65535"`
	Username  string `json:"username" validate:"required,max=100"`
	Password  string `json:"password" validate:"omitempty,max=255"`
	RemoteDir string `json:"remote_dir" validate:"omitempty,max=255"`
	Active    bool   `json:"active"`
}

// TransferConfigResponse salida de una configuración (sin password).
type TransferConfigResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	Username  string    `json:"username"`
	RemoteDir string    `json:"remote_dir,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
