package dto

import "github.com/jhoicas/Tienda-api/internal/application/exchange"

// maxReportedErrors acota la lista de errores en la respuesta HTTP; el total
// real va aparte en ErrorCount.
const maxReportedErrors = 10

// ImportResultResponse resultado de una etapa de importación.
type ImportResultResponse struct {
	Success    bool     `json:"success"`
	Created    int      `json:"created"`
	Updated    int      `json:"updated"`
	Errors     []string `json:"errors,omitempty"` // primeros 10
	ErrorCount int      `json:"error_count"`
	Message    string   `json:"message"`
}

// ToImportResult arma la respuesta desde el Outcome del lote, recortando la
// lista de errores a los primeros 10.
func ToImportResult(out exchange.Outcome, message string) ImportResultResponse {
	errs := out.Errors
	if len(errs) > maxReportedErrors {
		errs = errs[:maxReportedErrors]
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}
	return ImportResultResponse{
		Success:    true,
		Created:    out.Created,
		Updated:    out.Updated,
		Errors:     msgs,
		ErrorCount: len(out.Errors),
		Message:    message,
	}
}
