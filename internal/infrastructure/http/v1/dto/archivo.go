package dto

import (
	"time"

	"juridicol/internal/domain/archivo"
)

// ArchivoResponse is the attachment metadata returned by the API. The object
// key stays internal.
type ArchivoResponse struct {
	ID          int64     `json:"id"`
	ConsultaID  int64     `json:"consultaId"`
	Nombre      string    `json:"nombre"`
	ContentType string    `json:"contentType"`
	Tamano      int64     `json:"tamano"`
	FechaCarga  time.Time `json:"fechaCarga"`
}

// FromArchivo maps a domain attachment to its response.
func FromArchivo(a archivo.Archivo) ArchivoResponse {
	return ArchivoResponse{
		ID:          a.ID,
		ConsultaID:  a.ConsultaID,
		Nombre:      a.Nombre,
		ContentType: a.ContentType,
		Tamano:      a.Tamano,
		FechaCarga:  a.FechaCarga,
	}
}
