package services

// Static rol -> recurso -> accion matrix, consulted before the engine
// runs. The authoritative matrix lives in the access-control service; this
// table mirrors the slice of it this backend serves.

const (
	RecursoEstadisticas = "estadisticas"
	RecursoCatalogo     = "catalogo"

	AccionRead = "read"
)

var permisos = map[string]map[string][]string{
	"admin": {
		RecursoEstadisticas: {AccionRead},
		RecursoCatalogo:     {AccionRead},
	},
	"gestor": {
		RecursoEstadisticas: {AccionRead},
		RecursoCatalogo:     {AccionRead},
	},
	"consulta": {
		RecursoEstadisticas: {AccionRead},
		RecursoCatalogo:     {AccionRead},
	},
	// Redactores work the CRUD screens served elsewhere; they get the
	// catalogs but not the reporting surface.
	"redactor": {
		RecursoCatalogo: {AccionRead},
	},
}

// Permitido reports whether the rol may perform the accion on the recurso.
// Unknown roles have no permissions.
func Permitido(rol, recurso, accion string) bool {
	recursos, ok := permisos[rol]
	if !ok {
		return false
	}
	acciones, ok := recursos[recurso]
	if !ok {
		return false
	}
	for _, a := range acciones {
		if a == accion {
			return true
		}
	}
	return false
}
