package domain

// Ambito is the geographic applicability level of a ficha.
type Ambito string

const (
	AmbitoUE        Ambito = "UE"
	AmbitoEstado    Ambito = "ESTADO"
	AmbitoCCAA      Ambito = "CCAA"
	AmbitoProvincia Ambito = "PROVINCIA"
)

// Ambitos lists every level in severity order: supranational and national
// first, then region, then province. The assembler keys off this order.
var Ambitos = []Ambito{AmbitoUE, AmbitoEstado, AmbitoCCAA, AmbitoProvincia}

func ParseAmbito(s string) (Ambito, bool) {
	switch Ambito(s) {
	case AmbitoUE, AmbitoEstado, AmbitoCCAA, AmbitoProvincia:
		return Ambito(s), true
	default:
		return "", false
	}
}

// Nacional reports whether the level covers the whole country: ESTADO and
// UE fichas apply everywhere regardless of the requested geography.
func (a Ambito) Nacional() bool {
	return a == AmbitoEstado || a == AmbitoUE
}

// Tramite is the processing type of a ficha.
type Tramite string

const (
	TramiteDirecto Tramite = "directo"
	TramiteSi      Tramite = "si"
	TramiteNo      Tramite = "no"
)

var Tramites = []Tramite{TramiteDirecto, TramiteSi, TramiteNo}

func ParseTramite(s string) (Tramite, bool) {
	switch Tramite(s) {
	case TramiteDirecto, TramiteSi, TramiteNo:
		return Tramite(s), true
	default:
		return "", false
	}
}

// Complejidad is the editorial complexity of a ficha.
type Complejidad string

const (
	ComplejidadBaja  Complejidad = "baja"
	ComplejidadMedia Complejidad = "media"
	ComplejidadAlta  Complejidad = "alta"
)

func ParseComplejidad(s string) (Complejidad, bool) {
	switch Complejidad(s) {
	case ComplejidadBaja, ComplejidadMedia, ComplejidadAlta:
		return Complejidad(s), true
	default:
		return "", false
	}
}

// Destaque is a highlight label carried in one of the two tag slots.
type Destaque string

const (
	DestaqueNueva       Destaque = "nueva"
	DestaquePromocionar Destaque = "promocionar"
)

func ParseDestaque(s string) (Destaque, bool) {
	switch Destaque(s) {
	case DestaqueNueva, DestaquePromocionar:
		return Destaque(s), true
	default:
		return "", false
	}
}
