package stats

import (
	"github.com/adminportal/fichas-backend/internal/domain"
)

// DestaqueMode selects how the two highlight slots are filtered.
type DestaqueMode string

const (
	DestaqueModeUnset        DestaqueMode = ""
	DestaqueModeNueva        DestaqueMode = "nueva"
	DestaqueModePromocionar  DestaqueMode = "promocionar"
	DestaqueModeAmbas        DestaqueMode = "ambas"
	DestaqueModeSinEtiquetas DestaqueMode = "sin_etiquetas"
)

func ParseDestaqueMode(s string) (DestaqueMode, bool) {
	switch DestaqueMode(s) {
	case DestaqueModeNueva, DestaqueModePromocionar, DestaqueModeAmbas, DestaqueModeSinEtiquetas:
		return DestaqueMode(s), true
	default:
		return DestaqueModeUnset, false
	}
}

const (
	colDestaquePrincipal  = "f.destaque_principal"
	colDestaqueSecundario = "f.destaque_secundario"
)

// Fragment translates the mode into a predicate over the two slots.
//
//   - nueva / promocionar: the label appears in either slot, alone or
//     combined with the other label.
//   - ambas: the record carries exactly the two known labels across the two
//     slots, in either order. A record with an empty slot never matches.
//   - sin_etiquetas: both slots are empty.
//   - unset: no constraint.
func (m DestaqueMode) Fragment() Fragment {
	switch m {
	case DestaqueModeUnset:
		return Fragment{}
	case DestaqueModeNueva:
		return anySlot(domain.DestaqueNueva)
	case DestaqueModePromocionar:
		return anySlot(domain.DestaquePromocionar)
	case DestaqueModeAmbas:
		return Or(
			And(
				Eq(colDestaquePrincipal, string(domain.DestaqueNueva)),
				Eq(colDestaqueSecundario, string(domain.DestaquePromocionar)),
			),
			And(
				Eq(colDestaquePrincipal, string(domain.DestaquePromocionar)),
				Eq(colDestaqueSecundario, string(domain.DestaqueNueva)),
			),
		)
	case DestaqueModeSinEtiquetas:
		return And(IsNull(colDestaquePrincipal), IsNull(colDestaqueSecundario))
	default:
		return Fragment{}
	}
}

func anySlot(tag domain.Destaque) Fragment {
	return Or(
		Eq(colDestaquePrincipal, string(tag)),
		Eq(colDestaqueSecundario, string(tag)),
	)
}
