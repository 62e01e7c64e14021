package stats

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adminportal/fichas-backend/internal/domain"
)

// FilterSpec is the normalized, already-validated form of the raw query
// parameters. Built once per request and never mutated. A value that fails
// parsing or enum validation is simply unset; the filter is not applied.
type FilterSpec struct {
	Q           string
	Ambito      *domain.Ambito
	CCAAID      *uuid.UUID
	ProvinciaID *uuid.UUID
	CreadoPor   []uuid.UUID
	Tramite     *domain.Tramite
	Complejidad *domain.Complejidad
	Destaque    DestaqueMode
	Anio        *int
	Mes         *int
	Desde       *time.Time
	Hasta       *time.Time
	PortalIDs   []uuid.UUID
}

// ParseFilterSpec normalizes raw string parameters. It never fails: any
// unusable value degrades to unset.
func ParseFilterSpec(params map[string]string) FilterSpec {
	fs := FilterSpec{
		Q: strings.TrimSpace(params["q"]),
	}

	if a, ok := domain.ParseAmbito(params["ambito"]); ok {
		fs.Ambito = &a
	}
	if id, ok := parseUUID(params["ccaa_id"]); ok {
		fs.CCAAID = &id
	}
	if id, ok := parseUUID(params["provincia_id"]); ok {
		fs.ProvinciaID = &id
	}
	fs.CreadoPor = parseUUIDList(params["creado_por"])
	if t, ok := domain.ParseTramite(params["tramite"]); ok {
		fs.Tramite = &t
	}
	if c, ok := domain.ParseComplejidad(params["complejidad"]); ok {
		fs.Complejidad = &c
	}
	if m, ok := ParseDestaqueMode(params["destaque"]); ok {
		fs.Destaque = m
	}
	if n, ok := parseInt(params["anio"]); ok && n > 0 {
		fs.Anio = &n
	}
	if n, ok := parseInt(params["mes"]); ok && n >= 1 && n <= 12 {
		fs.Mes = &n
	}
	if d, ok := parseDate(params["desde"]); ok {
		fs.Desde = &d
	}
	if d, ok := parseDate(params["hasta"]); ok {
		h := d.Add(24*time.Hour - time.Second)
		fs.Hasta = &h
	}
	fs.PortalIDs = parseUUIDList(params["portal_ids"])

	return fs
}

// Window resolves the half-open [from, to) window for bucket generation.
// An explicit anio (with optional mes) wins over a free date range. ok is
// false when neither is present and the caller must fall back to the
// observed span of the data.
func (fs FilterSpec) Window() (from, to time.Time, ok bool) {
	if fs.Anio != nil {
		y := *fs.Anio
		if fs.Mes != nil {
			from = time.Date(y, time.Month(*fs.Mes), 1, 0, 0, 0, 0, time.UTC)
			return from, from.AddDate(0, 1, 0), true
		}
		from = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0), true
	}
	if fs.Desde != nil && fs.Hasta != nil {
		return *fs.Desde, fs.Hasta.Add(time.Second), true
	}
	return time.Time{}, time.Time{}, false
}

// BuildPredicate composes the full predicate for the spec. The geographic
// expansion needs the provincia's parent region, hence the lookup and the
// context.
func BuildPredicate(ctx context.Context, lookup RegionLookup, fs FilterSpec) (*Composer, error) {
	c := &Composer{}
	c.Add(IsNull("f.deleted_at"))

	if fs.Q != "" {
		c.Add(TextSearch(fs.Q, "f.titulo", "f.descripcion", "f.contenido"))
	}
	if fs.ProvinciaID != nil {
		geo, err := ProvinciaScope(ctx, lookup, *fs.ProvinciaID)
		if err != nil {
			return nil, err
		}
		c.Add(geo)
	} else if fs.CCAAID != nil {
		c.Add(Eq("f.ccaa_id", *fs.CCAAID))
	}
	if fs.Ambito != nil {
		c.Add(Eq("f.ambito", string(*fs.Ambito)))
	}
	if len(fs.CreadoPor) > 0 {
		c.Add(In("f.creado_por", fs.CreadoPor))
	}
	if fs.Tramite != nil {
		c.Add(Eq("f.tramite", string(*fs.Tramite)))
	}
	if fs.Complejidad != nil {
		c.Add(Eq("f.complejidad", string(*fs.Complejidad)))
	}
	c.Add(fs.Destaque.Fragment())

	// Time filtering follows the same precedence as Window.
	if from, to, ok := fs.Window(); ok {
		c.Add(Gte("f.created_at", from))
		c.Add(Fragment{Cond: "f.created_at < ?", Args: []any{to}})
	} else {
		if fs.Desde != nil {
			c.Add(Gte("f.created_at", *fs.Desde))
		}
		if fs.Hasta != nil {
			c.Add(Lte("f.created_at", *fs.Hasta))
		}
	}

	// Membership subquery keeps the base queries free of join fan-out.
	if len(fs.PortalIDs) > 0 {
		c.Add(Subquery("f.id", "SELECT fp.ficha_id FROM ficha_portal fp WHERE fp.portal_id IN ?", fs.PortalIDs))
	}

	return c, nil
}

func parseUUID(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDList(s string) []uuid.UUID {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []uuid.UUID
	for _, part := range strings.Split(s, ",") {
		if id, ok := parseUUID(part); ok {
			out = append(out, id)
		}
	}
	return out
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDate accepts YYYY-MM-DD and anchors it at the UTC day start.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d.UTC(), true
}
