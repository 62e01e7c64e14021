package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adminportal/fichas-backend/internal/domain"
)

// RegionLookup resolves a provincia to its parent CCAA. The second return
// is false when the provincia is unknown.
type RegionLookup interface {
	ParentCCAA(ctx context.Context, provinciaID uuid.UUID) (uuid.UUID, bool, error)
}

// ProvinciaScope expands a provincia filter into its three inclusive arms:
// fichas published for the provincia itself, fichas published for the whole
// parent region, and fichas with national scope. An unknown provincia
// yields a predicate that matches nothing.
//
// The expansion is one-directional: a CCAA filter is a plain equality and
// does not pull in the provincias beneath it.
func ProvinciaScope(ctx context.Context, lookup RegionLookup, provinciaID uuid.UUID) (Fragment, error) {
	ccaaID, ok, err := lookup.ParentCCAA(ctx, provinciaID)
	if err != nil {
		return Fragment{}, fmt.Errorf("resolve parent ccaa for provincia %s: %w", provinciaID, err)
	}
	if !ok {
		return Never(), nil
	}
	return Or(
		Eq("f.provincia_id", provinciaID),
		And(
			Eq("f.ambito", string(domain.AmbitoCCAA)),
			Eq("f.ccaa_id", ccaaID),
		),
		In("f.ambito", []string{string(domain.AmbitoEstado), string(domain.AmbitoUE)}),
	), nil
}
