package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/adminportal/fichas-backend/internal/data/repos/fichas"
	types "github.com/adminportal/fichas-backend/internal/domain"
	"github.com/adminportal/fichas-backend/internal/stats"
)

// DimensionRow is one zero-filled entry of a non-time dimension.
type DimensionRow struct {
	GroupKey string `json:"group_key"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

type DimensionMetadata struct {
	TotalUniqueRecords int64 `json:"total_unique_records"`
	TotalAssignments   int64 `json:"total_assignments"`
	TotalEntries       int   `json:"total_entries"`
}

type DimensionResult struct {
	Data     []DimensionRow    `json:"data"`
	Metadata DimensionMetadata `json:"metadata"`
}

// SerieItem is one month bucket. Counts carries the per-channel breakdown
// on the month-by-portal dimension and is omitted on the plain series.
type SerieItem struct {
	Bucket         string           `json:"bucket"`
	Counts         map[string]int64 `json:"counts,omitempty"`
	TotalForBucket int64            `json:"total_for_bucket"`
}

type SerieResult struct {
	Items       []SerieItem      `json:"items"`
	Totals      map[string]int64 `json:"totals"`
	TotalGlobal int64            `json:"total_global"`
}

// refEntry is one entry of the complete reference list a dimension merges
// onto: every key appears in the output even with zero matches.
type refEntry struct {
	Key   string
	Label string
}

func portalReference(portales []*types.Portal, priority stats.PortalPriority) []refEntry {
	sorted := make([]*types.Portal, len(portales))
	copy(sorted, portales)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := priority.Rank(sorted[i].Clave), priority.Rank(sorted[j].Clave)
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Nombre < sorted[j].Nombre
	})
	out := make([]refEntry, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, refEntry{Key: p.Clave, Label: p.Nombre})
	}
	return out
}

func tematicaReference(tematicas []*types.Tematica) []refEntry {
	sorted := make([]*types.Tematica, len(tematicas))
	copy(sorted, tematicas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Nombre < sorted[j].Nombre
	})
	out := make([]refEntry, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, refEntry{Key: t.Clave, Label: t.Nombre})
	}
	return out
}

func ambitoReference() []refEntry {
	out := make([]refEntry, 0, len(types.Ambitos))
	for _, a := range types.Ambitos {
		out = append(out, refEntry{Key: string(a), Label: string(a)})
	}
	return out
}

func tramiteReference() []refEntry {
	out := make([]refEntry, 0, len(types.Tramites))
	for _, t := range types.Tramites {
		out = append(out, refEntry{Key: string(t), Label: string(t)})
	}
	return out
}

// mergeReference left-merges sparse group counts onto the complete
// reference list, zero-filling. A count keyed outside the reference list
// is a referential-integrity failure, never silently dropped.
func mergeReference(ref []refEntry, groups []fichas.GroupCount) ([]DimensionRow, error) {
	byKey := make(map[string]int64, len(groups))
	for _, gc := range groups {
		byKey[gc.Key] += gc.Count
	}

	rows := make([]DimensionRow, 0, len(ref))
	for _, r := range ref {
		rows = append(rows, DimensionRow{
			GroupKey: r.Key,
			Label:    r.Label,
			Count:    byKey[r.Key],
		})
		delete(byKey, r.Key)
	}
	if len(byKey) > 0 {
		for key := range byKey {
			return nil, fmt.Errorf("aggregation key %q has no reference entry", key)
		}
	}
	return rows, nil
}

func mergeSerie(buckets []stats.MonthKey, counts []fichas.MonthCount) (*SerieResult, error) {
	byKey := make(map[stats.MonthKey]int64, len(counts))
	for _, mc := range counts {
		byKey[stats.MonthKey{Year: mc.Anio, Month: monthOf(mc.Mes)}] += mc.Count
	}

	res := &SerieResult{
		Items:  make([]SerieItem, 0, len(buckets)),
		Totals: map[string]int64{},
	}
	for _, b := range buckets {
		n := byKey[b]
		res.Items = append(res.Items, SerieItem{Bucket: b.String(), TotalForBucket: n})
		res.TotalGlobal += n
		delete(byKey, b)
	}
	if len(byKey) > 0 {
		for k := range byKey {
			return nil, fmt.Errorf("month %s outside the generated bucket sequence", k)
		}
	}
	return res, nil
}

// mergeSerieMesDelAnio collapses the counts across years onto the twelve
// month-of-year buckets.
func mergeSerieMesDelAnio(counts []fichas.MonthCount) (*SerieResult, error) {
	byMes := make(map[int]int64, 12)
	for _, mc := range counts {
		if mc.Mes < 1 || mc.Mes > 12 {
			return nil, fmt.Errorf("month number %d out of range", mc.Mes)
		}
		byMes[mc.Mes] += mc.Count
	}

	res := &SerieResult{
		Items:  make([]SerieItem, 0, 12),
		Totals: map[string]int64{},
	}
	for mes := 1; mes <= 12; mes++ {
		n := byMes[mes]
		res.Items = append(res.Items, SerieItem{Bucket: fmt.Sprintf("%02d", mes), TotalForBucket: n})
		res.TotalGlobal += n
	}
	return res, nil
}

func mergeSeriePortal(buckets []stats.MonthKey, claves []string, cells []fichas.MonthGroupCount) (*SerieResult, error) {
	inBuckets := make(map[stats.MonthKey]bool, len(buckets))
	for _, b := range buckets {
		inBuckets[b] = true
	}
	known := make(map[string]bool, len(claves))
	for _, c := range claves {
		known[c] = true
	}

	type cellKey struct {
		month stats.MonthKey
		clave string
	}
	byCell := make(map[cellKey]int64, len(cells))
	for _, c := range cells {
		k := cellKey{month: stats.MonthKey{Year: c.Anio, Month: monthOf(c.Mes)}, clave: c.Key}
		if !inBuckets[k.month] {
			return nil, fmt.Errorf("month %s outside the generated bucket sequence", k.month)
		}
		if !known[k.clave] {
			return nil, fmt.Errorf("portal %q has no reference entry", k.clave)
		}
		byCell[k] += c.Count
	}

	res := &SerieResult{
		Items:  make([]SerieItem, 0, len(buckets)),
		Totals: make(map[string]int64, len(claves)),
	}
	for _, c := range claves {
		res.Totals[c] = 0
	}
	for _, b := range buckets {
		item := SerieItem{Bucket: b.String(), Counts: make(map[string]int64, len(claves))}
		for _, c := range claves {
			n := byCell[cellKey{month: b, clave: c}]
			item.Counts[c] = n
			item.TotalForBucket += n
			res.Totals[c] += n
		}
		res.Items = append(res.Items, item)
		res.TotalGlobal += item.TotalForBucket
	}
	return res, nil
}

func monthOf(mes int) time.Month {
	return time.Month(mes)
}
