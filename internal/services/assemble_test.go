package services

import (
	"strings"
	"testing"
	"time"

	"github.com/adminportal/fichas-backend/internal/data/repos/fichas"
	types "github.com/adminportal/fichas-backend/internal/domain"
	"github.com/adminportal/fichas-backend/internal/stats"
)

func portalesFixture() []*types.Portal {
	return []*types.Portal{
		{Clave: "cultura", Nombre: "Cultura"},
		{Clave: "empresas", Nombre: "Empresas"},
		{Clave: "ciudadania", Nombre: "Ciudadanía"},
	}
}

func TestPortalReferenceOrdersByPriorityThenName(t *testing.T) {
	ref := portalReference(portalesFixture(), stats.PortalPriority{"ciudadania", "empresas"})
	want := []string{"ciudadania", "empresas", "cultura"}
	if len(ref) != len(want) {
		t.Fatalf("len: want=%d got=%d", len(want), len(ref))
	}
	for i, w := range want {
		if ref[i].Key != w {
			t.Fatalf("ref[%d]: want=%q got=%q", i, w, ref[i].Key)
		}
	}
}

func TestPortalReferenceUnlistedSortByName(t *testing.T) {
	portales := []*types.Portal{
		{Clave: "zonas", Nombre: "Zonas"},
		{Clave: "agenda", Nombre: "Agenda"},
	}
	ref := portalReference(portales, stats.PortalPriority{"ciudadania"})
	if ref[0].Key != "agenda" || ref[1].Key != "zonas" {
		t.Fatalf("want [agenda zonas], got=[%s %s]", ref[0].Key, ref[1].Key)
	}
}

func TestPortalReferenceDoesNotMutateInput(t *testing.T) {
	portales := portalesFixture()
	first := portales[0].Clave
	_ = portalReference(portales, stats.DefaultPortalPriority)
	if portales[0].Clave != first {
		t.Fatalf("input slice reordered: got=%q", portales[0].Clave)
	}
}

func TestTematicaReferenceOrdersByName(t *testing.T) {
	ref := tematicaReference([]*types.Tematica{
		{Clave: "vivienda", Nombre: "Vivienda"},
		{Clave: "empleo", Nombre: "Empleo"},
	})
	if ref[0].Key != "empleo" || ref[1].Key != "vivienda" {
		t.Fatalf("want [empleo vivienda], got=[%s %s]", ref[0].Key, ref[1].Key)
	}
}

func TestAmbitoReferenceFollowsSeverityOrder(t *testing.T) {
	ref := ambitoReference()
	want := []string{"UE", "ESTADO", "CCAA", "PROVINCIA"}
	for i, w := range want {
		if ref[i].Key != w {
			t.Fatalf("ref[%d]: want=%q got=%q", i, w, ref[i].Key)
		}
	}
}

func TestMergeReferenceZeroFills(t *testing.T) {
	ref := []refEntry{
		{Key: "ciudadania", Label: "Ciudadanía"},
		{Key: "empresas", Label: "Empresas"},
		{Key: "cultura", Label: "Cultura"},
	}
	rows, err := mergeReference(ref, []fichas.GroupCount{
		{Key: "empresas", Label: "Empresas", Count: 4},
	})
	if err != nil {
		t.Fatalf("mergeReference: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len: want=3 got=%d", len(rows))
	}
	if rows[0].Count != 0 || rows[1].Count != 4 || rows[2].Count != 0 {
		t.Fatalf("counts: want=[0 4 0] got=[%d %d %d]", rows[0].Count, rows[1].Count, rows[2].Count)
	}
	if rows[0].Label != "Ciudadanía" {
		t.Fatalf("label: want=%q got=%q", "Ciudadanía", rows[0].Label)
	}
}

func TestMergeReferenceRejectsUnknownKey(t *testing.T) {
	ref := []refEntry{{Key: "ciudadania", Label: "Ciudadanía"}}
	_, err := mergeReference(ref, []fichas.GroupCount{{Key: "fantasma", Count: 1}})
	if err == nil {
		t.Fatalf("expected integrity error, got nil")
	}
	if !strings.Contains(err.Error(), "fantasma") {
		t.Fatalf("error should name the offending key: %v", err)
	}
}

func TestMergeSerieZeroFillsEveryBucket(t *testing.T) {
	buckets := stats.YearMonths(2024, nil)
	res, err := mergeSerie(buckets, []fichas.MonthCount{
		{Anio: 2024, Mes: 3, Count: 5},
		{Anio: 2024, Mes: 11, Count: 2},
	})
	if err != nil {
		t.Fatalf("mergeSerie: %v", err)
	}
	if len(res.Items) != 12 {
		t.Fatalf("items: want=12 got=%d", len(res.Items))
	}
	if res.Items[0].Bucket != "2024-01" || res.Items[11].Bucket != "2024-12" {
		t.Fatalf("bucket bounds: got first=%q last=%q", res.Items[0].Bucket, res.Items[11].Bucket)
	}
	if res.Items[2].TotalForBucket != 5 || res.Items[10].TotalForBucket != 2 {
		t.Fatalf("counts misplaced: march=%d november=%d", res.Items[2].TotalForBucket, res.Items[10].TotalForBucket)
	}
	if res.TotalGlobal != 7 {
		t.Fatalf("total: want=7 got=%d", res.TotalGlobal)
	}
}

func TestMergeSerieEmptyDataYieldsAllZeroBuckets(t *testing.T) {
	buckets := stats.YearMonths(2024, nil)
	res, err := mergeSerie(buckets, nil)
	if err != nil {
		t.Fatalf("mergeSerie: %v", err)
	}
	if len(res.Items) != 12 || res.TotalGlobal != 0 {
		t.Fatalf("want 12 zero buckets, got items=%d total=%d", len(res.Items), res.TotalGlobal)
	}
	for _, it := range res.Items {
		if it.TotalForBucket != 0 {
			t.Fatalf("bucket %s: want=0 got=%d", it.Bucket, it.TotalForBucket)
		}
	}
}

func TestMergeSerieRejectsCountOutsideBuckets(t *testing.T) {
	buckets := stats.YearMonths(2024, nil)
	_, err := mergeSerie(buckets, []fichas.MonthCount{{Anio: 2023, Mes: 12, Count: 1}})
	if err == nil {
		t.Fatalf("expected integrity error, got nil")
	}
}

func TestMergeSerieMesDelAnioCollapsesYears(t *testing.T) {
	res, err := mergeSerieMesDelAnio([]fichas.MonthCount{
		{Anio: 2022, Mes: 1, Count: 3},
		{Anio: 2024, Mes: 1, Count: 4},
		{Anio: 2023, Mes: 9, Count: 1},
	})
	if err != nil {
		t.Fatalf("mergeSerieMesDelAnio: %v", err)
	}
	if len(res.Items) != 12 {
		t.Fatalf("items: want=12 got=%d", len(res.Items))
	}
	if res.Items[0].Bucket != "01" || res.Items[0].TotalForBucket != 7 {
		t.Fatalf("january: want bucket=01 count=7, got bucket=%q count=%d", res.Items[0].Bucket, res.Items[0].TotalForBucket)
	}
	if res.Items[8].TotalForBucket != 1 {
		t.Fatalf("september: want=1 got=%d", res.Items[8].TotalForBucket)
	}
	if res.TotalGlobal != 8 {
		t.Fatalf("total: want=8 got=%d", res.TotalGlobal)
	}
}

func TestMergeSerieMesDelAnioRejectsOutOfRangeMonth(t *testing.T) {
	_, err := mergeSerieMesDelAnio([]fichas.MonthCount{{Anio: 2024, Mes: 13, Count: 1}})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestMergeSeriePortalDenseGrid(t *testing.T) {
	buckets := []stats.MonthKey{
		{Year: 2024, Month: time.January},
		{Year: 2024, Month: time.February},
	}
	claves := []string{"ciudadania", "empresas"}
	res, err := mergeSeriePortal(buckets, claves, []fichas.MonthGroupCount{
		{Anio: 2024, Mes: 1, Key: "ciudadania", Count: 3},
		{Anio: 2024, Mes: 2, Key: "empresas", Count: 2},
	})
	if err != nil {
		t.Fatalf("mergeSeriePortal: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("items: want=2 got=%d", len(res.Items))
	}
	jan := res.Items[0]
	if jan.Counts["ciudadania"] != 3 || jan.Counts["empresas"] != 0 {
		t.Fatalf("january counts: got=%v", jan.Counts)
	}
	if jan.TotalForBucket != 3 {
		t.Fatalf("january total: want=3 got=%d", jan.TotalForBucket)
	}
	if res.Totals["ciudadania"] != 3 || res.Totals["empresas"] != 2 {
		t.Fatalf("totals: got=%v", res.Totals)
	}
	if res.TotalGlobal != 5 {
		t.Fatalf("total: want=5 got=%d", res.TotalGlobal)
	}
}

func TestMergeSeriePortalRejectsUnknownClave(t *testing.T) {
	buckets := []stats.MonthKey{{Year: 2024, Month: time.January}}
	_, err := mergeSeriePortal(buckets, []string{"ciudadania"}, []fichas.MonthGroupCount{
		{Anio: 2024, Mes: 1, Key: "fantasma", Count: 1},
	})
	if err == nil {
		t.Fatalf("expected integrity error, got nil")
	}
}

func TestMergeSeriePortalRejectsMonthOutsideBuckets(t *testing.T) {
	buckets := []stats.MonthKey{{Year: 2024, Month: time.January}}
	_, err := mergeSeriePortal(buckets, []string{"ciudadania"}, []fichas.MonthGroupCount{
		{Anio: 2024, Mes: 2, Key: "ciudadania", Count: 1},
	})
	if err == nil {
		t.Fatalf("expected integrity error, got nil")
	}
}
