package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/adminportal/fichas-backend/internal/data/repos/catalog"
	"github.com/adminportal/fichas-backend/internal/data/repos/fichas"
	"github.com/adminportal/fichas-backend/internal/platform/apierr"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
	"github.com/adminportal/fichas-backend/internal/stats"
)

// StatsService runs one aggregation dimension end to end: normalize the
// raw parameters, compose the predicate, execute the grouped counts and
// assemble the dense, ordered response. A call either fully succeeds or
// fully fails; no partial dimension is ever returned.
type StatsService interface {
	PorPortal(ctx context.Context, params map[string]string) (*DimensionResult, error)
	PorAmbito(ctx context.Context, params map[string]string) (*DimensionResult, error)
	PorTematica(ctx context.Context, params map[string]string) (*DimensionResult, error)
	PorTramite(ctx context.Context, params map[string]string) (*DimensionResult, error)
	SeriePorMes(ctx context.Context, params map[string]string) (*SerieResult, error)
	SeriePorMesYPortal(ctx context.Context, params map[string]string) (*SerieResult, error)
}

type statsService struct {
	db            *gorm.DB
	log           *logger.Logger
	statsRepo     fichas.StatsRepo
	portalRepo    catalog.PortalRepo
	tematicaRepo  catalog.TematicaRepo
	provinciaRepo catalog.ProvinciaRepo
	priority      stats.PortalPriority
}

func NewStatsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	statsRepo fichas.StatsRepo,
	portalRepo catalog.PortalRepo,
	tematicaRepo catalog.TematicaRepo,
	provinciaRepo catalog.ProvinciaRepo,
	priority stats.PortalPriority,
) StatsService {
	if len(priority) == 0 {
		priority = stats.DefaultPortalPriority
	}
	return &statsService{
		db:            db,
		log:           baseLog.With("service", "StatsService"),
		statsRepo:     statsRepo,
		portalRepo:    portalRepo,
		tematicaRepo:  tematicaRepo,
		provinciaRepo: provinciaRepo,
		priority:      priority,
	}
}

func (ss *statsService) predicate(ctx context.Context, params map[string]string) (stats.FilterSpec, *stats.Composer, error) {
	fs := stats.ParseFilterSpec(params)
	pred, err := stats.BuildPredicate(ctx, ss.provinciaRepo, fs)
	if err != nil {
		return fs, nil, apierr.Store(err)
	}
	return fs, pred, nil
}

func (ss *statsService) PorPortal(ctx context.Context, params map[string]string) (*DimensionResult, error) {
	_, pred, err := ss.predicate(ctx, params)
	if err != nil {
		return nil, err
	}

	portales, err := ss.portalRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Store(err)
	}

	var (
		groups      []fichas.GroupCount
		distinct    int64
		assignments int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = ss.statsRepo.CountByPortal(gctx, nil, pred)
		return err
	})
	g.Go(func() error {
		var err error
		distinct, err = ss.statsRepo.DistinctCount(gctx, nil, pred)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = ss.statsRepo.PortalAssignments(gctx, nil, pred)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.Store(err)
	}

	ref := portalReference(portales, ss.priority)
	rows, err := mergeReference(ref, groups)
	if err != nil {
		ss.log.Error("portal dimension integrity failure", "error", err)
		return nil, apierr.Integrity(err)
	}
	return &DimensionResult{
		Data: rows,
		Metadata: DimensionMetadata{
			TotalUniqueRecords: distinct,
			TotalAssignments:   assignments,
			TotalEntries:       len(rows),
		},
	}, nil
}

func (ss *statsService) PorTematica(ctx context.Context, params map[string]string) (*DimensionResult, error) {
	_, pred, err := ss.predicate(ctx, params)
	if err != nil {
		return nil, err
	}

	tematicas, err := ss.tematicaRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Store(err)
	}

	var (
		groups      []fichas.GroupCount
		distinct    int64
		assignments int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = ss.statsRepo.CountByTematica(gctx, nil, pred)
		return err
	})
	g.Go(func() error {
		var err error
		distinct, err = ss.statsRepo.DistinctCount(gctx, nil, pred)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = ss.statsRepo.TematicaAssignments(gctx, nil, pred)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.Store(err)
	}

	ref := tematicaReference(tematicas)
	rows, err := mergeReference(ref, groups)
	if err != nil {
		ss.log.Error("tematica dimension integrity failure", "error", err)
		return nil, apierr.Integrity(err)
	}
	return &DimensionResult{
		Data: rows,
		Metadata: DimensionMetadata{
			TotalUniqueRecords: distinct,
			TotalAssignments:   assignments,
			TotalEntries:       len(rows),
		},
	}, nil
}

func (ss *statsService) PorAmbito(ctx context.Context, params map[string]string) (*DimensionResult, error) {
	return ss.enumDimension(ctx, params, ambitoReference(), ss.statsRepo.CountByAmbito)
}

func (ss *statsService) PorTramite(ctx context.Context, params map[string]string) (*DimensionResult, error) {
	return ss.enumDimension(ctx, params, tramiteReference(), ss.statsRepo.CountByTramite)
}

// enumDimension covers the dimensions grouped over a column of the ficha
// row itself. There is no fan-out, so the assignment count equals the
// distinct count by construction.
func (ss *statsService) enumDimension(
	ctx context.Context,
	params map[string]string,
	ref []refEntry,
	count func(context.Context, *gorm.DB, *stats.Composer) ([]fichas.GroupCount, error),
) (*DimensionResult, error) {
	_, pred, err := ss.predicate(ctx, params)
	if err != nil {
		return nil, err
	}

	var (
		groups   []fichas.GroupCount
		distinct int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = count(gctx, nil, pred)
		return err
	})
	g.Go(func() error {
		var err error
		distinct, err = ss.statsRepo.DistinctCount(gctx, nil, pred)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.Store(err)
	}

	rows, err := mergeReference(ref, groups)
	if err != nil {
		ss.log.Error("enum dimension integrity failure", "error", err)
		return nil, apierr.Integrity(err)
	}
	return &DimensionResult{
		Data: rows,
		Metadata: DimensionMetadata{
			TotalUniqueRecords: distinct,
			TotalAssignments:   distinct,
			TotalEntries:       len(rows),
		},
	}, nil
}

func (ss *statsService) SeriePorMes(ctx context.Context, params map[string]string) (*SerieResult, error) {
	fs, pred, err := ss.predicate(ctx, params)
	if err != nil {
		return nil, err
	}

	// The month-of-year collapse always yields twelve buckets, so it needs
	// no bucket sequence and is exempt from the span cap.
	if params["granularidad"] == "mes" {
		counts, err := ss.statsRepo.CountByMonth(ctx, nil, pred)
		if err != nil {
			return nil, apierr.Store(err)
		}
		res, err := mergeSerieMesDelAnio(counts)
		if err != nil {
			ss.log.Error("month-of-year serie integrity failure", "error", err)
			return nil, apierr.Integrity(err)
		}
		return res, nil
	}

	buckets, err := ss.resolveBuckets(ctx, fs)
	if err != nil {
		return nil, err
	}

	counts, err := ss.statsRepo.CountByMonth(ctx, nil, pred)
	if err != nil {
		return nil, apierr.Store(err)
	}

	res, err := mergeSerie(buckets, counts)
	if err != nil {
		ss.log.Error("month serie integrity failure", "error", err)
		return nil, apierr.Integrity(err)
	}
	return res, nil
}

func (ss *statsService) SeriePorMesYPortal(ctx context.Context, params map[string]string) (*SerieResult, error) {
	fs, pred, err := ss.predicate(ctx, params)
	if err != nil {
		return nil, err
	}
	if fs.Anio == nil {
		return nil, apierr.MissingParam("missing_anio", errors.New("anio is required for the per-portal series"))
	}

	buckets := stats.YearMonths(*fs.Anio, fs.Mes)

	portales, err := ss.portalRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Store(err)
	}

	cells, err := ss.statsRepo.CountByMonthAndPortal(ctx, nil, pred)
	if err != nil {
		return nil, apierr.Store(err)
	}

	claves := make([]string, 0, len(portales))
	for _, p := range portalReference(portales, ss.priority) {
		claves = append(claves, p.Key)
	}

	res, err := mergeSeriePortal(buckets, claves, cells)
	if err != nil {
		ss.log.Error("month-portal serie integrity failure", "error", err)
		return nil, apierr.Integrity(err)
	}
	return res, nil
}

// resolveBuckets turns the spec's window into the dense month sequence,
// falling back to the observed span of the data when no window was given.
// The span is read once here and nowhere else in the request.
func (ss *statsService) resolveBuckets(ctx context.Context, fs stats.FilterSpec) ([]stats.MonthKey, error) {
	from, to, ok := fs.Window()
	if !ok {
		min, max, has, err := ss.statsRepo.ObservedSpan(ctx, nil)
		if err != nil {
			return nil, apierr.Store(err)
		}
		if !has {
			return nil, nil
		}
		from = min
		to = max.Add(time.Second) // half-open: include the month of the newest record
	}
	if !from.Before(to) {
		return nil, apierr.InvalidParam("rango_invalido", fmt.Errorf("empty date range [%s, %s)", from.Format("2006-01-02"), to.Format("2006-01-02")))
	}
	buckets, err := stats.MonthsBetween(from, to)
	if err != nil {
		if errors.Is(err, stats.ErrRangeTooWide) {
			return nil, apierr.InvalidParam("rango_demasiado_amplio", err)
		}
		return nil, apierr.From(err)
	}
	return buckets, nil
}
