package fichas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/adminportal/fichas-backend/internal/platform/logger"
	"github.com/adminportal/fichas-backend/internal/stats"
)

// GroupCount is one (group key, distinct record count) row of a non-time
// dimension. Key is the stable slug the assembler merges on.
type GroupCount struct {
	Key   string `gorm:"column:clave"`
	Label string `gorm:"column:nombre"`
	Count int64  `gorm:"column:cnt"`
}

// MonthCount is one month bucket's distinct record count.
type MonthCount struct {
	Anio  int   `gorm:"column:anio"`
	Mes   int   `gorm:"column:mes"`
	Count int64 `gorm:"column:cnt"`
}

// MonthGroupCount is one (month, channel) cell.
type MonthGroupCount struct {
	Anio  int    `gorm:"column:anio"`
	Mes   int    `gorm:"column:mes"`
	Key   string `gorm:"column:clave"`
	Count int64  `gorm:"column:cnt"`
}

// StatsRepo executes the grouped-count dimensions over a composed
// predicate. Every count of fichas is count(DISTINCT f.id); the join
// fan-out to portales/tematicas is only ever counted by the explicit
// assignment methods.
type StatsRepo interface {
	DistinctCount(ctx context.Context, tx *gorm.DB, pred *stats.Composer) (int64, error)
	PortalAssignments(ctx context.Context, tx *gorm.DB, pred *stats.Composer) (int64, error)
	TematicaAssignments(ctx context.Context, tx *gorm.DB, pred *stats.Composer) (int64, error)

	CountByPortal(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error)
	CountByAmbito(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error)
	CountByTematica(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error)
	CountByTramite(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error)
	CountByMonth(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]MonthCount, error)
	CountByMonthAndPortal(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]MonthGroupCount, error)

	// ObservedSpan returns the min/max created_at over live fichas; ok is
	// false on an empty table.
	ObservedSpan(ctx context.Context, tx *gorm.DB) (min, max time.Time, ok bool, err error)
}

type statsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatsRepo(db *gorm.DB, baseLog *logger.Logger) StatsRepo {
	return &statsRepo{db: db, log: baseLog.With("repo", "StatsRepo")}
}

func (sr *statsRepo) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return sr.db
}

func (sr *statsRepo) DistinctCount(ctx context.Context, tx *gorm.DB, pred *stats.Composer) (int64, error) {
	cond, args := pred.SQL()
	var count int64
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT count(DISTINCT f.id) FROM ficha f WHERE %s`, cond),
		args...,
	).Scan(&count).Error
	if err != nil {
		return 0, sr.wrap("DistinctCount", err)
	}
	return count, nil
}

func (sr *statsRepo) PortalAssignments(ctx context.Context, tx *gorm.DB, pred *stats.Composer) (int64, error) {
	return sr.assignments(ctx, tx, pred, "ficha_portal")
}

func (sr *statsRepo) TematicaAssignments(ctx context.Context, tx *gorm.DB, pred *stats.Composer) (int64, error) {
	return sr.assignments(ctx, tx, pred, "ficha_tematica")
}

func (sr *statsRepo) assignments(ctx context.Context, tx *gorm.DB, pred *stats.Composer, joinTable string) (int64, error) {
	cond, args := pred.SQL()
	var count int64
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT count(*)
			FROM ficha f
			JOIN %s j ON j.ficha_id = f.id
			WHERE %s`, joinTable, cond),
		args...,
	).Scan(&count).Error
	if err != nil {
		return 0, sr.wrap("assignments "+joinTable, err)
	}
	return count, nil
}

func (sr *statsRepo) CountByPortal(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error) {
	cond, args := pred.SQL()
	var rows []GroupCount
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT p.clave AS clave, p.nombre AS nombre, count(DISTINCT f.id) AS cnt
			FROM ficha f
			JOIN ficha_portal fp ON fp.ficha_id = f.id
			JOIN portal p ON p.id = fp.portal_id AND p.deleted_at IS NULL
			WHERE %s
			GROUP BY p.clave, p.nombre`, cond),
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, sr.wrap("CountByPortal", err)
	}
	return rows, nil
}

func (sr *statsRepo) CountByAmbito(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error) {
	cond, args := pred.SQL()
	var rows []GroupCount
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT f.ambito AS clave, f.ambito AS nombre, count(DISTINCT f.id) AS cnt
			FROM ficha f
			WHERE %s
			GROUP BY f.ambito`, cond),
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, sr.wrap("CountByAmbito", err)
	}
	return rows, nil
}

func (sr *statsRepo) CountByTematica(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error) {
	cond, args := pred.SQL()
	var rows []GroupCount
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT t.clave AS clave, t.nombre AS nombre, count(DISTINCT f.id) AS cnt
			FROM ficha f
			JOIN ficha_tematica ft ON ft.ficha_id = f.id
			JOIN tematica t ON t.id = ft.tematica_id AND t.deleted_at IS NULL
			WHERE %s
			GROUP BY t.clave, t.nombre`, cond),
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, sr.wrap("CountByTematica", err)
	}
	return rows, nil
}

func (sr *statsRepo) CountByTramite(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]GroupCount, error) {
	cond, args := pred.SQL()
	var rows []GroupCount
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT f.tramite AS clave, f.tramite AS nombre, count(DISTINCT f.id) AS cnt
			FROM ficha f
			WHERE %s
			GROUP BY f.tramite`, cond),
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, sr.wrap("CountByTramite", err)
	}
	return rows, nil
}

// EXTRACT on timestamptz evaluates in the session timezone; the buckets
// must stay anchored to UTC like the window bounds, hence AT TIME ZONE.
func (sr *statsRepo) CountByMonth(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]MonthCount, error) {
	cond, args := pred.SQL()
	var rows []MonthCount
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT EXTRACT(YEAR FROM (f.created_at AT TIME ZONE 'UTC'))::int AS anio,
			       EXTRACT(MONTH FROM (f.created_at AT TIME ZONE 'UTC'))::int AS mes,
			       count(DISTINCT f.id) AS cnt
			FROM ficha f
			WHERE %s
			GROUP BY 1, 2`, cond),
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, sr.wrap("CountByMonth", err)
	}
	return rows, nil
}

func (sr *statsRepo) CountByMonthAndPortal(ctx context.Context, tx *gorm.DB, pred *stats.Composer) ([]MonthGroupCount, error) {
	cond, args := pred.SQL()
	var rows []MonthGroupCount
	err := sr.resolve(tx).WithContext(ctx).Raw(
		fmt.Sprintf(`
			SELECT EXTRACT(YEAR FROM (f.created_at AT TIME ZONE 'UTC'))::int AS anio,
			       EXTRACT(MONTH FROM (f.created_at AT TIME ZONE 'UTC'))::int AS mes,
			       p.clave AS clave,
			       count(DISTINCT f.id) AS cnt
			FROM ficha f
			JOIN ficha_portal fp ON fp.ficha_id = f.id
			JOIN portal p ON p.id = fp.portal_id AND p.deleted_at IS NULL
			WHERE %s
			GROUP BY 1, 2, 3`, cond),
		args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, sr.wrap("CountByMonthAndPortal", err)
	}
	return rows, nil
}

func (sr *statsRepo) ObservedSpan(ctx context.Context, tx *gorm.DB) (time.Time, time.Time, bool, error) {
	var row struct {
		MinAt *time.Time `gorm:"column:min_at"`
		MaxAt *time.Time `gorm:"column:max_at"`
	}
	err := sr.resolve(tx).WithContext(ctx).Raw(`
		SELECT min(created_at) AS min_at, max(created_at) AS max_at
		FROM ficha
		WHERE deleted_at IS NULL
	`).Scan(&row).Error
	if err != nil {
		return time.Time{}, time.Time{}, false, sr.wrap("ObservedSpan", err)
	}
	if row.MinAt == nil || row.MaxAt == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return row.MinAt.UTC(), row.MaxAt.UTC(), true, nil
}

func (sr *statsRepo) wrap(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sr.log.Error("query failed", "op", op, "pg_code", pgErr.Code, "error", err)
	} else {
		sr.log.Error("query failed", "op", op, "error", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
