package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/larscobian/Pizzana-Dashboard/infrastructure/database/postgres"
	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/larscobian/Pizzana-Dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	periodKPIsTable   = "period_kpis"
	periodKPIsColumns = "pk.id, pk.period, pk.kpi, pk.created_at, pk.updated_at"
)

//go:generate mockgen -source=period_kpi.go -destination=mocks/period_kpi.go -package=mocks

// PeriodKPIRepository guarda o histórico de KPIs mensais lidos da planilha
type PeriodKPIRepository interface {
	GetByPeriod(ctx context.Context, period string) (*domain.PeriodKPIEntry, error)
	GetByPeriodRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PeriodKPIEntry, error)
	SaveOrUpdate(ctx context.Context, entry *domain.PeriodKPIEntry) error
	GetAllPeriods(ctx context.Context) ([]string, error)
}

type periodKPIRepository struct {
	conn postgres.Queryer
}

func NewPeriodKPIRepository(conn postgres.Queryer) PeriodKPIRepository {
	return &periodKPIRepository{
		conn: conn,
	}
}

func (r *periodKPIRepository) GetByPeriod(ctx context.Context, period string) (*domain.PeriodKPIEntry, error) {
	query, args, err := squirrel.
		Select(periodKPIsColumns).
		From(periodKPIsTable + " pk").
		Where(squirrel.Eq{"pk.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanPeriodKPI(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear KPI mensal: %w", err)
	}

	return entry, nil
}

func (r *periodKPIRepository) GetByPeriodRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PeriodKPIEntry, error) {
	sqlQuery, args, err := buildPeriodRangeQuery(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PeriodKPIEntry, 0)
	for rows.Next() {
		entry, err := scanPeriodKPI(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear KPIs mensais: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *periodKPIRepository) SaveOrUpdate(ctx context.Context, entry *domain.PeriodKPIEntry) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID: %w", err)
		}
		entry.ID = id
	}

	sqlQuery, args, err := buildUpsertQuery(entry)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetAllPeriods retorna todos os períodos gravados no formato yyyy-mm
func (r *periodKPIRepository) GetAllPeriods(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("period").
		From(periodKPIsTable).
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// buildPeriodRangeQuery seleciona os meses entre startDate e endDate, inclusive.
// O período yyyy-mm ordena como texto, então BETWEEN funciona direto.
func buildPeriodRangeQuery(startDate, endDate time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(periodKPIsColumns).
		From(periodKPIsTable + " pk").
		Where(squirrel.GtOrEq{"pk.period": startDate.Format("2006-01")}).
		Where(squirrel.LtOrEq{"pk.period": endDate.Format("2006-01")}).
		OrderBy("pk.period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildUpsertQuery(entry *domain.PeriodKPIEntry) (string, []interface{}, error) {
	kpiJSON, err := json.Marshal(entry.KPI)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar KPI para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(periodKPIsTable).
		Columns("id", "period", "kpi").
		Values(entry.ID, entry.KPI.Period(), kpiJSON).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				kpi = EXCLUDED.kpi,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPeriodKPI(row rowScanner) (*domain.PeriodKPIEntry, error) {
	entry := &domain.PeriodKPIEntry{}
	var kpiJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.Period,
		&kpiJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(kpiJSON, &entry.KPI); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de kpi: %w", err)
	}

	return entry, nil
}
