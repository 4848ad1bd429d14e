package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

const (
	customBudgetsColumns = "cb.id, cb.client_id, cb.platform, cb.budget_amount, cb.start_date, cb.end_date, " +
		"cb.is_active, cb.description, cb.created_at"
)

type CustomBudgetRepository interface {
	ListActiveCustomBudgets(ctx context.Context, platform domain.Platform) ([]*domain.CustomBudget, error)
	GetActiveCustomBudget(ctx context.Context, clientID string, platform domain.Platform, day time.Time) (*domain.CustomBudget, error)
}

type customBudgetRepository struct {
	conn *postgres.Connection
}

func NewCustomBudgetRepository(conn *postgres.Connection) CustomBudgetRepository {
	return &customBudgetRepository{
		conn: conn,
	}
}

func (r *customBudgetRepository) ListActiveCustomBudgets(ctx context.Context, platform domain.Platform) ([]*domain.CustomBudget, error) {
	query, args, err := squirrel.
		Select(customBudgetsColumns).
		From("custom_budgets cb").
		Where(squirrel.Eq{"cb.platform": platform, "cb.is_active": true}).
		OrderBy("cb.client_id ASC", "cb.start_date DESC").
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

	budgets := make([]*domain.CustomBudget, 0)
	for rows.Next() {
		cb, err := scanCustomBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar o orçamento personalizado: %w", err)
		}
		budgets = append(budgets, cb)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return budgets, nil
}

// GetActiveCustomBudget retorna o orçamento personalizado ativo que cobre o dia informado.
// Havendo mais de um, vale o de início mais recente.
func (r *customBudgetRepository) GetActiveCustomBudget(ctx context.Context, clientID string, platform domain.Platform, day time.Time) (*domain.CustomBudget, error) {
	query, args, err := buildActiveCustomBudgetQuery(clientID, platform, day)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cb, err := scanCustomBudget(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return cb, nil
}

func buildActiveCustomBudgetQuery(clientID string, platform domain.Platform, day time.Time) (string, []interface{}, error) {
	date := day.Format(dateLayout)

	return squirrel.
		Select(customBudgetsColumns).
		From("custom_budgets cb").
		Where(squirrel.Eq{"cb.client_id": clientID, "cb.platform": platform, "cb.is_active": true}).
		Where(squirrel.LtOrEq{"cb.start_date": date}).
		Where(squirrel.GtOrEq{"cb.end_date": date}).
		OrderBy("cb.start_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanCustomBudget(row scanner) (*domain.CustomBudget, error) {
	cb := &domain.CustomBudget{}

	if err := row.Scan(
		&cb.ID,
		&cb.ClientID,
		&cb.Platform,
		&cb.BudgetAmount,
		&cb.StartDate,
		&cb.EndDate,
		&cb.IsActive,
		&cb.Description,
		&cb.CreatedAt,
	); err != nil {
		return nil, err
	}

	return cb, nil
}
