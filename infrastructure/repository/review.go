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
	reviewsColumns = "br.id, br.client_id, br.platform, br.account_id, br.account_name, br.review_date, " +
		"br.daily_budget_current, br.total_spent, br.using_custom_budget, br.custom_budget_id, br.custom_budget_amount, " +
		"br.custom_budget_start_date, br.custom_budget_end_date, br.warning_ignored_today, br.warning_ignored_date, " +
		"br.created_at, br.updated_at"
)

type ReviewRepository interface {
	ListLatestReviews(ctx context.Context, platform domain.Platform) ([]*domain.ReviewSnapshot, error)
	UpsertReview(ctx context.Context, review *domain.ReviewSnapshot) error
	IgnoreWarning(ctx context.Context, clientID string, platform domain.Platform, accountID string, day time.Time) error
}

type reviewRepository struct {
	conn *postgres.Connection
}

func NewReviewRepository(conn *postgres.Connection) ReviewRepository {
	return &reviewRepository{
		conn: conn,
	}
}

// ListLatestReviews retorna a revisão mais recente de cada (cliente, conta) da plataforma
func (r *reviewRepository) ListLatestReviews(ctx context.Context, platform domain.Platform) ([]*domain.ReviewSnapshot, error) {
	query, args, err := buildLatestReviewsQuery(platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.ReviewSnapshot, 0)
	for rows.Next() {
		review := &domain.ReviewSnapshot{}
		if err := rows.Scan(
			&review.ID,
			&review.ClientID,
			&review.Platform,
			&review.AccountID,
			&review.AccountName,
			&review.ReviewDate,
			&review.DailyBudgetCurrent,
			&review.TotalSpent,
			&review.UsingCustomBudget,
			&review.CustomBudgetID,
			&review.CustomBudgetAmount,
			&review.CustomBudgetStartDate,
			&review.CustomBudgetEndDate,
			&review.WarningIgnoredToday,
			&review.WarningIgnoredDate,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a revisão: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return reviews, nil
}

func buildLatestReviewsQuery(platform domain.Platform) (string, []interface{}, error) {
	return squirrel.
		Select("DISTINCT ON (br.client_id, br.account_id) " + reviewsColumns).
		From("budget_reviews br").
		Where(squirrel.Eq{"br.platform": platform}).
		OrderBy("br.client_id", "br.account_id", "br.review_date DESC", "br.updated_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// UpsertReview grava a revisão do dia. Em caso de conflito em (cliente, conta, data) a última escrita prevalece,
// preservando o alerta ignorado do dia.
func (r *reviewRepository) UpsertReview(ctx context.Context, review *domain.ReviewSnapshot) error {
	query, args, err := buildUpsertReviewQuery(review)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func buildUpsertReviewQuery(review *domain.ReviewSnapshot) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert("budget_reviews").
		Columns(
			"id", "client_id", "platform", "account_id", "account_name", "review_date",
			"daily_budget_current", "total_spent", "using_custom_budget", "custom_budget_id",
			"custom_budget_amount", "custom_budget_start_date", "custom_budget_end_date",
			"updated_at",
		).
		Values(
			review.ID,
			review.ClientID,
			review.Platform,
			review.AccountID,
			review.AccountName,
			review.ReviewDate.Format(dateLayout),
			review.DailyBudgetCurrent,
			review.TotalSpent,
			review.UsingCustomBudget,
			review.CustomBudgetID,
			review.CustomBudgetAmount,
			review.CustomBudgetStartDate,
			review.CustomBudgetEndDate,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (client_id, account_id, review_date) DO UPDATE SET
				platform = EXCLUDED.platform,
				account_name = EXCLUDED.account_name,
				daily_budget_current = EXCLUDED.daily_budget_current,
				total_spent = EXCLUDED.total_spent,
				using_custom_budget = EXCLUDED.using_custom_budget,
				custom_budget_id = EXCLUDED.custom_budget_id,
				custom_budget_amount = EXCLUDED.custom_budget_amount,
				custom_budget_start_date = EXCLUDED.custom_budget_start_date,
				custom_budget_end_date = EXCLUDED.custom_budget_end_date,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// IgnoreWarning marca o alerta de ajuste da revisão mais recente da conta como ignorado no dia.
// accountID vazio marca todas as contas do cliente na plataforma.
func (r *reviewRepository) IgnoreWarning(ctx context.Context, clientID string, platform domain.Platform, accountID string, day time.Time) error {
	query, args, err := buildIgnoreWarningQuery(clientID, platform, accountID, day)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func buildIgnoreWarningQuery(clientID string, platform domain.Platform, accountID string, day time.Time) (string, []interface{}, error) {
	latest := squirrel.
		Select("MAX(review_date)").
		From("budget_reviews").
		Where(squirrel.Eq{"client_id": clientID, "platform": platform})

	where := squirrel.Eq{"client_id": clientID, "platform": platform}
	if accountID != "" {
		where["account_id"] = accountID
		latest = latest.Where(squirrel.Eq{"account_id": accountID})
	}

	latestSQL, latestArgs, err := latest.ToSql()
	if err != nil {
		return "", nil, err
	}

	return squirrel.
		Update("budget_reviews").
		Set("warning_ignored_today", true).
		Set("warning_ignored_date", day.Format(dateLayout)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(where).
		Where(squirrel.Expr("review_date = ("+latestSQL+")", latestArgs...)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
