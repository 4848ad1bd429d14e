package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

type CampaignHealthRepository interface {
	ListLatestCampaignHealth(ctx context.Context, platform domain.Platform) ([]*domain.CampaignHealth, error)
	UpsertCampaignHealth(ctx context.Context, health *domain.CampaignHealth) error
}

type campaignHealthRepository struct {
	conn *postgres.Connection
}

func NewCampaignHealthRepository(conn *postgres.Connection) CampaignHealthRepository {
	return &campaignHealthRepository{
		conn: conn,
	}
}

func (r *campaignHealthRepository) ListLatestCampaignHealth(ctx context.Context, platform domain.Platform) ([]*domain.CampaignHealth, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (ch.client_id, ch.account_id) ch.client_id, ch.platform, ch.account_id, ch.snapshot_date, " +
			"ch.active_campaigns_count, ch.unserved_campaigns_count, ch.updated_at").
		From("campaign_health ch").
		Where(squirrel.Eq{"ch.platform": platform}).
		OrderBy("ch.client_id", "ch.account_id", "ch.snapshot_date DESC").
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

	items := make([]*domain.CampaignHealth, 0)
	for rows.Next() {
		h := &domain.CampaignHealth{}
		if err := rows.Scan(
			&h.ClientID,
			&h.Platform,
			&h.AccountID,
			&h.SnapshotDate,
			&h.ActiveCampaignsCount,
			&h.UnservedCampaignsCount,
			&h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a saúde das campanhas: %w", err)
		}
		items = append(items, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return items, nil
}

func (r *campaignHealthRepository) UpsertCampaignHealth(ctx context.Context, health *domain.CampaignHealth) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_health").
		Columns("client_id", "platform", "account_id", "snapshot_date", "active_campaigns_count", "unserved_campaigns_count", "updated_at").
		Values(
			health.ClientID,
			health.Platform,
			health.AccountID,
			health.SnapshotDate.Format(dateLayout),
			health.ActiveCampaignsCount,
			health.UnservedCampaignsCount,
			squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (client_id, account_id, snapshot_date) DO UPDATE SET
				active_campaigns_count = EXCLUDED.active_campaigns_count,
				unserved_campaigns_count = EXCLUDED.unserved_campaigns_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}
