package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

type BatchProgressRepository interface {
	StartProgress(ctx context.Context, platform domain.Platform, totalClients int) (*domain.BatchProgress, error)
	AdvanceProgress(ctx context.Context, id string, processedClients int) error
	FinishProgress(ctx context.Context, id string, status domain.BatchProgressStatus) error
	GetLatestProgress(ctx context.Context, platform domain.Platform) (*domain.BatchProgress, error)
}

type batchProgressRepository struct {
	conn *postgres.Connection
}

func NewBatchProgressRepository(conn *postgres.Connection) BatchProgressRepository {
	return &batchProgressRepository{
		conn: conn,
	}
}

// StartProgress abre um novo progresso. Registros "running" da plataforma iniciados há mais de
// domain.BatchProgressStaleAfter são encerrados como failed na mesma transação. Execuções mais
// recentes continuam intactas, mesmo que outro lote tenha sido disparado em paralelo.
func (r *batchProgressRepository) StartProgress(ctx context.Context, platform domain.Platform, totalClients int) (*domain.BatchProgress, error) {
	progress := &domain.BatchProgress{
		ID:           uuid.NewString(),
		Platform:     platform,
		Status:       domain.BatchProgressRunning,
		TotalClients: totalClients,
		StartedAt:    time.Now(),
	}

	closeSQL, closeArgs, err := buildCloseAbandonedProgressQuery(platform, progress.StartedAt.Add(-domain.BatchProgressStaleAfter))
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	insertSQL, insertArgs, err := buildInsertProgressQuery(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, closeSQL, closeArgs...); err != nil {
			return wrapExecError(err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return wrapExecError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return progress, nil
}

func buildCloseAbandonedProgressQuery(platform domain.Platform, startedBefore time.Time) (string, []interface{}, error) {
	return squirrel.
		Update("batch_review_progress").
		Set("status", domain.BatchProgressFailed).
		Set("completed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"platform": platform, "status": domain.BatchProgressRunning}).
		Where(squirrel.Lt{"started_at": startedBefore}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildInsertProgressQuery(progress *domain.BatchProgress) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert("batch_review_progress").
		Columns("id", "platform", "status", "total_clients", "processed_clients", "started_at").
		Values(progress.ID, progress.Platform, progress.Status, progress.TotalClients, 0, progress.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *batchProgressRepository) AdvanceProgress(ctx context.Context, id string, processedClients int) error {
	return r.update(ctx, id, map[string]interface{}{
		"processed_clients": processedClients,
	})
}

func (r *batchProgressRepository) FinishProgress(ctx context.Context, id string, status domain.BatchProgressStatus) error {
	return r.update(ctx, id, map[string]interface{}{
		"status":       status,
		"completed_at": squirrel.Expr("NOW()"),
	})
}

func (r *batchProgressRepository) update(ctx context.Context, id string, fields map[string]interface{}) error {
	query, args, err := squirrel.
		Update("batch_review_progress").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

func (r *batchProgressRepository) GetLatestProgress(ctx context.Context, platform domain.Platform) (*domain.BatchProgress, error) {
	queryBuilder := squirrel.
		Select("bp.id, bp.platform, bp.status, bp.total_clients, bp.processed_clients, bp.started_at, bp.completed_at").
		From("batch_review_progress bp").
		OrderBy("bp.started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"bp.platform": platform})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	progress := &domain.BatchProgress{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&progress.ID,
		&progress.Platform,
		&progress.Status,
		&progress.TotalClients,
		&progress.ProcessedClients,
		&progress.StartedAt,
		&progress.CompletedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return progress, nil
}
