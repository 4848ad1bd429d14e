package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

type BatchLogRepository interface {
	InsertBatchLog(ctx context.Context, record *domain.BatchRunRecord) error
	ListBatchLogs(ctx context.Context, platform domain.Platform, limit int) ([]*domain.BatchRunRecord, error)
}

type batchLogRepository struct {
	conn *postgres.Connection
}

func NewBatchLogRepository(conn *postgres.Connection) BatchLogRepository {
	return &batchLogRepository{
		conn: conn,
	}
}

func (r *batchLogRepository) InsertBatchLog(ctx context.Context, record *domain.BatchRunRecord) error {
	query, args, err := buildInsertBatchLogQuery(record)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func buildInsertBatchLogQuery(record *domain.BatchRunRecord) (string, []interface{}, error) {
	failed := record.FailedClients
	if failed == nil {
		failed = []domain.FailedClient{}
	}

	failedJSON, err := json.Marshal(failed)
	if err != nil {
		return "", nil, err
	}

	return squirrel.StatementBuilder.
		Insert("batch_review_logs").
		Columns(
			"id", "platform", "total_clients", "success_count", "error_count",
			"execution_time_ms", "global_updates_performed", "review_date", "failed_clients",
		).
		Values(
			record.ID,
			record.Platform,
			record.TotalClients,
			record.SuccessCount,
			record.ErrorCount,
			record.ExecutionTimeMs,
			record.GlobalUpdatesPerformed,
			record.ReviewDate.Format(dateLayout),
			string(failedJSON),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *batchLogRepository) ListBatchLogs(ctx context.Context, platform domain.Platform, limit int) ([]*domain.BatchRunRecord, error) {
	queryBuilder := squirrel.
		Select("bl.id, bl.platform, bl.total_clients, bl.success_count, bl.error_count, bl.execution_time_ms, " +
			"bl.global_updates_performed, bl.review_date, bl.failed_clients, bl.created_at").
		From("batch_review_logs bl").
		OrderBy("bl.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"bl.platform": platform})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.BatchRunRecord, 0)
	for rows.Next() {
		record := &domain.BatchRunRecord{}
		var failedJSON []byte

		if err := rows.Scan(
			&record.ID,
			&record.Platform,
			&record.TotalClients,
			&record.SuccessCount,
			&record.ErrorCount,
			&record.ExecutionTimeMs,
			&record.GlobalUpdatesPerformed,
			&record.ReviewDate,
			&failedJSON,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o log de execução: %w", err)
		}

		if len(failedJSON) > 0 {
			if err := json.Unmarshal(failedJSON, &record.FailedClients); err != nil {
				return nil, fmt.Errorf("erro ao deserializar clientes com falha: %w", err)
			}
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return records, nil
}
