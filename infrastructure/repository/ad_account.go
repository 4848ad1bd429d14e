package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

const (
	adAccountsTable   = "client_ad_accounts caa"
	adAccountsColumns = "caa.id, caa.client_id, caa.platform, caa.account_id, caa.account_name, caa.budget_amount, " +
		"caa.status, caa.is_primary, caa.balance, caa.balance_updated_at, caa.is_prepay, caa.created_at"
)

type AdAccountRepository interface {
	ListAccounts(ctx context.Context, platform domain.Platform, status []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	GetAccount(ctx context.Context, clientID string, platform domain.Platform, accountID string) (*domain.AdAccount, error)
	GetPrimaryAccount(ctx context.Context, clientID string, platform domain.Platform) (*domain.AdAccount, error)
	UpdateBalance(ctx context.Context, id string, balance domain.AccountBalance, updatedAt time.Time) error
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) ListAccounts(ctx context.Context, platform domain.Platform, status []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select(adAccountsColumns).
		From(adAccountsTable).
		OrderBy("caa.client_id ASC", "caa.is_primary DESC", "caa.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"caa.platform": platform})
	}

	if len(status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"caa.status": status})
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := scanAdAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *adAccountRepository) GetAccount(ctx context.Context, clientID string, platform domain.Platform, accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(adAccountsColumns).
		From(adAccountsTable).
		Where(squirrel.Eq{
			"caa.client_id":  clientID,
			"caa.platform":   platform,
			"caa.account_id": accountID,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

// GetPrimaryAccount retorna a conta principal ativa do cliente; sem principal, a conta ativa mais antiga
func (r *adAccountRepository) GetPrimaryAccount(ctx context.Context, clientID string, platform domain.Platform) (*domain.AdAccount, error) {
	query, args, err := buildPrimaryAccountQuery(clientID, platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func buildPrimaryAccountQuery(clientID string, platform domain.Platform) (string, []interface{}, error) {
	return squirrel.
		Select(adAccountsColumns).
		From(adAccountsTable).
		Where(squirrel.Eq{
			"caa.client_id": clientID,
			"caa.platform":  platform,
			"caa.status":    domain.AdAccountStatusActive,
		}).
		OrderBy("caa.is_primary DESC", "caa.created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *adAccountRepository) UpdateBalance(ctx context.Context, id string, balance domain.AccountBalance, updatedAt time.Time) error {
	query, args, err := squirrel.
		Update("client_ad_accounts").
		Set("balance", balance.Amount).
		Set("is_prepay", balance.IsPrepay).
		Set("balance_updated_at", updatedAt).
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

func (r *adAccountRepository) getOne(ctx context.Context, query string, args []interface{}) (*domain.AdAccount, error) {
	account, err := scanAdAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

var (
	_ scanner = (*sql.Row)(nil)
	_ scanner = (*sql.Rows)(nil)
)

func scanAdAccount(row scanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.ClientID,
		&acc.Platform,
		&acc.AccountID,
		&acc.AccountName,
		&acc.BudgetAmount,
		&acc.Status,
		&acc.IsPrimary,
		&acc.Balance,
		&acc.BalanceUpdatedAt,
		&acc.IsPrepay,
		&acc.CreatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
