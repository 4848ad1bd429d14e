package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-review-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

const (
	clientsTable = "clients c"
)

type ClientRepository interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, status []domain.ClientStatus) ([]*domain.Client, error)
	ListClientsWithActiveAccount(ctx context.Context, platform domain.Platform) ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.company_name, c.status, c.created_at").
		From(clientsTable).
		Where(squirrel.Eq{"c.id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client := &domain.Client{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.CompanyName,
		&client.Status,
		&client.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) ListClients(ctx context.Context, status []domain.ClientStatus) ([]*domain.Client, error) {
	queryBuilder := squirrel.
		Select("c.id, c.company_name, c.status, c.created_at").
		From(clientsTable).
		OrderBy("c.company_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": status})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.list(ctx, query, args)
}

// ListClientsWithActiveAccount retorna os clientes ativos com ao menos uma conta ativa na plataforma
func (r *clientRepository) ListClientsWithActiveAccount(ctx context.Context, platform domain.Platform) ([]*domain.Client, error) {
	query, args, err := buildClientsWithActiveAccountQuery(platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.list(ctx, query, args)
}

func buildClientsWithActiveAccountQuery(platform domain.Platform) (string, []interface{}, error) {
	return squirrel.
		Select("DISTINCT c.id, c.company_name, c.status, c.created_at").
		From(clientsTable).
		Join("client_ad_accounts caa ON caa.client_id = c.id").
		Where(squirrel.Eq{
			"c.status":     domain.ClientStatusActive,
			"caa.status":   domain.AdAccountStatusActive,
			"caa.platform": platform,
		}).
		OrderBy("c.company_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *clientRepository) list(ctx context.Context, query string, args []interface{}) ([]*domain.Client, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(
			&client.ID,
			&client.CompanyName,
			&client.Status,
			&client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return clients, nil
}
