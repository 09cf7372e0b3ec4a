package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

const apiKeysTable = "api_keys"

type APIKeyRepository interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.APIKey, error)
	ListAll(ctx context.Context) ([]*domain.APIKey, error)
	SaveOrUpdate(ctx context.Context, key *domain.APIKey) error
}

type apiKeyRepository struct {
	conn *postgres.Connection
}

func NewAPIKeyRepository(conn *postgres.Connection) APIKeyRepository {
	return &apiKeyRepository{
		conn: conn,
	}
}

// GetByAPIKey retorna nil, nil quando a chave não está cadastrada
func (r *apiKeyRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.APIKey, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "user_id", "sequencer", "api_key", "workspace_id", "created_at").
		From(apiKeysTable).
		Where(squirrel.Eq{"api_key": apiKey}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, sqlQuery, args...)

	key, err := deserializeAPIKey(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar api key: %w", err)
	}

	return key, nil
}

func (r *apiKeyRepository) ListAll(ctx context.Context) ([]*domain.APIKey, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "user_id", "sequencer", "api_key", "workspace_id", "created_at").
		From(apiKeysTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keys := make([]*domain.APIKey, 0)
	for rows.Next() {
		key, err := deserializeAPIKey(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar api key: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return keys, nil
}

// SaveOrUpdate mantém uma chave por usuário e sequencer
func (r *apiKeyRepository) SaveOrUpdate(ctx context.Context, key *domain.APIKey) error {
	var workspaceID sql.NullString
	if key.WorkspaceID != nil {
		workspaceID = sql.NullString{String: *key.WorkspaceID, Valid: true}
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(apiKeysTable).
		Columns("user_id", "sequencer", "api_key", "workspace_id").
		Values(key.UserID, key.Sequencer.String(), key.APIKey, workspaceID).
		Suffix(`
			ON CONFLICT (user_id, sequencer) DO UPDATE SET
				api_key = EXCLUDED.api_key,
				workspace_id = EXCLUDED.workspace_id
			RETURNING id, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&key.ID, &key.CreatedAt); err != nil {
		return dbError(err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func deserializeAPIKey(row scanner) (*domain.APIKey, error) {
	key := &domain.APIKey{}

	var (
		sequencer   string
		workspaceID sql.NullString
	)

	if err := row.Scan(
		&key.ID,
		&key.UserID,
		&sequencer,
		&key.APIKey,
		&workspaceID,
		&key.CreatedAt,
	); err != nil {
		return nil, err
	}

	key.Sequencer = domain.Sequencer(sequencer)
	if workspaceID.Valid {
		v := workspaceID.String
		key.WorkspaceID = &v
	}

	return key, nil
}
