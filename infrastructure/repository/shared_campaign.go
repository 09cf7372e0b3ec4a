package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

const sharedCampaignsTable = "shared_campaigns"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SharedCampaignRepository interface {
	Create(ctx context.Context, share *domain.SharedCampaign) error
	GetByToken(ctx context.Context, token string) (*domain.SharedCampaign, error)
}

type sharedCampaignRepository struct {
	conn *postgres.Connection
}

func NewSharedCampaignRepository(conn *postgres.Connection) SharedCampaignRepository {
	return &sharedCampaignRepository{
		conn: conn,
	}
}

// sharedSnapshot é o conteúdo da coluna data (jsonb)
type sharedSnapshot struct {
	Campaigns         []domain.NormalizedCampaign `json:"campaigns"`
	ShowPipelineValue bool                        `json:"showPipelineValue"`
	Sequencer         domain.Sequencer            `json:"sequencer"`
}

func (r *sharedCampaignRepository) Create(ctx context.Context, share *domain.SharedCampaign) error {
	data, err := json.Marshal(sharedSnapshot{
		Campaigns:         share.Campaigns,
		ShowPipelineValue: share.ShowPipelineValue,
		Sequencer:         share.Sequencer,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(sharedCampaignsTable).
		Columns("share_token", "user_id", "sequencer", "data").
		Values(share.Token, share.UserID, share.Sequencer.String(), string(data)).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&share.ID, &share.CreatedAt); err != nil {
		return dbError(err)
	}

	return nil
}

// GetByToken retorna nil, nil quando o token não existe
func (r *sharedCampaignRepository) GetByToken(ctx context.Context, token string) (*domain.SharedCampaign, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "share_token", "user_id", "sequencer", "data", "created_at").
		From(sharedCampaignsTable).
		Where(squirrel.Eq{"share_token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	share := &domain.SharedCampaign{}
	var (
		sequencer string
		data      []byte
	)

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&share.ID,
		&share.Token,
		&share.UserID,
		&sequencer,
		&data,
		&share.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar compartilhamento: %w", err)
	}

	var snapshot sharedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("erro ao deserializar snapshot: %w", err)
	}

	share.Sequencer = domain.Sequencer(sequencer)
	share.Campaigns = snapshot.Campaigns
	share.ShowPipelineValue = snapshot.ShowPipelineValue

	return share, nil
}
