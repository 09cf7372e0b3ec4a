package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

const campaignAnalyticsTable = "campaign_analytics"

var campaignAnalyticsColumns = []string{
	"campaign_id",
	"sequencer",
	"user_id",
	"api_key",
	"name",
	"status",
	"sent_count",
	"unique_sent_count",
	"reply_count",
	"interested_count",
	"total_count",
	"bounce_count",
	"unsubscribed_count",
	"revenue",
	"data_fetched_at",
}

// AnalyticsWriter grava um registro; dentro de WithTransaction usa a transação corrente
type AnalyticsWriter interface {
	Upsert(ctx context.Context, record domain.CampaignAnalyticsRecord) error
}

type CampaignAnalyticsRepository interface {
	AnalyticsWriter
	WithTransaction(ctx context.Context, fn func(AnalyticsWriter) error) error
	ListByUser(ctx context.Context, userID string, sequencer *domain.Sequencer) ([]domain.CampaignAnalyticsRecord, error)
	ListByCampaignIDs(ctx context.Context, userID string, campaignIDs []string) ([]domain.CampaignAnalyticsRecord, error)
	RefreshCombinedStats(ctx context.Context) error
}

type campaignAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewCampaignAnalyticsRepository(conn *postgres.Connection) CampaignAnalyticsRepository {
	return &campaignAnalyticsRepository{
		conn: conn,
	}
}

type analyticsWriter struct {
	exec postgres.Executor
}

func (r *campaignAnalyticsRepository) Upsert(ctx context.Context, record domain.CampaignAnalyticsRecord) error {
	return (&analyticsWriter{exec: r.conn}).Upsert(ctx, record)
}

func (r *campaignAnalyticsRepository) WithTransaction(ctx context.Context, fn func(AnalyticsWriter) error) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return fn(&analyticsWriter{exec: tx})
	})
}

func (w *analyticsWriter) Upsert(ctx context.Context, record domain.CampaignAnalyticsRecord) error {
	var revenue sql.NullFloat64
	if record.Revenue != nil {
		revenue = sql.NullFloat64{Float64: *record.Revenue, Valid: true}
	}

	query := squirrel.StatementBuilder.
		Insert(campaignAnalyticsTable).
		Columns(campaignAnalyticsColumns...).
		Values(
			record.CampaignID,
			record.Sequencer.String(),
			record.UserID,
			record.APIKey,
			record.Name,
			record.Status,
			record.SentCount,
			record.UniqueSentCount,
			record.ReplyCount,
			record.InterestedCount,
			record.TotalCount,
			record.BounceCount,
			record.UnsubscribedCount,
			revenue,
			record.DataFetchedAt,
		).
		Suffix(`
			ON CONFLICT (campaign_id, sequencer, user_id) DO UPDATE SET
				api_key = EXCLUDED.api_key,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				sent_count = EXCLUDED.sent_count,
				unique_sent_count = EXCLUDED.unique_sent_count,
				reply_count = EXCLUDED.reply_count,
				interested_count = EXCLUDED.interested_count,
				total_count = EXCLUDED.total_count,
				bounce_count = EXCLUDED.bounce_count,
				unsubscribed_count = EXCLUDED.unsubscribed_count,
				revenue = EXCLUDED.revenue,
				data_fetched_at = EXCLUDED.data_fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := w.exec.ExecContext(ctx, sqlQuery, args...); err != nil {
		return dbError(err)
	}

	return nil
}

func (r *campaignAnalyticsRepository) ListByUser(ctx context.Context, userID string, sequencer *domain.Sequencer) ([]domain.CampaignAnalyticsRecord, error) {
	where := squirrel.Eq{"user_id": userID}
	if sequencer != nil {
		where["sequencer"] = sequencer.String()
	}

	return r.list(ctx, where)
}

func (r *campaignAnalyticsRepository) ListByCampaignIDs(ctx context.Context, userID string, campaignIDs []string) ([]domain.CampaignAnalyticsRecord, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}

	return r.list(ctx, squirrel.Eq{"user_id": userID, "campaign_id": campaignIDs})
}

func (r *campaignAnalyticsRepository) list(ctx context.Context, where squirrel.Eq) ([]domain.CampaignAnalyticsRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(campaignAnalyticsColumns...).
		From(campaignAnalyticsTable).
		Where(where).
		OrderBy("sequencer ASC", "campaign_id ASC").
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

	records := make([]domain.CampaignAnalyticsRecord, 0)

	for rows.Next() {
		record, err := deserializeCampaignAnalytics(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar o registro: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return records, nil
}

func deserializeCampaignAnalytics(rows *sql.Rows) (*domain.CampaignAnalyticsRecord, error) {
	record := &domain.CampaignAnalyticsRecord{}

	var (
		sequencer string
		status    sql.NullString
		revenue   sql.NullFloat64
	)

	if err := rows.Scan(
		&record.CampaignID,
		&sequencer,
		&record.UserID,
		&record.APIKey,
		&record.Name,
		&status,
		&record.SentCount,
		&record.UniqueSentCount,
		&record.ReplyCount,
		&record.InterestedCount,
		&record.TotalCount,
		&record.BounceCount,
		&record.UnsubscribedCount,
		&revenue,
		&record.DataFetchedAt,
	); err != nil {
		return nil, err
	}

	record.Sequencer = domain.Sequencer(sequencer)
	record.Status = status.String
	if revenue.Valid {
		v := revenue.Float64
		record.Revenue = &v
	}

	return record, nil
}

// RefreshCombinedStats recalcula a tabela agregada mantida pelo banco
func (r *campaignAnalyticsRepository) RefreshCombinedStats(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, "SELECT update_combined_stats()"); err != nil {
		return dbError(err)
	}

	return nil
}
