package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.FromDB(db), mock
}

func newRecord(id string) domain.CampaignAnalyticsRecord {
	revenue := 1500.0
	return domain.CampaignAnalyticsRecord{
		CampaignID:      id,
		Sequencer:       domain.SequencerSmartlead,
		UserID:          "user-1",
		APIKey:          "key",
		Name:            "Campanha " + id,
		UniqueSentCount: 100,
		ReplyCount:      10,
		InterestedCount: 4,
		Revenue:         &revenue,
		DataFetchedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCampaignAnalyticsRepository_WithTransaction(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.CampaignAnalyticsRecord
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, err error)
	}{
		{
			name:    "grava todos os registros e faz commit",
			records: []domain.CampaignAnalyticsRecord{newRecord("1"), newRecord("2")},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO campaign_analytics").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO campaign_analytics").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "falha no terceiro registro desfaz a transação",
			records: []domain.CampaignAnalyticsRecord{newRecord("1"), newRecord("2"), newRecord("3")},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO campaign_analytics").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO campaign_analytics").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO campaign_analytics").WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			repo := NewCampaignAnalyticsRepository(conn)
			tt.setup(mock)

			err := repo.WithTransaction(context.Background(), func(w AnalyticsWriter) error {
				for _, record := range tt.records {
					if err := w.Upsert(context.Background(), record); err != nil {
						return err
					}
				}
				return nil
			})

			tt.validate(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCampaignAnalyticsRepository_ListByUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCampaignAnalyticsRepository(conn)

	fetchedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(campaignAnalyticsColumns).
		AddRow("1", "smartlead", "user-1", "key", "Campanha 1", "ACTIVE", 180, 100, 10, 4, 120, 2, 1, 1500.0, fetchedAt).
		AddRow("2", "smartlead", "user-1", "key", "Campanha 2", nil, 50, 40, 0, 0, 40, 0, 0, nil, fetchedAt)

	mock.ExpectQuery("SELECT (.+) FROM campaign_analytics WHERE sequencer = \\$1 AND user_id = \\$2").
		WithArgs("smartlead", "user-1").
		WillReturnRows(rows)

	sequencer := domain.SequencerSmartlead
	records, err := repo.ListByUser(context.Background(), "user-1", &sequencer)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 100, records[0].UniqueSentCount)
	assert.Equal(t, "ACTIVE", records[0].Status)
	require.NotNil(t, records[0].Revenue)
	assert.Equal(t, 1500.0, *records[0].Revenue)
	assert.Nil(t, records[1].Revenue)
	assert.Empty(t, records[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignAnalyticsRepository_ListByCampaignIDs(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCampaignAnalyticsRepository(conn)

	mock.ExpectQuery("SELECT (.+) FROM campaign_analytics WHERE campaign_id IN \\(\\$1,\\$2\\) AND user_id = \\$3").
		WithArgs("1", "2", "user-1").
		WillReturnRows(sqlmock.NewRows(campaignAnalyticsColumns))

	records, err := repo.ListByCampaignIDs(context.Background(), "user-1", []string{"1", "2"})

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())

	// sem IDs não consulta o banco
	records, err = repo.ListByCampaignIDs(context.Background(), "user-1", nil)
	assert.NoError(t, err)
	assert.Nil(t, records)
}

func TestCampaignAnalyticsRepository_RefreshCombinedStats(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCampaignAnalyticsRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("SELECT update_combined_stats()")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.RefreshCombinedStats(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
