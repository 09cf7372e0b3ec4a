package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

func TestSharedCampaignRepository_Create(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, share *domain.SharedCampaign, err error)
	}{
		{
			name: "grava o snapshot e retorna id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO shared_campaigns").
					WithArgs("tok123", "user-1", "instantly", sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("s1", createdAt))
			},
			validate: func(t *testing.T, share *domain.SharedCampaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, "s1", share.ID)
				assert.Equal(t, createdAt, share.CreatedAt)
			},
		},
		{
			name: "token duplicado retorna ErrDuplicateKey",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO shared_campaigns").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "shared_campaigns_share_token_key"})
			},
			validate: func(t *testing.T, share *domain.SharedCampaign, err error) {
				assert.ErrorIs(t, err, ErrDuplicateKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			repo := NewSharedCampaignRepository(conn)
			tt.setup(mock)

			share := &domain.SharedCampaign{
				Token:     "tok123",
				UserID:    "user-1",
				Sequencer: domain.SequencerInstantly,
				Campaigns: []domain.NormalizedCampaign{{ID: "c1", ProspectsEmailed: 100, Replies: 12}},
			}
			err := repo.Create(context.Background(), share)

			tt.validate(t, share, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSharedCampaignRepository_GetByToken(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSharedCampaignRepository(conn)
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	data := []byte(`{"campaigns":[{"id":"c1","name":"Q3","sequencer":"instantly","prospects_emailed":100,"replies":12,"positive_replies":9,"reply_rate":12,"positive_rate":75}],"showPipelineValue":true,"sequencer":"instantly"}`)

	mock.ExpectQuery("SELECT (.+) FROM shared_campaigns WHERE share_token = \\$1").
		WithArgs("tok123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "share_token", "user_id", "sequencer", "data", "created_at"}).
			AddRow("s1", "tok123", "user-1", "instantly", data, createdAt))

	share, err := repo.GetByToken(context.Background(), "tok123")

	require.NoError(t, err)
	require.NotNil(t, share)
	assert.True(t, share.ShowPipelineValue)
	require.Len(t, share.Campaigns, 1)
	assert.Equal(t, 9, share.Campaigns[0].PositiveReplies)
	assert.Equal(t, 75.0, share.Campaigns[0].PositiveRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
