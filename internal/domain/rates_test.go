package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyRate(t *testing.T) {
	tests := []struct {
		name     string
		emailed  int
		replies  int
		expected float64
	}{
		{name: "100 enviados e 10 respostas", emailed: 100, replies: 10, expected: 10.0},
		{name: "100 enviados e 12 respostas", emailed: 100, replies: 12, expected: 12.0},
		{name: "sem envios retorna zero", emailed: 0, replies: 0, expected: 0},
		{name: "sem envios com respostas retorna zero", emailed: 0, replies: 5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplyRate(tt.emailed, tt.replies))
		})
	}
}

func TestPositiveRate(t *testing.T) {
	tests := []struct {
		name     string
		replies  int
		positive int
		expected float64
	}{
		{name: "10 respostas e 4 positivas", replies: 10, positive: 4, expected: 40.0},
		{name: "12 respostas e 9 positivas", replies: 12, positive: 9, expected: 75.0},
		{name: "sem respostas retorna zero", replies: 0, positive: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PositiveRate(tt.replies, tt.positive))
		})
	}
}

func TestNormalizedCampaign_WithRates(t *testing.T) {
	c := NormalizedCampaign{ID: "1", ProspectsEmailed: 200, Replies: 50, PositiveReplies: 10}

	got := c.WithRates()

	assert.Equal(t, 25.0, got.ReplyRate)
	assert.Equal(t, 20.0, got.PositiveRate)
	// o valor original não é alterado
	assert.Zero(t, c.ReplyRate)
}

func TestIsValidCampaign(t *testing.T) {
	tests := []struct {
		name     string
		campaign NormalizedCampaign
		expected bool
	}{
		{
			name:     "campanha com envios é válida",
			campaign: NormalizedCampaign{ProspectsEmailed: 100, Replies: 10, PositiveReplies: 4}.WithRates(),
			expected: true,
		},
		{
			name:     "campanha sem envios é descartada",
			campaign: NormalizedCampaign{ProspectsEmailed: 0}.WithRates(),
			expected: false,
		},
		{
			name:     "respostas negativas são descartadas",
			campaign: NormalizedCampaign{ProspectsEmailed: 10, Replies: -1}.WithRates(),
			expected: false,
		},
		{
			name:     "respostas positivas negativas são descartadas",
			campaign: NormalizedCampaign{ProspectsEmailed: 10, Replies: 2, PositiveReplies: -1}.WithRates(),
			expected: false,
		},
		{
			name:     "taxa NaN é descartada",
			campaign: NormalizedCampaign{ProspectsEmailed: 10, ReplyRate: math.NaN()},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCampaign(tt.campaign))
		})
	}
}
