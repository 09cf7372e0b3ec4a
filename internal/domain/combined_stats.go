package domain

import "math"

// CombinedStats é a soma das métricas de um subconjunto de campanhas.
// Não tem identidade própria e é sempre recalculado.
type CombinedStats struct {
	Campaigns        int     `json:"campaigns"`
	ProspectsEmailed int     `json:"prospects_emailed"`
	Replies          int     `json:"replies"`
	PositiveReplies  int     `json:"positive_replies"`
	PipelineValue    float64 `json:"pipeline_value"`
	ReplyRate        float64 `json:"reply_rate"`
	PositiveRate     float64 `json:"positive_rate"`
}

// Combine soma as campanhas informadas. O valor de pipeline é acumulado em centavos
// para que a ordem de entrada não altere o resultado.
func Combine(campaigns []NormalizedCampaign) CombinedStats {
	stats := CombinedStats{}
	var pipelineCents int64

	for _, c := range campaigns {
		stats.Campaigns++
		stats.ProspectsEmailed += c.ProspectsEmailed
		stats.Replies += c.Replies
		stats.PositiveReplies += c.PositiveReplies
		pipelineCents += toCents(c.PipelineValueOrZero())
	}

	stats.PipelineValue = float64(pipelineCents) / 100
	stats.ReplyRate = ReplyRate(stats.ProspectsEmailed, stats.Replies)
	stats.PositiveRate = PositiveRate(stats.Replies, stats.PositiveReplies)

	return stats
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
