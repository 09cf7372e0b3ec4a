package domain

import "math"

// ReplyRate retorna replies / prospectsEmailed em porcentagem. Sem envios a taxa é 0.
func ReplyRate(prospectsEmailed, replies int) float64 {
	if prospectsEmailed <= 0 {
		return 0
	}
	return float64(replies) * 100 / float64(prospectsEmailed)
}

// PositiveRate retorna positiveReplies / replies em porcentagem. Sem respostas a taxa é 0.
func PositiveRate(replies, positiveReplies int) float64 {
	if replies <= 0 {
		return 0
	}
	return float64(positiveReplies) * 100 / float64(replies)
}

// WithRates devolve uma cópia da campanha com as taxas derivadas calculadas
func (c NormalizedCampaign) WithRates() NormalizedCampaign {
	c.ReplyRate = ReplyRate(c.ProspectsEmailed, c.Replies)
	c.PositiveRate = PositiveRate(c.Replies, c.PositiveReplies)
	return c
}

// IsValidCampaign descarta campanhas com taxas NaN, sem envios ou com contadores negativos.
// Não é um erro: a campanha simplesmente fica fora da lista.
func IsValidCampaign(c NormalizedCampaign) bool {
	if math.IsNaN(c.ReplyRate) || math.IsNaN(c.PositiveRate) {
		return false
	}

	return c.ProspectsEmailed > 0 && c.Replies >= 0 && c.PositiveReplies >= 0
}
