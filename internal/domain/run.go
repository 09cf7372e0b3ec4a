package domain

// RunPhase é o estado de uma execução de busca de estatísticas
type RunPhase string

const (
	RunPhaseAwaitingCredential RunPhase = "awaiting_credential"
	RunPhaseFetching           RunPhase = "fetching"
	RunPhaseCompleted          RunPhase = "completed"
)

// RunContext identifica o dono dos registros persistidos em uma execução
type RunContext struct {
	UserID string
	APIKey string
}

const (
	DropReasonFetch     = "fetch_failed"
	DropReasonNormalize = "normalize_failed"
	DropReasonInvalid   = "invalid"
)

// DroppedCampaign registra uma campanha que ficou fora do resultado
type DroppedCampaign struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

type RunResult struct {
	Sequencer Sequencer            `json:"sequencer"`
	Campaigns []NormalizedCampaign `json:"campaigns"`
	Combined  CombinedStats        `json:"combined"`
	Dropped   []DroppedCampaign    `json:"dropped"`
}
