package domain

import "time"

// APIKey é a credencial de um provedor registrada por um usuário
type APIKey struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Sequencer   Sequencer `json:"sequencer"`
	APIKey      string    `json:"-"`
	WorkspaceID *string   `json:"workspace_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (k APIKey) Credential() Credential {
	cred := Credential{APIKey: k.APIKey}
	if k.WorkspaceID != nil {
		cred.WorkspaceID = *k.WorkspaceID
	}
	return cred
}
