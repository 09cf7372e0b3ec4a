package domain

import (
	"errors"
	"strings"
)

// Sequencer identifica o provedor de campanhas de onde os dados vieram
type Sequencer string

const (
	SequencerSmartlead Sequencer = "smartlead"
	SequencerPipl      Sequencer = "pipl"
	SequencerInstantly Sequencer = "instantly"
)

var ErrInvalidSequencer = errors.New("invalid sequencer")

// Sequencers lista os provedores suportados
var Sequencers = []Sequencer{SequencerSmartlead, SequencerPipl, SequencerInstantly}

func ParseSequencer(s string) (Sequencer, error) {
	switch Sequencer(strings.ToLower(strings.TrimSpace(s))) {
	case SequencerSmartlead:
		return SequencerSmartlead, nil
	case SequencerPipl:
		return SequencerPipl, nil
	case SequencerInstantly:
		return SequencerInstantly, nil
	}

	return "", ErrInvalidSequencer
}

func (s Sequencer) String() string {
	return string(s)
}

// RequiresWorkspace indica se o provedor exige workspace_id junto da api key
func (s Sequencer) RequiresWorkspace() bool {
	return s == SequencerPipl
}
