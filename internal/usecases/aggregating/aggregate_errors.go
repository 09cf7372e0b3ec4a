package aggregating

import (
	"errors"
	"fmt"
)

var ErrNoCampaignsSelected = errors.New("no campaigns selected")

// PersistError indica qual campanha do lote falhou; o lote inteiro foi desfeito
type PersistError struct {
	Index      int
	CampaignID string
	Err        error
}

func (e *PersistError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("persist batch: %s", e.Err.Error())
	}
	return fmt.Sprintf("persist campaign %s (index %d): %s", e.CampaignID, e.Index, e.Err.Error())
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
