package smartleaddomain

import (
	"bytes"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexInt aceita número, string numérica, string vazia ou null (os dois últimos viram 0).
// Valores fracionados são truncados.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	v, err := decodeNumeric(data)
	if err != nil {
		return err
	}

	*f = FlexInt(int(v))
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// FlexFloat guarda um valor opcional; Valid é falso quando o campo veio ausente, vazio ou null
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if isEmpty(data) {
		*f = FlexFloat{}
		return nil
	}

	v, err := decodeNumeric(data)
	if err != nil {
		return err
	}

	*f = FlexFloat{Value: v, Valid: true}
	return nil
}

// CampaignID aceita ID numérico ou string
type CampaignID string

func (c *CampaignID) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v == nil {
		*c = ""
		return nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Errorf("invalid campaign id %s: %w", string(data), err)
	}

	*c = CampaignID(s)
	return nil
}

func (c CampaignID) String() string {
	return string(c)
}

func decodeNumeric(data []byte) (float64, error) {
	if isEmpty(data) {
		return 0, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, err
	}

	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %s: %w", string(data), err)
	}

	return f, nil
}

func isEmpty(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return true
	}

	var s string
	if len(trimmed) > 0 && trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &s); err == nil && strings.TrimSpace(s) == "" {
			return true
		}
	}

	return false
}
