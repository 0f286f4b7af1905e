package brvmwatch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/esmelobi/brvm-watch/date"
	"github.com/shopspring/decimal"
)

// AdviceType is the closed set of conseil types. The backend speaks French
// on the wire (ACHAT/VENTE/NEUTRE); constants keep English names.
type AdviceType int

const (
	Buy AdviceType = iota
	Sell
	Neutral
)

// ParseAdviceType parses a wire or user-typed advice type.
func ParseAdviceType(s string) (AdviceType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACHAT", "BUY":
		return Buy, nil
	case "VENTE", "SELL":
		return Sell, nil
	case "NEUTRE", "NEUTRAL":
		return Neutral, nil
	default:
		return Neutral, fmt.Errorf("unknown advice type %q (want ACHAT, VENTE or NEUTRE)", s)
	}
}

// String returns the wire value.
func (t AdviceType) String() string {
	switch t {
	case Buy:
		return "ACHAT"
	case Sell:
		return "VENTE"
	default:
		return "NEUTRE"
	}
}

func (t AdviceType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *AdviceType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAdviceType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Conseil is a curated advice position. While open it is re-fetched to pick
// up the backend-updated current price; it disappears from the active list
// only after the backend confirms closure.
type Conseil struct {
	ID        int64      `json:"id"`
	Date      date.Date  `json:"date_conseil"`
	Symbol    string     `json:"symbole"`
	Title     string     `json:"titre"`
	Type      AdviceType `json:"type"`
	Rationale string     `json:"commentaire"`

	Entry  *decimal.Decimal `json:"prix_entree"`
	Target *decimal.Decimal `json:"prix_cible"`
	Stop   *decimal.Decimal `json:"stop_loss"`

	// Backend-supplied, both nullable until a séance quotes the symbol.
	Current *decimal.Decimal `json:"cours_actuel"`
	Latent  *float64         `json:"plus_value_latente"`
}

// NewConseil is the payload of the conseil-creation endpoint.
type NewConseil struct {
	Symbol    string          `json:"symbole"`
	Type      AdviceType      `json:"type"`
	Entry     decimal.Decimal `json:"prix_entree"`
	Target    decimal.Decimal `json:"prix_cible"`
	Stop      decimal.Decimal `json:"stop_loss"`
	Rationale string          `json:"commentaire"`
}

// Validate checks the required fields before the payload reaches the network
// layer.
func (n NewConseil) Validate() error {
	if strings.TrimSpace(n.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	for _, p := range []struct {
		name  string
		value decimal.Decimal
	}{{"entry price", n.Entry}, {"target price", n.Target}, {"stop loss", n.Stop}} {
		if !p.value.IsPositive() {
			return fmt.Errorf("%s must be a positive number", p.name)
		}
	}
	return nil
}
