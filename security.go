package brvmwatch

import (
	"github.com/esmelobi/brvm-watch/date"
	"github.com/shopspring/decimal"
)

// Security is the latest known state of one listed security.
// Nullable fields are pointers: a security that did not trade on the last
// séance has no close, no volume, no variation.
type Security struct {
	Symbol      string `json:"symbole"`
	Title       string `json:"titre"`
	Compartment string `json:"compartiment"` // PRESTIGE or PRINCIPAL
	Sector      Sector `json:"secteur_code"`

	Previous  *decimal.Decimal `json:"cours_precedent"`
	Open      *decimal.Decimal `json:"cours_ouverture"`
	Close     *decimal.Decimal `json:"cours_cloture"`
	Reference *decimal.Decimal `json:"cours_reference"`

	VarDay  *float64 `json:"variation_jour"`
	VarYear *float64 `json:"variation_annuelle"`

	Volume *int64 `json:"volume"`
	Value  *int64 `json:"valeur_seance"`

	Dividend     *decimal.Decimal `json:"dividende_montant"`
	DividendDate *date.Date       `json:"dividende_date"`
	NetYield     *float64         `json:"rendement_net"`
	PER          *float64         `json:"per"`
}

// PricePoint is one (date, close) pair of a security's price history.
type PricePoint struct {
	Date  date.Date       `json:"date"`
	Close decimal.Decimal `json:"cours"`
}

// SecurityDetail is a Security plus its full price history, served by the
// per-symbol endpoint.
type SecurityDetail struct {
	Security
	History []PricePoint `json:"historique"`
}

// PriceHistory returns the history as a chronological series, whatever order
// the backend sent the points in.
func (d *SecurityDetail) PriceHistory() *date.History[decimal.Decimal] {
	h := new(date.History[decimal.Decimal])
	for _, p := range d.History {
		h.Append(p.Date, p.Close)
	}
	return h
}
