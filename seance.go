package brvmwatch

import (
	"github.com/esmelobi/brvm-watch/date"
	"github.com/shopspring/decimal"
)

// Seance is one trading session of the exchange, as extracted from the daily
// bulletin. A Seance is immutable once fetched: the next fetch supersedes the
// whole series, nothing is ever patched in place.
type Seance struct {
	Date   date.Date `json:"date"`
	Number int       `json:"seance_num"`

	// The three headline indices with their daily and annual variations.
	Composite        *decimal.Decimal `json:"composite"`
	VarComposite     *float64         `json:"var_composite"`
	VarCompositeYear *float64         `json:"var_composite_annuelle"`
	BRVM30           *decimal.Decimal `json:"brvm30"`
	VarBRVM30        *float64         `json:"var_brvm30"`
	VarBRVM30Year    *float64         `json:"var_brvm30_annuelle"`
	Prestige         *decimal.Decimal `json:"prestige"`
	VarPrestige      *float64         `json:"var_prestige"`
	VarPrestigeYear  *float64         `json:"var_prestige_annuelle"`

	Capitalization *int64 `json:"capitalisation"`
	TotalVolume    *int64 `json:"volume_total"`
	TotalValue     *int64 `json:"valeur_totale"`

	Listed    *int64 `json:"nb_titres"`
	Advancing *int64 `json:"nb_hausse"`
	Declining *int64 `json:"nb_baisse"`
	Unchanged *int64 `json:"nb_inchange"`
}

// UploadResult is the confirmation returned after a bulletin is accepted.
type UploadResult struct {
	Date   date.Date `json:"date"`
	Number int       `json:"seance_num"`
}

// Stats are the database-level counters reported by the backend,
// displayed unmodified.
type Stats struct {
	Seances     int64
	Cours       int64
	Conseils    int64
	FirstSeance string
	LastSeance  string
}
