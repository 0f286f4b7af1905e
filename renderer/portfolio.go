package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	brvmwatch "github.com/esmelobi/brvm-watch"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the portfolio screen. When no position has a
// known current price the P/L line shows the placeholder, never zero.
func PortfolioMarkdown(r *brvmwatch.PortfolioReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portefeuille virtuel, %s titres par position", r.Unit))

	invested := brvmwatch.Placeholder
	current := brvmwatch.Placeholder
	pl := brvmwatch.Placeholder
	if r.Defined {
		invested = r.Aggregate.Invested.String()
		current = r.Aggregate.Current.String()
		v := float64(r.Aggregate.PL)
		pl = fmt.Sprintf("%s %s", badge(&v), r.Aggregate.PL.SignedString())
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold("Plus/moins-value"),
			md.Bold(pl),
		},
		Rows: [][]string{
			{"Montant investi", invested},
			{"Valeur actuelle", current},
			{"Positions valorisées", strconv.Itoa(r.Aggregate.Positions)},
			{"Positions sans cours", strconv.Itoa(r.Aggregate.Excluded)},
		},
	})

	doc.H2("Base de données")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Séances", strconv.FormatInt(r.Stats.Seances, 10)},
			{"Cours", strconv.FormatInt(r.Stats.Cours, 10)},
			{"Conseils", strconv.FormatInt(r.Stats.Conseils, 10)},
			{"Première séance", r.Stats.FirstSeance},
			{"Dernière séance", r.Stats.LastSeance},
		},
	})

	doc.Build()
	return buf.String()
}
