package renderer

import (
	"bytes"
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
	md "github.com/nao1215/markdown"
)

// MarketMarkdown renders the market screen. Headline fields are displayed
// exactly as fetched; only formatting is applied.
func MarketMarkdown(r *brvmwatch.MarketReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := r.Latest
	doc.H1(fmt.Sprintf("Marché BRVM, séance n°%d du %s", s.Number, s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Indice", "Clôture", "", "Var. jour", "Var. annuelle"},
		Rows: [][]string{
			{"BRVM Composite", brvmwatch.FormatNumber(s.Composite, 2),
				badge(s.VarComposite), brvmwatch.FormatPercent(s.VarComposite),
				brvmwatch.FormatPercent(s.VarCompositeYear)},
			{"BRVM 30", brvmwatch.FormatNumber(s.BRVM30, 2),
				badge(s.VarBRVM30), brvmwatch.FormatPercent(s.VarBRVM30),
				brvmwatch.FormatPercent(s.VarBRVM30Year)},
			{"BRVM Prestige", brvmwatch.FormatNumber(s.Prestige, 2),
				badge(s.VarPrestige), brvmwatch.FormatPercent(s.VarPrestige),
				brvmwatch.FormatPercent(s.VarPrestigeYear)},
		},
	})

	doc.H2("Activité")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Capitalisation", brvmwatch.FormatMoney(s.Capitalization)},
			{"Volume total", brvmwatch.FormatInt(s.TotalVolume)},
			{"Valeur totale", brvmwatch.FormatMoney(s.TotalValue)},
			{"Titres en hausse", brvmwatch.FormatInt(s.Advancing)},
			{"Titres en baisse", brvmwatch.FormatInt(s.Declining)},
			{"Titres inchangés", brvmwatch.FormatInt(s.Unchanged)},
		},
	})

	if len(r.Chart) > 0 {
		doc.H2(fmt.Sprintf("Composite, %s dernières séances", r.Window))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Séance", "Composite"},
		}
		for _, p := range r.Chart {
			table.Rows = append(table.Rows, []string{
				p.Date.String(),
				brvmwatch.FormatNumber(p.Composite, 2),
			})
		}
		doc.Table(table)
	}

	doc.Build()
	return buf.String()
}
