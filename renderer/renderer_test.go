package renderer

import (
	"strings"
	"testing"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/date"
	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func f64(v float64) *float64 { return &v }

func i64(v int64) *int64 { return &v }

func wantContains(t *testing.T, out string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(out, sub) {
			t.Errorf("output missing %q:\n%s", sub, out)
		}
	}
}

func TestMarketMarkdown(t *testing.T) {
	seances := []brvmwatch.Seance{
		{
			Date: date.New(2026, 3, 9), Number: 47,
			Composite: dec("211.18"), VarComposite: f64(0.12),
		},
		{
			Date: date.New(2026, 3, 10), Number: 48,
			Composite: dec("210.5"), VarComposite: f64(-0.32), VarCompositeYear: f64(4.1),
			BRVM30:         dec("105.31"),
			Capitalization: i64(9876543210), TotalVolume: i64(1234567),
			Advancing: i64(12), Declining: i64(18), Unchanged: i64(5),
		},
	}
	r, err := brvmwatch.NewMarketReport(seances, brvmwatch.Sessions21)
	if err != nil {
		t.Fatal(err)
	}
	out := MarketMarkdown(r)
	wantContains(t, out,
		"séance n°48 du 2026-03-10",
		"210,50", // composite, French decimal separator
		"▼",
		"-0.32%",
		"+4.10%", // annual variation keeps its sign
		"9 876 543 210 CFA",
		"1 234 567",
		brvmwatch.Placeholder, // prestige index missing from the bulletin
		"2026-03-09",          // both séances fit the 21-session window
	)
}

func TestPortfolioMarkdown(t *testing.T) {
	conseils := []brvmwatch.Conseil{
		{Symbol: "SNTS", Entry: dec("100"), Current: dec("110")},
		{Symbol: "ORAC", Entry: dec("50")}, // no current price, excluded
	}
	r := brvmwatch.NewPortfolioReport(conseils, brvmwatch.NewQuantityFromInt(100), brvmwatch.Stats{
		Seances: 250, Cours: 11500, Conseils: 2,
		FirstSeance: "2025-01-02", LastSeance: "2026-03-10",
	})
	out := PortfolioMarkdown(r)
	wantContains(t, out,
		"100 titres par position",
		"10 000 CFA", // invested
		"11 000 CFA", // current
		"+10.00%",
		"▲",
		"Positions valorisées",
		"Positions sans cours",
		"250",
		"2025-01-02",
	)
}

func TestPortfolioMarkdownUndefined(t *testing.T) {
	conseils := []brvmwatch.Conseil{{Symbol: "SNTS", Entry: dec("100")}}
	r := brvmwatch.NewPortfolioReport(conseils, brvmwatch.NewQuantityFromInt(100), brvmwatch.Stats{})
	out := PortfolioMarkdown(r)
	// Nothing valued: the P/L is undefined, never rendered as zero.
	wantContains(t, out, brvmwatch.Placeholder)
	if strings.Contains(out, "+0.00%") || strings.Contains(out, "0 CFA") {
		t.Errorf("undefined aggregate rendered as zero:\n%s", out)
	}
}

func TestRenderSecurities(t *testing.T) {
	rows := []brvmwatch.Security{
		{Symbol: "SNTS", Title: "Sonatel", Sector: brvmwatch.SectorTelecom,
			Close: dec("21500"), VarDay: f64(1.2), Volume: i64(4200)},
		{Symbol: "BICC", Title: "BICI Côte d'Ivoire", Sector: brvmwatch.SectorFinance},
	}
	report := brvmwatch.NewSecuritiesReport(rows, "", brvmwatch.SortSpec{Column: brvmwatch.ByVarDay, Desc: true})
	out := RenderSecurities(report)
	wantContains(t, out,
		"var ↓",
		"| SNTS | Sonatel | TEL | 21 500 | ▲ | +1.20% |",
		"| BICC | BICI Côte d'Ivoire | FIN | — | · | — |",
	)
	// The unquoted security sorts after the quoted one in both directions.
	if strings.Index(out, "BICC") < strings.Index(out, "SNTS") {
		t.Errorf("null close sorted before a present value:\n%s", out)
	}
}

func TestRenderSecuritiesDetail(t *testing.T) {
	detail := &brvmwatch.SecurityDetail{
		Security: brvmwatch.Security{Symbol: "SNTS", Title: "Sonatel",
			Sector: brvmwatch.SectorTelecom, Close: dec("21500"),
			Compartment: "Premier"},
		History: []brvmwatch.PricePoint{
			{Date: date.New(2026, 3, 9), Close: decimal.RequireFromString("21400")},
			{Date: date.New(2026, 3, 10), Close: decimal.RequireFromString("21500")},
		},
	}
	report := brvmwatch.NewSecuritiesReport(nil, "", brvmwatch.SortSpec{}).WithDetail(detail)
	out := RenderSecurities(report)
	wantContains(t, out,
		"## SNTS · Sonatel",
		"BRVM-TELECOMMUNICATIONS",
		"Compartiment Premier",
		"| 2026-03-09 | 21 400 |",
		"| Date dividende | — |",
	)
}

func TestRenderRankings(t *testing.T) {
	p := brvmwatch.Pepites{
		Days: 7,
		Top: []brvmwatch.RankingEntry{
			{Symbol: "ORAC", Title: "Orange CI", Sector: brvmwatch.SectorTelecom,
				Sessions: 5, TotalVolume: 9000, AvgVar: 2.4, LastClose: dec("13000")},
		},
		Flop: []brvmwatch.RankingEntry{
			{Symbol: "SGBC", Title: "SGB Côte d'Ivoire", Sector: brvmwatch.SectorFinance,
				Sessions: 5, TotalVolume: 800, AvgVar: -1.1, LastClose: dec("17000")},
		},
	}
	out := RenderRankings(brvmwatch.NewRankingsReport(p))
	wantContains(t, out,
		"# Pépites sur 7 jours",
		"| ORAC | Orange CI | TEL | 5 | 9 000 | ▲ | +2.40% | 13 000 |",
		"| SGBC | SGB Côte d'Ivoire | FIN | 5 | 800 | ▼ | -1.10% | 17 000 |",
	)
	if strings.Contains(out, "Tous les titres") {
		t.Errorf("empty full ranking rendered a section:\n%s", out)
	}
}

func TestRenderAdvice(t *testing.T) {
	conseils := []brvmwatch.Conseil{
		{
			ID: 7, Date: date.New(2026, 2, 1), Symbol: "SNTS", Type: brvmwatch.Buy,
			Entry: dec("100"), Target: dec("120"), Stop: dec("90"), Current: dec("110"),
			Latent: f64(10), Rationale: "résultats solides",
		},
		{
			// No current price: every derived metric is undefined.
			ID: 8, Date: date.New(2026, 2, 2), Symbol: "ORAC", Type: brvmwatch.Sell,
			Entry: dec("50"), Target: dec("40"), Stop: dec("55"),
		},
	}
	out := RenderAdvice(brvmwatch.NewAdviceReport(conseils))
	wantContains(t, out,
		"| 7 | 2026-02-01 | SNTS | ACHAT |",
		"+9.09%",  // potential toward the target
		"+18.18%", // downside to the stop
		"0.50",    // risk/reward ratio
		"50%",     // halfway from entry to target
		"**SNTS** : résultats solides",
		"| 8 | 2026-02-02 | ORAC | VENTE | 50 | 40 | 55 | — | — | — | — | — | — |",
	)
}

func TestRenderAdviceEmpty(t *testing.T) {
	out := RenderAdvice(brvmwatch.NewAdviceReport(nil))
	wantContains(t, out, "Aucun conseil ouvert.")
}

func TestRenderAdviceTargetExceeded(t *testing.T) {
	conseils := []brvmwatch.Conseil{
		{ID: 9, Symbol: "SNTS", Entry: dec("100"), Target: dec("120"), Stop: dec("90"),
			Current: dec("130")},
	}
	out := RenderAdvice(brvmwatch.NewAdviceReport(conseils))
	wantContains(t, out, "100% ✓ target exceeded")
}
