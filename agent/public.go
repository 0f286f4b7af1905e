package agent

import (
	"context"
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
	"github.com/esmelobi/brvm-watch/brvmapi"
	"github.com/esmelobi/brvm-watch/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You facilitate a conversation about the BRVM, the West African
			regional stock exchange. The user follows the market through a
			dashboard fed by the official daily bulletins.

			Learn what each expert can do from the Tools and ask them
			questions; they keep the context of your previous questions.
			The Analyste holds the live dashboard data: séances, quotes,
			conseils and the virtual portfolio. Check with the Analyste
			first so you know which securities the user is tracking.

			Answer in the user's language. Amounts are CFA francs.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarche is the outward-looking expert, grounding answers about WAEMU
// companies and markets in search results.
func NewMarche() *Expert {
	return &Expert{
		Name: "Marche",
		Description: `Expert on West African markets and companies. Knows the
		latest news about BRVM-listed companies, the WAEMU economy and the
		financial institutions of the region. Ask whenever recent or outside
		information is needed.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on West African financial markets, companies
			and institutions. Use Google Search to ground every assertion
			and relate recent news to the user's request.
				`}}},
		},
	}
}

// NewAnalyste is the inward-looking expert: it reads the live dashboard
// through function calls against the bulletin backend.
func NewAnalyste(client *brvmapi.Client, unit brvmwatch.Quantity) *Expert {
	lib := dashboardFunctions(client, unit)
	return &Expert{
		Name: "Analyste",
		Description: `The analyst holds the live dashboard data: the latest
		séance and indices, every listed security with its quotes, the open
		conseils with their derived metrics, and the virtual portfolio
		valuation. Ask for any figure about the market or the user's
		positions.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You analyse the BRVM dashboard for a team of experts. Use the
			tools to fetch live figures; every answer must come from a tool
			result, never from memory. Figures the bulletin did not carry
			show as a dash and must be reported as unknown, not as zero.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function with plain values.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// markdownFunc wraps a markdown-producing callback into a Func, folding
// errors into the function response.
func markdownFunc(name, description string, params *genai.Schema, call func(ctx context.Context, args map[string]any) (string, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  params,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			out, err := call(ctx, args)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = out
			return fresp
		},
	}
}

func dashboardFunctions(client *brvmapi.Client, unit brvmwatch.Quantity) []Function {
	noParams := &genai.Schema{Type: genai.TypeObject}

	market := markdownFunc("Marche",
		`The latest séance: the three BRVM indices with their daily and
		annual variations, the session activity and a composite chart.`,
		noParams,
		func(ctx context.Context, _ map[string]any) (string, error) {
			seances, err := client.Seances(ctx, int(brvmwatch.Sessions21))
			if err != nil {
				return "", err
			}
			r, err := brvmwatch.NewMarketReport(seances, brvmwatch.Sessions21)
			if err != nil {
				return "", err
			}
			return renderer.MarketMarkdown(r), nil
		})

	titres := markdownFunc("Titres",
		`All listed securities with close, variations, volume, PER and
		yield. The optional query keeps securities whose symbol or title
		contains it.`,
		&genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query": {
					Type:        genai.TypeString,
					Description: "Filter on symbol or title, empty for all.",
				},
			},
		},
		func(ctx context.Context, args map[string]any) (string, error) {
			query, _ := args["query"].(string)
			list, err := client.Securities(ctx)
			if err != nil {
				return "", err
			}
			report := brvmwatch.NewSecuritiesReport(list, query, brvmwatch.SortSpec{Column: brvmwatch.ByVarDay, Desc: true})
			return renderer.RenderSecurities(report), nil
		})

	conseils := markdownFunc("Conseils",
		`The open conseils with their derived metrics: potential to target,
		risk to stop, risk/reward ratio and progress toward the target.`,
		noParams,
		func(ctx context.Context, _ map[string]any) (string, error) {
			list, err := client.Conseils(ctx)
			if err != nil {
				return "", err
			}
			return renderer.RenderAdvice(brvmwatch.NewAdviceReport(list)), nil
		})

	portefeuille := markdownFunc("Portefeuille",
		`The virtual portfolio: every open conseil valued at a fixed number
		of shares bought at the entry price, against current prices.`,
		noParams,
		func(ctx context.Context, _ map[string]any) (string, error) {
			list, err := client.Conseils(ctx)
			if err != nil {
				return "", err
			}
			stats, err := client.Stats(ctx)
			if err != nil {
				return "", err
			}
			return renderer.PortfolioMarkdown(brvmwatch.NewPortfolioReport(list, unit, stats)), nil
		})

	pepites := markdownFunc("Pepites",
		`Best and worst performers over a trailing window of 5, 7, 14 or 30
		days, as ranked by the backend.`,
		&genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"jours": {
					Type:        genai.TypeInteger,
					Description: "Trailing window in days: 5, 7, 14 or 30. Default 7.",
				},
			},
		},
		func(ctx context.Context, args map[string]any) (string, error) {
			days := 7
			if v, ok := args["jours"].(float64); ok {
				days = int(v)
			}
			days, err := brvmwatch.ParseRankingDays(days)
			if err != nil {
				return "", fmt.Errorf("invalid window: %w", err)
			}
			p, err := client.Pepites(ctx, days)
			if err != nil {
				return "", err
			}
			return renderer.RenderRankings(brvmwatch.NewRankingsReport(*p)), nil
		})

	return []Function{market, titres, conseils, portefeuille, pepites}
}
