package agent

import (
	"context"
	"fmt"

	"github.com/parkrow/propfin"
	"github.com/parkrow/propfin/docs"
	"github.com/parkrow/propfin/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a property manager asking about the financial health of his portfolio:
			revenue, NOI, cap rates, expense variances, and data quality.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. The user will refer to properties by id or by name; resolve
			them through the experts first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst builds the expert that reads the accounting export and the
// fallback chain. It owns everything about per-property and portfolio
// figures.
func NewAnalyst(api *propfin.ExportAPI, fallback *propfin.FallbackProvider) *Expert {
	lib := []Function{
		portfolioHealth(api, fallback),
		propertyFinancials(api, fallback),
		varianceAlerts(api),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the portfolio Analyst. He reads the accounting export and the
		rent-roll fallback chain. Ask him about per-property financials, portfolio health,
		data completeness and expense variances.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst for a property-management portfolio.
				You know how to use the Tools to extract figures from the accounting export:
				  - portfolio health and roll-up
				  - per-property financials, including calculated fallbacks
				  - expense variance alerts

				Figures tagged "calculated" are estimates, always say so. The documentation
				below explains where they come from:

				` + must(docs.GetTopic("fallback"))}}},
		},
		Library: NewLibrary(lib),
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func portfolioHealth(api *propfin.ExportAPI, fallback *propfin.FallbackProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PortfolioHealth",
			Description: `PortfolioHealth validates every property record and rolls up the
			portfolio: total revenue, total NOI, average cap rate, and how many properties
			are complete, calculated or incomplete.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted portfolio health report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			records, err := api.Investments(ctx)
			if err != nil {
				return errResponse(id, "PortfolioHealth", err)
			}
			pv := propfin.NewPortfolioValidation(ctx, records, fallback)
			return okResponse(id, "PortfolioHealth", renderer.PortfolioMarkdown(pv))
		},
	}
}

func propertyFinancials(api *propfin.ExportAPI, fallback *propfin.FallbackProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PropertyFinancials",
			Description: `PropertyFinancials returns one property's figures: purchase price,
			revenue, NOI, cap rate, occupancy, and where the figures came from. Falls back to
			rent-roll estimates when the authoritative record is incomplete.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"propertyId": {
						Type:        genai.TypeString,
						Description: "The property id, e.g. \"100\".",
					},
				},
				Required: []string{"propertyId"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted property report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			propertyID, err := stringArg(args, "propertyId")
			if err != nil {
				return errResponse(id, "PropertyFinancials", err)
			}
			records, err := api.Investments(ctx)
			if err != nil {
				return errResponse(id, "PropertyFinancials", err)
			}
			for _, rec := range records {
				if rec.AssetID != propertyID {
					continue
				}
				v := propfin.ValidateProperty(rec)
				if v.IsComplete {
					f := propfin.FinancialsFromRecord(rec, v)
					return okResponse(id, "PropertyFinancials", renderer.PropertyMarkdown(&f))
				}
				if f := fallback.CalculatedFinancials(ctx, propertyID, propfin.ParseCurrency(rec.PurchasePrice)); f != nil {
					f.MissingFields = v.MissingFields
					return okResponse(id, "PropertyFinancials", renderer.PropertyMarkdown(f))
				}
				return okResponse(id, "PropertyFinancials", renderer.NoPropertyDataMarkdown(propertyID))
			}
			return errResponse(id, "PropertyFinancials", fmt.Errorf("unknown property %q", propertyID))
		},
	}
}

func varianceAlerts(api *propfin.ExportAPI) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "VarianceAlerts",
			Description: `VarianceAlerts compares a property's expenses against the previous
			month, category by category, and flags the ones whose change exceeds their
			configured thresholds.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"propertyId": {
						Type:        genai.TypeString,
						Description: "The property id, e.g. \"100\".",
					},
					"period": {
						Type:        genai.TypeString,
						Description: "The month to compare, formatted YYYY-MM. The current month is the default.",
					},
				},
				Required: []string{"propertyId"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted variance report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			propertyID, err := stringArg(args, "propertyId")
			if err != nil {
				return errResponse(id, "VarianceAlerts", err)
			}
			period := propfin.ThisMonth()
			if s, ok := args["period"].(string); ok && s != "" {
				period, err = propfin.ParseMonth(s)
				if err != nil {
					return errResponse(id, "VarianceAlerts", err)
				}
			}
			cur, prev, err := api.LineItemPeriods(ctx, "cash_flow", propertyID, period)
			if err != nil {
				return errResponse(id, "VarianceAlerts", err)
			}
			report := propfin.NewVarianceReport(cur, prev)
			return okResponse(id, "VarianceAlerts", renderer.VarianceMarkdown(report, propertyID, period))
		},
	}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	return s, nil
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
