package agent

import (
	"context"
	"fmt"

	"github.com/etnz/eggworth"
	"github.com/etnz/eggworth/renderer"
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
				{FunctionDeclarations: NewDeclarations(experts...)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand amounts of money expressed as a number of eggs,
			at the current price of eggs or at historical prices.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts...),
	}
}

// NewResearcher returns a search-grounded expert for questions about
// egg markets, prices, and the people on the rich list.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		well aware of food markets, inflation, and the fortunes of the world's wealthiest people.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher, you can search and find about anything related to
			egg prices, food markets, inflation and the world's billionaires. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewQuant returns the expert wired to the conversion tools: current egg
// price, money-to-eggs conversion, historical series and the rich list.
func NewQuant(feed *eggworth.Feed, roster *eggworth.Roster) *Expert {
	lib := []Function{
		currentPrice(feed),
		eggsFor(feed),
		richest(feed, roster),
		history(feed),
	}

	return &Expert{
		Name: "Quant",
		Description: `This is the Quant. He has access to the live egg price feed and the rich list.
		He can convert any dollar amount into a number of eggs, at the current price or across history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib...)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quant in charge of egg-price arithmetic.
				You know how to use the Tools to get the current egg price, convert amounts of money
				into whole eggs, list the wealthiest people measured in eggs, and show how an amount's
				egg worth evolved over the decades.
				You are part of a team of experts, yours is everything numeric. Pardon their approximative
				language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib...),
	}
}

func currentPrice(feed *eggworth.Feed) Function {
	return Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "current_egg_price",
			Description: `current_egg_price returns the latest known price of a single egg in USD, and the period it was observed.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The price of one egg in USD and the period label it refers to.",
			},
		},
		Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			price, on, advisory := feed.Current()
			out := map[string]any{
				"output": fmt.Sprintf("one egg costs %s (as of %s)", price.Display(), on.Label()),
			}
			if advisory != "" {
				out["advisory"] = advisory
			}
			return out, nil
		},
	}
}

func eggsFor(feed *eggworth.Feed) Function {
	return Func{
		Decl: &genai.FunctionDeclaration{
			Name: "eggs_for",
			Description: `eggs_for converts a dollar amount into the number of whole eggs it buys
			at the current egg price.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"amount": {
						Type:        genai.TypeNumber,
						Description: "The dollar amount to convert.",
					},
				},
				Required: []string{"amount"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The number of whole eggs the amount buys.",
			},
		},
		Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			f, ok := args["amount"].(float64)
			if !ok {
				return nil, fmt.Errorf("argument 'amount' is not a number as expected but %T", args["amount"])
			}
			amount, err := eggworth.ParseAmount(fmt.Sprintf("%v", f))
			if err != nil {
				return nil, err
			}
			price, _, _ := feed.Current()
			eggs, err := eggworth.EggsFor(amount, price)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"output": fmt.Sprintf("%s buys %s eggs at %s each", amount.Display(), eggs, price.Display()),
			}, nil
		},
	}
}

func richest(feed *eggworth.Feed, roster *eggworth.Roster) Function {
	return Func{
		Decl: &genai.FunctionDeclaration{
			Name: "richest",
			Description: `richest lists the wealthiest people with their net worth converted into eggs
			at the current egg price.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"limit": {
						Type:        genai.TypeInteger,
						Description: "Maximum number of entries to return. All of them by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the wealthiest people and their egg worth.",
			},
		},
		Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			limit := 0
			if v, ok := args["limit"].(float64); ok {
				limit = int(v)
			}
			entries, _ := roster.List(limit, 0)
			price, _, _ := feed.Current()
			return map[string]any{
				"output": renderer.RichestMarkdown(entries, price),
			}, nil
		},
	}
}

func history(feed *eggworth.Feed) Function {
	return Func{
		Decl: &genai.FunctionDeclaration{
			Name: "egg_worth_history",
			Description: `egg_worth_history shows how many eggs a dollar amount would have bought
			across the decades, at each year's egg price.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"amount": {
						Type:        genai.TypeNumber,
						Description: "The dollar amount to convert. 50000 by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of year, egg price and egg count.",
			},
		},
		Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			amount := eggworth.DefaultIncome
			if v, ok := args["amount"].(float64); ok && v > 0 {
				a, err := eggworth.ParseAmount(fmt.Sprintf("%v", v))
				if err != nil {
					return nil, err
				}
				amount = a
			}
			samples, _ := feed.Historical()
			points := eggworth.BuildSeries(amount, samples)
			return map[string]any{
				"output": renderer.HistoryMarkdown(amount, points),
			}, nil
		},
	}
}
