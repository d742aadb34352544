package provider

// modelPricing holds per-million-token pricing for known models.
type modelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// pricing maps model identifiers to their token costs in USD.
var pricing = map[string]modelPricing{
	// Anthropic
	"claude-3-5-sonnet-20241022": {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	"claude-3-5-haiku-20241022":  {InputPerMillion: 0.80, OutputPerMillion: 4.0},

	// OpenAI
	"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.0},
	"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},

	// Gemini
	"gemini-2.0-flash": {InputPerMillion: 0.10, OutputPerMillion: 0.40},

	// DeepSeek
	"deepseek-chat": {InputPerMillion: 0.27, OutputPerMillion: 1.10},

	// Perplexity
	"sonar": {InputPerMillion: 1.0, OutputPerMillion: 1.0},

	// xAI
	"grok-2-latest": {InputPerMillion: 2.0, OutputPerMillion: 10.0},
}

// EstimateCost returns the estimated USD cost for the given model and usage.
// Returns 0 if the model is not in the pricing table.
func EstimateCost(model string, usage Usage) float64 {
	p, ok := pricing[model]
	if !ok {
		return 0
	}
	inputCost := float64(usage.InputTokens) / 1_000_000 * p.InputPerMillion
	outputCost := float64(usage.OutputTokens) / 1_000_000 * p.OutputPerMillion
	return inputCost + outputCost
}
