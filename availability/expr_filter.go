package availability

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/streamcheck/tmdb"
)

// OfferFilter is a compiled expr expression evaluated against individual
// offers, narrowing matches beyond plain provider-name equality.
type OfferFilter struct {
	program *vm.Program
	expr    string
}

// CompileOfferFilter compiles an expr filter expression over offer fields.
func CompileOfferFilter(expression string) (*OfferFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty offer filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(offerEnv(tmdb.Offer{})),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile offer filter expression: %w", err)
	}

	return &OfferFilter{
		program: program,
		expr:    expression,
	}, nil
}

// offerEnv builds the expression environment for one offer.
func offerEnv(offer tmdb.Offer) map[string]interface{} {
	return map[string]interface{}{
		// Offer data
		"Name":            offer.ProviderName,
		"ProviderID":      offer.ProviderID,
		"DisplayPriority": offer.DisplayPriority,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Evaluate evaluates the filter against an offer. Evaluation errors and
// non-boolean results drop the offer.
func (f *OfferFilter) Evaluate(offer tmdb.Offer) bool {
	result, err := expr.Run(f.program, offerEnv(offer))
	if err != nil {
		return false
	}

	boolResult, ok := result.(bool)
	return ok && boolResult
}

// Apply filters offers through the compiled expression, preserving order.
func (f *OfferFilter) Apply(offers []tmdb.Offer) []tmdb.Offer {
	var kept []tmdb.Offer
	for _, offer := range offers {
		if f.Evaluate(offer) {
			kept = append(kept, offer)
		}
	}
	return kept
}

// String returns the original expression
func (f *OfferFilter) String() string {
	return f.expr
}
