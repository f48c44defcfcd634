package scoring

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the scoring engine
var (
	// ErrInvalidWeightRegistry means the category weights are unusable.
	// It is a startup-time error: the registry must never be silently
	// renormalized.
	ErrInvalidWeightRegistry = goerr.New("invalid category weight registry")

	// ErrMissingCategoryScore means a registered category has no entry in
	// the score map passed to Aggregate. Defaulting is the scorer's job,
	// not the aggregator's, so this surfaces to the caller.
	ErrMissingCategoryScore = goerr.New("missing category score")

	// ErrUnknownCategory means a score was supplied for a category that is
	// not in the registry.
	ErrUnknownCategory = goerr.New("unknown category")

	// ErrOutOfRangeInput means a count passed to the management score
	// calculator is negative or inconsistent. Negative counts indicate a
	// caller bug and are not silently absorbed.
	ErrOutOfRangeInput = goerr.New("management score input out of range")
)

// Context keys for error values
const (
	CategoryIDKey = "category_id"
	WeightSumKey  = "weight_sum"
	FieldKey      = "field"
)
