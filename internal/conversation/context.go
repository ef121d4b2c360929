package conversation

import (
	"fmt"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/lojasmm/gadgetchat/internal/product"
)

// Keys of the context fields the front-end reads. Everything else in the
// context belongs to the chat service.
const (
	KeyRecommendationHistory = "recommendation_history"
	KeyLastRetrievedItems    = "last_retrieved_items"
)

// Context is the conversation state owned by the chat service. It is sent
// back unchanged on every turn and replaced wholesale by each reply.
type Context map[string]any

// Clone returns a shallow copy. Nested values are shared; callers treat
// them as read-only.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// RecommendationHistoryLen returns the length of recommendation_history,
// or 0 when it is absent or not a list.
func (c Context) RecommendationHistoryLen() int {
	switch h := c[KeyRecommendationHistory].(type) {
	case []any:
		return len(h)
	case []map[string]any:
		return len(h)
	case []string:
		return len(h)
	default:
		return 0
	}
}

// LastRetrievedItems returns last_retrieved_items as product records. It
// is empty when the field is absent.
func (c Context) LastRetrievedItems() []product.Record {
	return product.RecordsFrom(c[KeyLastRetrievedItems])
}

// Diff returns the JSON merge patch that turns prev into next. It is used
// to log how the service moved the context between turns.
func Diff(prev, next Context) ([]byte, error) {
	if prev == nil {
		prev = Context{}
	}
	if next == nil {
		next = Context{}
	}
	a, err := sonic.Marshal(prev)
	if err != nil {
		return nil, fmt.Errorf("marshaling previous context: %w", err)
	}
	b, err := sonic.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("marshaling next context: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	return patch, nil
}
