// Package adapter implements outbound integrations with external services.
// Its only current member is the chat-completion client backing the
// suggestion endpoint.
package adapter

import (
	"context"
	"encoding/json"
)

// SuggestionClient produces one short piece of advice from a snapshot of the
// user's life data. Implementations talk to an external language model; the
// service layer substitutes deterministic local messages when the call fails.
type SuggestionClient interface {

	// GenerateInsight submits the raw user data snapshot and returns the
	// model's reply text. The data is embedded verbatim in the prompt.
	GenerateInsight(ctx context.Context, data json.RawMessage) (string, error)
}
