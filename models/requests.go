package models

import "encoding/json"

// SuggestionRequest is the payload of the AI suggestion endpoint. Data is an
// arbitrary snapshot of the user's life data, embedded verbatim in the model
// prompt.
type SuggestionRequest struct {
	UserID int64           `json:"userId"`
	Data   json.RawMessage `json:"data"`
}
