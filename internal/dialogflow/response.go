package dialogflow

// Context is a named, parameterized fragment of conversation state echoed
// between the client and the service each turn
type Context struct {
	Name          string            `json:"name"`
	LifespanCount int               `json:"lifespanCount"`
	Parameters    map[string]string `json:"parameters,omitempty"`
}

// WebhookResponse is the fulfillment payload returned to the dialogue
// platform. Logical failures still travel in FulfillmentText with HTTP 200.
type WebhookResponse struct {
	FulfillmentText string       `json:"fulfillmentText"`
	OutputContexts  []Context    `json:"outputContexts,omitempty"`
	Payload         *RichPayload `json:"payload,omitempty"`
}

// RichPayload wraps rich response elements (chips, etc.)
type RichPayload struct {
	RichContent [][]RichElement `json:"richContent"`
}

// RichElement is a single rich response element
type RichElement struct {
	Type    string       `json:"type"`
	Options []ChipOption `json:"options,omitempty"`
}

// ChipOption is one tappable choice
type ChipOption struct {
	Text string `json:"text"`
}

// TextResponse builds a plain fulfillment-text response with no contexts,
// which also resets the conversation on terminal turns
func TextResponse(text string) *WebhookResponse {
	return &WebhookResponse{FulfillmentText: text}
}

// ChipsPayload builds a rich payload offering the given fixed choices
func ChipsPayload(options ...string) *RichPayload {
	chips := RichElement{Type: "chips"}
	for _, option := range options {
		chips.Options = append(chips.Options, ChipOption{Text: option})
	}
	return &RichPayload{RichContent: [][]RichElement{{chips}}}
}
