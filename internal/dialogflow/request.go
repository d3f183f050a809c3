package dialogflow

import (
	"fmt"
	"strconv"
)

// WebhookRequest mirrors the JSON the dialogue platform posts to the
// fulfillment webhook
type WebhookRequest struct {
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the detected intent, extracted parameters and the
// contexts echoed back from the previous turn
type QueryResult struct {
	QueryText      string                 `json:"queryText"`
	Parameters     map[string]interface{} `json:"parameters"`
	OutputContexts []WireContext          `json:"outputContexts"`
	Intent         Intent                 `json:"intent"`
}

// Intent identifies the matched intent
type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// WireContext is a context as it appears on the wire, with loosely typed
// parameter values
type WireContext struct {
	Name          string                 `json:"name"`
	LifespanCount int                    `json:"lifespanCount"`
	Parameters    map[string]interface{} `json:"parameters"`
}

// TurnRequest is the validated, typed form of one conversation turn.
// Handlers only ever see this; the raw untyped maps stop here.
type TurnRequest struct {
	Intent        string
	Parameters    map[string]string
	PriorContexts []Context
	QueryText     string
	Session       string
}

// ParseTurnRequest validates a webhook request and normalizes every
// parameter value to a string in a single step at the boundary
func ParseTurnRequest(req *WebhookRequest) (*TurnRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.QueryResult.Intent.DisplayName == "" {
		return nil, fmt.Errorf("missing queryResult.intent.displayName")
	}

	turn := &TurnRequest{
		Intent:     req.QueryResult.Intent.DisplayName,
		Parameters: make(map[string]string, len(req.QueryResult.Parameters)),
		QueryText:  req.QueryResult.QueryText,
		Session:    req.Session,
	}

	for key, value := range req.QueryResult.Parameters {
		turn.Parameters[key] = normalizeValue(value)
	}

	for _, wc := range req.QueryResult.OutputContexts {
		ctx := Context{
			Name:          wc.Name,
			LifespanCount: wc.LifespanCount,
			Parameters:    make(map[string]string, len(wc.Parameters)),
		}
		for key, value := range wc.Parameters {
			ctx.Parameters[key] = normalizeValue(value)
		}
		turn.PriorContexts = append(turn.PriorContexts, ctx)
	}

	return turn, nil
}

// normalizeValue renders a JSON parameter value as a string. Numbers keep
// their shortest decimal form, so an integer-valued float arrives without
// an exponent or trailing zeros (1234567890, not 1.23456789e+09).
func normalizeValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
