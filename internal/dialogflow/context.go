package dialogflow

import (
	"fmt"
	"strings"
)

// Context types carried between turns. All cross-turn state rides in these;
// the service keeps no session storage of its own.
const (
	ContextAwaitingLocation             = "awaiting-location"
	ContextAwaitingStationConfirmation  = "awaiting-station-confirmation"
	ContextAwaitingComplaintDescription = "awaiting-complaint-description"
)

// FindContext returns the parameters of the first prior context whose name
// contains ctxType. Later contexts of the same type are ignored.
func FindContext(contexts []Context, ctxType string) (map[string]string, bool) {
	for _, ctx := range contexts {
		if strings.Contains(ctx.Name, ctxType) {
			return ctx.Parameters, true
		}
	}
	return nil, false
}

// NewContext builds a session-scoped context that stays active for exactly
// one more turn
func NewContext(session, ctxType string, params map[string]string) Context {
	return Context{
		Name:          fmt.Sprintf("%s/contexts/%s", session, ctxType),
		LifespanCount: 1,
		Parameters:    params,
	}
}
