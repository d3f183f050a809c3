package dialogflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "projects/railmadad/agent/sessions/abc123"

func TestFindContextReturnsFirstMatch(t *testing.T) {
	contexts := []Context{
		{
			Name:       testSession + "/contexts/" + ContextAwaitingComplaintDescription,
			Parameters: map[string]string{"pnr": "PNR1234567890"},
		},
		{
			Name:       testSession + "/contexts/" + ContextAwaitingComplaintDescription,
			Parameters: map[string]string{"pnr": "PNR9999999999"},
		},
	}

	params, found := FindContext(contexts, ContextAwaitingComplaintDescription)
	require.True(t, found)
	// Later duplicates of the same context type are ignored
	assert.Equal(t, "PNR1234567890", params["pnr"])
}

func TestFindContextMatchesBySubstring(t *testing.T) {
	contexts := []Context{
		{
			Name:       testSession + "/contexts/" + ContextAwaitingLocation,
			Parameters: map[string]string{"phone_number": "9876543210"},
		},
	}

	params, found := FindContext(contexts, ContextAwaitingLocation)
	require.True(t, found)
	assert.Equal(t, "9876543210", params["phone_number"])

	_, found = FindContext(contexts, ContextAwaitingStationConfirmation)
	assert.False(t, found)
}

func TestFindContextEmptyList(t *testing.T) {
	_, found := FindContext(nil, ContextAwaitingLocation)
	assert.False(t, found)
}

func TestNewContextScopedToSession(t *testing.T) {
	ctx := NewContext(testSession, ContextAwaitingLocation, map[string]string{"phone_number": "9876543210"})

	assert.Equal(t, testSession+"/contexts/awaiting-location", ctx.Name)
	assert.Equal(t, 1, ctx.LifespanCount)
	assert.Equal(t, "9876543210", ctx.Parameters["phone_number"])
}
