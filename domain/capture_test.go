package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlaybackID(t *testing.T) {
	req := require.New(t)

	sessionID, start, err := ParsePlaybackID(NewCaptureID(12, 1700000000000))
	req.NoError(err)
	req.Equal(SessionID(12), sessionID)
	req.Equal(int64(1700000000000), start)

	for _, bad := range []string{"", "12", "12_", "_17", "a_17", "12_b", "0_17", "12_0", "1_2_3"} {
		_, _, err := ParsePlaybackID(bad)
		req.Error(err, bad)
	}
}

func TestShouldReconnect(t *testing.T) {
	req := require.New(t)

	req.True(ShouldReconnect(ReasonTransportClose, false))
	req.True(ShouldReconnect(ReasonTransportError, false))
	req.True(ShouldReconnect(ReasonPingTimeout, false))
	req.False(ShouldReconnect(ReasonClientDisconnect, false))
	req.False(ShouldReconnect(ReasonServerDisconnect, false))
	req.False(ShouldReconnect("something else", false))
	req.True(ShouldReconnect("something else", true))
}

func TestParsePayload(t *testing.T) {
	req := require.New(t)

	payload, err := ParsePayload(json.RawMessage(`{"a":1}`))
	req.NoError(err)
	req.JSONEq(`{"a":1}`, string(payload))

	payload, err = ParsePayload(json.RawMessage(`"{\"a\":1}"`))
	req.NoError(err)
	req.JSONEq(`{"a":1}`, string(payload))

	_, err = ParsePayload(json.RawMessage(`"not json"`))
	req.Error(err)
	_, err = ParsePayload(nil)
	req.Error(err)
}

func TestHasIDs(t *testing.T) {
	req := require.New(t)

	req.True(HasIDs(1, 2))
	req.False(HasIDs(0, 2))
	req.False(HasIDs(1, 0))
}
