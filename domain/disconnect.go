package domain

// Disconnect reasons reported by the transport.
const (
	ReasonServerDisconnect = "server namespace disconnect"
	ReasonClientDisconnect = "client namespace disconnect"
	ReasonTransportClose   = "transport close"
	ReasonTransportError   = "transport error"
	ReasonPingTimeout      = "ping timeout"
)

// reconnectable lists the known disconnect reasons and whether an in-place
// rejoin should be attempted for them.
var reconnectable = map[string]bool{
	ReasonServerDisconnect: false,
	ReasonClientDisconnect: false,
	ReasonTransportClose:   true,
	ReasonTransportError:   true,
	ReasonPingTimeout:      true,
}

// ShouldReconnect decides whether a disconnect is worth an in-place rejoin.
// When reconnectOnUnknown is set every reason qualifies.
func ShouldReconnect(reason string, reconnectOnUnknown bool) bool {
	if reconnectOnUnknown {
		return true
	}
	return reconnectable[reason]
}
