package entity

// GatewayState records, once at startup, whether the generative backend was
// configured. It is never re-derived afterwards.
type GatewayState struct {
	available bool
	warning   error
}

// ReadyGateway returns a state that permits generative calls.
func ReadyGateway() GatewayState {
	return GatewayState{available: true}
}

// UnconfiguredGateway returns a state that forces every resolution onto the fallback
// path; warning explains why.
func UnconfiguredGateway(warning error) GatewayState {
	return GatewayState{warning: warning}
}

func (s GatewayState) Available() bool { return s.available }

// Warning is the configuration error reported at startup, or nil.
func (s GatewayState) Warning() error { return s.warning }
