package greeter

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

// DefaultPort is used when PORT is unset or not an integer
const DefaultPort = 5000

// PortEnv is the environment variable holding the listen port
const PortEnv = "PORT"

// outOfRange stands in for integers that overflow int; Listen rejects it
const outOfRange = -1

// PortSource records where the listen port came from
type PortSource string

const (
	// PortDefault means PORT was unset or empty
	PortDefault PortSource = "default"
	// PortMalformed means PORT was set but was not an integer
	PortMalformed PortSource = "default (malformed PORT)"
	// PortFromEnv means PORT was parsed successfully
	PortFromEnv PortSource = "env"
)

// Options configures a Server
type Options struct {
	// Host to bind, empty for all interfaces
	Host string
	Port int
}

// Addr returns the listen address in host:port form
func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// ResolvePort reads PORT through lookup, falling back to DefaultPort when the
// variable is absent or does not parse as a base 10 integer. The range is not
// checked here; an out of range port fails at bind time.
func ResolvePort(lookup func(string) (string, bool)) (int, PortSource) {
	val, ok := lookup(PortEnv)
	val = strings.TrimSpace(val)
	if !ok || val == "" {
		return DefaultPort, PortDefault
	}
	port, err := strconv.Atoi(val)
	if errors.Is(err, strconv.ErrRange) {
		// an integer too large for int is still out of range, not malformed
		return outOfRange, PortFromEnv
	}
	if err != nil {
		return DefaultPort, PortMalformed
	}
	return port, PortFromEnv
}
