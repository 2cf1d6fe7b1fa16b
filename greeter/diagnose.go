package greeter

import (
	"fmt"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/syndtr/gocapability/capability"
)

// ports below this need root or CAP_NET_BIND_SERVICE
const privilegedPorts = 1024

// Diagnose fills in e.Hint. Best effort, never fails.
func Diagnose(e *BindError) {
	switch e.Reason {
	case ReasonInUse:
		e.Hint = portOwner(e.Port)
	case ReasonPermission:
		e.Hint = permissionHint(e.Port)
	case ReasonInvalidPort:
		e.Hint = "port must be between 0 and 65535"
	}
}

func portOwner(port int) string {
	conns, err := psnet.Connections("tcp")
	if err != nil {
		return fmt.Sprintf("port %d is already in use", port)
	}
	for _, c := range conns {
		if c.Status != "LISTEN" || c.Laddr.Port != uint32(port) || c.Pid == 0 {
			continue
		}
		name := "unknown"
		if p, err := process.NewProcess(c.Pid); err == nil {
			if n, err := p.Name(); err == nil {
				name = n
			}
		}
		return fmt.Sprintf("port %d is held by pid %d (%s)", port, c.Pid, name)
	}
	return fmt.Sprintf("port %d is already in use", port)
}

func permissionHint(port int) string {
	if port >= privilegedPorts {
		return fmt.Sprintf("not permitted to bind port %d", port)
	}
	if hasBindCapability() {
		return fmt.Sprintf("not permitted to bind port %d despite CAP_NET_BIND_SERVICE", port)
	}
	return fmt.Sprintf("binding port %d requires root or CAP_NET_BIND_SERVICE", port)
}

func hasBindCapability() bool {
	c, err := capability.NewPid2(0)
	if err != nil {
		return false
	}
	if err := c.Load(); err != nil {
		return false
	}
	return c.Get(capability.EFFECTIVE, capability.CAP_NET_BIND_SERVICE)
}
