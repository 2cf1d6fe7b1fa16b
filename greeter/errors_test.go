package greeter

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func opErr(errno syscall.Errno) error {
	return &net.OpError{
		Op:  "listen",
		Net: "tcp",
		Err: os.NewSyscallError("bind", errno),
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ReasonInUse, classify(opErr(syscall.EADDRINUSE)))
	assert.Equal(t, ReasonPermission, classify(opErr(syscall.EACCES)))
	assert.Equal(t, ReasonPermission, classify(opErr(syscall.EPERM)))
	assert.Equal(t, ReasonInvalidPort, classify(fmt.Errorf("x: %w", ErrInvalidPort)))
	assert.Equal(t, ReasonUnknown, classify(errors.New("boom")))
}

func TestBindError(t *testing.T) {
	err := newBindError(":80", 80, opErr(syscall.EACCES))
	assert.Equal(t, ReasonPermission, err.Reason)
	assert.Contains(t, err.Error(), "cannot bind :80: permission denied")
	assert.True(t, errors.Is(err, syscall.EACCES))

	Diagnose(err)
	assert.Contains(t, err.Hint, "port 80")
}

func TestPermissionHintUnprivileged(t *testing.T) {
	assert.Equal(t, "not permitted to bind port 8080", permissionHint(8080))
}

func TestBindReasonString(t *testing.T) {
	assert.Equal(t, "address in use", ReasonInUse.String())
	assert.Equal(t, "permission denied", ReasonPermission.String())
	assert.Equal(t, "invalid port", ReasonInvalidPort.String())
	assert.Equal(t, "unknown", ReasonUnknown.String())
}
