package server

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ErrNoAvailablePort is returned when every port in the configured
// window is already taken.
var ErrNoAvailablePort = errors.New("no available port")

// Listen binds a TCP listener on the first free port in the configured
// window, trying successive ports whenever the address is already in
// use. The returned listener is the one the server keeps; there is no
// separate probe bind that gets released and re-acquired.
func Listen(cfg Config) (net.Listener, int, error) {
	first, last := cfg.PortRange()
	for port := first; port <= last; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, port, nil
		}
		if errors.Is(err, syscall.EADDRINUSE) {
			continue
		}
		return nil, 0, fmt.Errorf("bind port %d: %w", port, err)
	}
	return nil, 0, fmt.Errorf("%w in range %d-%d", ErrNoAvailablePort, first, last)
}
