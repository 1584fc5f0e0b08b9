package agent

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/PolarWolf314/enchive-go/internal/ioutil"
)

// Serve listens on the socket addressed by iv and hands out protect to
// every client that connects, until timeout elapses with no connection.
// It returns nil after a clean timeout shutdown, having unlinked its own
// socket.
//
// A spawned agent holds at most one client connection at a time
// (accept, write, close) but serves successive clients serially until it
// times out — there is no cooperative cancellation beyond that timeout.
func Serve(iv [8]byte, protect [32]byte, timeout time.Duration) error {
	addr := Address(iv)

	if err := os.Remove(addr); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale agent socket %s: %w", addr, err)
	}

	rawListener, err := net.Listen("unix", addr)
	if err != nil {
		return fmt.Errorf("bind agent socket %s: %w", addr, err)
	}
	listener := rawListener.(*net.UnixListener)
	defer listener.Close()

	if err := os.Chmod(addr, 0600); err != nil {
		return fmt.Errorf("set agent socket permissions: %w", err)
	}

	for {
		if err := listener.SetDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("set agent accept deadline: %w", err)
		}

		conn, err := listener.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return os.Remove(addr)
			}
			return fmt.Errorf("agent accept: %w", err)
		}

		writeErr := ioutil.FullWrite(conn, protect[:])
		conn.Close()
		if writeErr != nil {
			// A client that hung up mid-write is not fatal to the agent;
			// keep serving until timeout.
			continue
		}
	}
}
