package agent

import (
	"net"
	"time"
)

// dialTimeout bounds how long a client waits to connect to an agent
// socket before concluding it is not running.
const dialTimeout = 500 * time.Millisecond

// Read attempts to fetch the ProtectionKey cached by an agent addressed by
// iv. It returns ok=false (never an error a caller need report) on any
// failure to connect or on receiving anything other than exactly 32 bytes:
// per the design notes, the agent protocol has no framing, so any short or
// long read is treated as "no agent" rather than a partial key, and the
// caller falls through to the passphrase provider.
func Read(iv [8]byte) (key [32]byte, ok bool) {
	conn, err := net.DialTimeout("unix", Address(iv), dialTimeout)
	if err != nil {
		return key, false
	}
	defer conn.Close()

	buf := make([]byte, 33)
	n, _ := readFull(conn, buf)
	if n != 32 {
		return key, false
	}
	copy(key[:], buf[:32])
	return key, true
}

// readFull reads until buf is full or conn returns EOF or an error. The
// agent closes the connection right after writing its 32 bytes, so a reply
// ends at EOF; Read passes a 33-byte buffer so that an over-long reply
// shows up as a count other than 32.
func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
