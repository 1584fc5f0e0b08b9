package orchestrator

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/PolarWolf314/enchive-go/internal/agent"
)

// SpawnAgent launches a detached child process running the hidden "agent"
// subcommand to serve protect for timeout, unless one is already serving
// at iv's address. A spawn failure is non-fatal to the caller, matching
// the design note that agent launch failures must not abort the command
// that triggered them.
//
// There is no fork() in Go; the child instead re-execs the current binary
// and receives protect over an inherited pipe (fd 3) rather than through
// any shared code path that might tempt it to also handle plaintext.
func SpawnAgent(iv [8]byte, protect [32]byte, timeout int) {
	if timeout <= 0 {
		return
	}
	if runtime.GOOS == "windows" {
		return
	}
	if _, ok := agent.Read(iv); ok {
		return
	}

	exePath, err := os.Executable()
	if err != nil {
		return
	}

	reader, writer, err := os.Pipe()
	if err != nil {
		return
	}
	defer reader.Close()

	cmd := exec.Command(exePath, "agent", "--iv", hex.EncodeToString(iv[:]), "--timeout", fmt.Sprintf("%d", timeout))
	cmd.ExtraFiles = []*os.File{reader}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachedAttr()

	if err := cmd.Start(); err != nil {
		writer.Close()
		return
	}

	writer.Write(protect[:])
	writer.Close()
	_ = cmd.Process.Release()
}
