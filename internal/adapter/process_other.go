//go:build !unix

package adapter

import "os/exec"

// configureProcess keeps the exec.CommandContext default, which kills the
// shell process only.
func configureProcess(_ *exec.Cmd) {}
