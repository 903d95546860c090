package executor

import "context"

// Executor is the seam between the checks and the host: running a
// read-only query command and reading a file. The tool never writes
// through it.
type Executor interface {
	Run(ctx context.Context, cmd string) (string, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
