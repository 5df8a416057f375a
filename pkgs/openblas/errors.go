package openblas

import "fmt"

// ConfigError reports a missing or uninitialized OpenBLAS source checkout.
// It is returned before any staging side effect takes place.
type ConfigError struct {
	Dir string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("openblas source checkout at %s has no Makefile: clone the OpenBLAS sources there or set OPENBLAS_SOURCE", e.Dir)
}

// StageError reports a filesystem failure while staging the source tree.
type StageError struct {
	Path string
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// LaunchError reports that the external build tool could not be started at
// all, as opposed to running and failing.
type LaunchError struct {
	Cmd string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("start `%s`: %v", e.Cmd, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports that the external build ran and exited non-zero. The
// out.log and err.log files in the staged directory hold its output.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("`%s` exited with status %d (see out.log and err.log in the build directory)", e.Cmd, e.Code)
}
