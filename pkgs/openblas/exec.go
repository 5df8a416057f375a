package openblas

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Log file names created inside the staged directory. They survive the call,
// success or failure, for postmortem inspection.
const (
	outLogName = "out.log"
	errLogName = "err.log"
)

// runTool launches the external build tool in dir with stdout and stderr
// redirected to out.log and err.log, and blocks until it exits. A non-zero
// exit becomes *ExitError; a failure to spawn becomes *LaunchError. Failing
// to create either log file aborts before anything is spawned.
func runTool(ctx context.Context, tool, dir string, args []string, env map[string]string) error {
	outLog, err := os.Create(filepath.Join(dir, outLogName))
	if err != nil {
		return fmt.Errorf("create build log: %w", err)
	}
	defer outLog.Close()
	errLog, err := os.Create(filepath.Join(dir, errLogName))
	if err != nil {
		return fmt.Errorf("create build log: %w", err)
	}
	defer errLog.Close()

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	cmd.Stdout = outLog
	cmd.Stderr = errLog
	if len(env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), env)
	}
	if err := cmd.Run(); err != nil {
		cmdline := strings.Join(cmd.Args, " ")
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return &ExitError{Cmd: cmdline, Code: exit.ExitCode()}
		}
		return &LaunchError{Cmd: cmdline, Err: err}
	}
	return nil
}

func mergeEnv(base []string, override map[string]string) []string {
	envMap := make(map[string]string, len(base))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range override {
		envMap[k] = v
	}
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+envMap[k])
	}
	return out
}
