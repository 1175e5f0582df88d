package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// RunTasker executes a tasker command with pre-split arguments. Stdin is
// optional.
func RunTasker(ctx context.Context, env []string, binary string, args []string, stdin string, nolog bool) (stdout, stderr []byte, err error) {
	var outData, errData bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &outData
	cmd.Stderr = &errData
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = commandEnv(env, nolog)

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}

// StartTasker starts a long running tasker command (e.g: watch) writing its
// standard output to out. The command is killed when the context is cancelled.
func StartTasker(ctx context.Context, env []string, binary string, args []string, out *SyncBuffer, nolog bool) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = out
	cmd.Env = commandEnv(env, nolog)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}

// commandEnv returns os.Environ() with the custom env on top.
// In Go's exec.Cmd, when duplicate keys exist, the last one wins.
func commandEnv(env []string, nolog bool) []string {
	newEnv := append([]string{}, os.Environ()...)
	newEnv = append(newEnv, env...)
	if nolog {
		newEnv = append(newEnv, "TASKER_NO_LOG=true")
	}
	return newEnv
}
