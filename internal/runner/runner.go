package runner

import (
	"errors"
	"os"
	"os/exec"
)

// Result is the structured outcome of a runner invocation.
type Result struct {
	// Code is the exit status: 0 on success, the child's code on failure,
	// 1 when the failure carries no status (e.g. spawn failure).
	Code int
	// Err is the underlying failure, nil on success.
	Err error
}

// Invoker runs the external test runner. The zero value is not usable; call
// [New].
type Invoker struct {
	// Command is the executable, "npx" by default.
	Command string
	// BaseArgs are the fixed arguments before the filter,
	// ["playwright", "test"] by default.
	BaseArgs []string
}

// New returns an Invoker for the default Playwright invocation.
func New() *Invoker {
	return &Invoker{Command: "npx", BaseArgs: []string{"playwright", "test"}}
}

// Invoke executes the runner with the given filter and passthrough
// arguments, inheriting the parent's standard streams. Arguments are passed
// to the child directly, without a shell, so the filter needs no quoting.
func (v *Invoker) Invoke(filter string, passthrough []string) Result {
	cmd := exec.Command(v.Command, v.argv(filter, passthrough)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{Code: 0}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by signal; no status to report.
			code = 1
		}
		return Result{Code: code, Err: err}
	}
	return Result{Code: 1, Err: err}
}

// argv assembles the child argument list: fixed args, the filter, then
// passthrough arguments verbatim and in order.
func (v *Invoker) argv(filter string, passthrough []string) []string {
	args := make([]string, 0, len(v.BaseArgs)+2+len(passthrough))
	args = append(args, v.BaseArgs...)
	args = append(args, "--grep", filter)
	args = append(args, passthrough...)
	return args
}
