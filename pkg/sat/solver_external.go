package sat

import (
	"bytes"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// DefaultModelFlag asks glucose-family solvers to print the model
const DefaultModelFlag = "-model"

// SolverNotFoundError means the solver executable does not exist or is not on the PATH
type SolverNotFoundError struct {
	Path string
	Err  error
}

func (err SolverNotFoundError) Error() string {
	return fmt.Sprintf("SAT solver not found: %v: %v", err.Path, err.Err)
}

func (err SolverNotFoundError) Unwrap() error {
	return err.Err
}

// SolverLaunchError means the solver executable exists but could not be started or waited for
type SolverLaunchError struct {
	Path string
	Err  error
}

func (err SolverLaunchError) Error() string {
	return fmt.Sprintf("error running the SAT solver %v: %v", err.Path, err.Err)
}

func (err SolverLaunchError) Unwrap() error {
	return err.Err
}

type externalRunner struct {
	path string
	args []string
}

// NewExternalRunner runs the executable at path as "path <formula> args...".
// Pass DefaultModelFlag (or the solver's own flag) in args to request a model
func NewExternalRunner(path string, args ...string) Runner {
	return &externalRunner{
		path: path,
		args: args,
	}
}

func (runner *externalRunner) Run(formulaPath string) (string, error) {
	cmd := exec.Command(runner.path, append([]string{formulaPath}, runner.args...)...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	klog.V(2).Infof("running %v", cmd.Args)
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		// Exit-codes are solver specific (10 and 20 are common for satisfiable and unsatisfiable), the status line decides
		klog.V(2).Infof("%v exited with code %d: %v", runner.path, exitErr.ExitCode(), stderr.String())
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return "", SolverNotFoundError{Path: runner.path, Err: err}
	default:
		return "", SolverLaunchError{Path: runner.path, Err: err}
	}

	return stdOut.String(), nil
}
