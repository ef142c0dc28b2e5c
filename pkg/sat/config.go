package sat

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// SolverConfig describes how to invoke one external solver
type SolverConfig struct {
	Path string
	Args []string
}

// Config maps solver preset names to their invocation, e.g.
//
//	{"solvers": {"glucose": {"path": "./glucose", "args": ["-model"]}, "kissat": {"path": "kissat"}}}
type Config struct {
	Solvers map[string]SolverConfig
}

func LoadConfig(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot read solver config")
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse solver config %q", file)
	}

	var config Config
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return Config{}, errors.Wrapf(err, "invalid solver config %q", file)
	}
	return config, nil
}

// Runner resolves solver into a Runner. The name "gophersat" selects the embedded solver, a configured preset
// name selects that preset and anything else is taken as an executable path invoked with modelFlag
func (config Config) Runner(solver string, modelFlag string) Runner {
	if solver == GophersatName {
		return NewGophersatRunner()
	} else if preset, ok := config.Solvers[solver]; ok {
		return NewExternalRunner(preset.Path, preset.Args...)
	} else if modelFlag == "" {
		return NewExternalRunner(solver)
	}
	return NewExternalRunner(solver, modelFlag)
}
