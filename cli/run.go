// Copyright (C) 2013-2024+ the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	cliUtil "github.com/transformgraph/harness/cli/util"
	"github.com/transformgraph/harness/config"
	"github.com/transformgraph/harness/unittest"
)

// RunArgs is the CLI parsing structure for the `run` subcommand: compile and
// run every test named in a config file, and report pass/fail.
type RunArgs struct {
	Config  string `arg:"positional,required" help:"path to the transform graph + unit test config file"`
	Verbose bool   `arg:"--verbose" help:"log each test as it runs"`
}

// Run loads the config at Config, compiles every test, runs each one, and
// prints a pass/fail report. It returns an error if any test failed to
// build or to pass, so the caller can set a non-zero exit code.
func (obj *RunArgs) Run(ctx context.Context, data *cliUtil.Data) error {
	runID := uuid.New() // unique handle for this invocation, for log correlation
	if obj.Verbose {
		log.Printf("run: starting run %s for %s", runID, obj.Config)
	}

	cfg, err := config.Load(obj.Config)
	if err != nil {
		return err
	}

	tests, buildFailures := unittest.BuildAll(cfg)
	for _, f := range buildFailures {
		fmt.Println(f)
	}

	failed := len(buildFailures)
	for _, ut := range tests {
		if obj.Verbose {
			log.Printf("run: test '%s'", ut.Name())
		}
		failures := ut.Run()
		if len(failures) == 0 {
			fmt.Printf("ok   %s\n", ut.Name())
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", ut.Name())
		for _, f := range failures {
			fmt.Printf("\t%s\n", f)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d test(s) failed", failed)
	}
	return nil
}
