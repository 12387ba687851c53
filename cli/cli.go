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

// Package cli handles all of the command line parsing for the harness. It's
// the first entry point after main and dispatches to the run/kinds
// subcommands.
package cli

import (
	"context"
	"fmt"
	"os"

	cliUtil "github.com/transformgraph/harness/cli/util"
	"github.com/transformgraph/harness/util/errwrap"

	"github.com/alexflint/go-arg"
)

// CLI is the entry point for using the harness from the command line.
func CLI(ctx context.Context, data *cliUtil.Data) error {
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}

	args := Args{}
	args.version = data.Version
	args.description = data.Tagline

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		return errwrap.Wrapf(err, "cli config error")
	}
	err = parser.Parse(data.Args[1:])
	if err == arg.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Printf("%s\n", data.Version)
		return nil
	}
	if err != nil {
		return cliUtil.CliParseError(err)
	}

	if ok, err := args.Run(ctx, data); err != nil {
		return err
	} else if ok {
		return nil
	}

	parser.WriteHelp(os.Stdout)
	return nil
}

// Args is the top-level CLI parsing structure.
type Args struct {
	RunCmd   *RunArgs   `arg:"subcommand:run" help:"compile and run the unit tests in a config file"`
	KindsCmd *KindsArgs `arg:"subcommand:kinds" help:"list every registered transform and condition kind"`

	version     string `arg:"-"` // ignored from parsing
	description string `arg:"-"` // ignored from parsing
}

// Version implements the version-reporting half of go-arg's API.
func (obj *Args) Version() string { return obj.version }

// Description implements the description-reporting half of go-arg's API.
func (obj *Args) Description() string { return obj.description }

// Run executes the activated subcommand. It returns true if one activated.
func (obj *Args) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	if cmd := obj.RunCmd; cmd != nil {
		return true, cmd.Run(ctx, data)
	}
	if cmd := obj.KindsCmd; cmd != nil {
		return true, cmd.Run(ctx, data)
	}
	return false, nil
}
