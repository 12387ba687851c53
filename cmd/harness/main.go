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

// Command harness compiles and runs the unit tests described in a config
// file against their transform graph.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/transformgraph/harness/cli"
	cliUtil "github.com/transformgraph/harness/cli/util"
)

// set at compile time via -ldflags
var (
	version = "dev"
	program = "harness"
)

func main() {
	ctx := context.Background()

	data := &cliUtil.Data{
		Program: program,
		Version: version,
		Tagline: "unit-test harness for a declarative event-transformation topology",
		Args:    os.Args,
	}

	if err := cli.CLI(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
		os.Exit(1)
	}
}
