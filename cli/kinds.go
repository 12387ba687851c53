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
	"sort"

	cliUtil "github.com/transformgraph/harness/cli/util"
	"github.com/transformgraph/harness/condition"
	"github.com/transformgraph/harness/transform"
)

// KindsArgs is the CLI parsing structure for the `kinds` subcommand: list
// every registered transform and condition kind.
type KindsArgs struct{}

// Run prints every registered transform and condition kind, one per line,
// sorted for stable output.
func (obj *KindsArgs) Run(ctx context.Context, data *cliUtil.Data) error {
	transforms := transform.RegisteredKinds()
	sort.Strings(transforms)
	fmt.Println("transforms:")
	for _, k := range transforms {
		fmt.Printf("\t%s\n", k)
	}

	conditions := condition.RegisteredKinds()
	sort.Strings(conditions)
	fmt.Println("conditions:")
	for _, k := range conditions {
		fmt.Printf("\t%s\n", k)
	}
	return nil
}
