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
	"testing"

	cliUtil "github.com/transformgraph/harness/cli/util"
	_ "github.com/transformgraph/harness/condition"
	_ "github.com/transformgraph/harness/transform"
)

func TestKindsArgsRunSucceeds(t *testing.T) {
	cmd := &KindsArgs{}
	data := &cliUtil.Data{Program: "harness", Version: "test"}
	if err := cmd.Run(context.Background(), data); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
