// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package sampling

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// ListCommand prints the catalogue of generators.
var ListCommand = cli.Command{
	Action:      listAction,
	Name:        "list",
	Usage:       "list the generators of the catalogue",
	Description: "The list command prints the name and a description of every catalogue generator.",
}

func listAction(ctx *cli.Context) error {
	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.AppendHeader(table.Row{"Generator", "Description"})
	for _, name := range Names() {
		t.AppendRow(table.Row{name, catalogue[name].description})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	if _, err := fmt.Fprintf(ctx.App.Writer, "%d generators\n", len(catalogue)); err != nil {
		return err
	}
	return nil
}
