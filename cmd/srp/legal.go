// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"github.com/2dChan/srp"
	"github.com/spf13/cobra"
)

func (a *app) newLegalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legal",
		Short: "List the supported point counts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return srp.WriteLegalN(a.stdout)
		},
	}
}
