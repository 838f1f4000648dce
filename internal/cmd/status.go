// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newStatusCmd(lib *shelf.Library) *cobra.Command {
	return &cobra.Command{
		Use:   "status <wishlist|current|done> <item> [item...]",
		Short: "Set the status of one or more items",
		Long: `Move items between wishlist, in-progress, and completed.

Examples:
  arc-shelf status current "Dune"
  arc-shelf status done 1a2b3c4d 5e6f7a8b`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStatus(args[0])
			if err != nil {
				return err
			}

			var ids []string
			for _, ref := range args[1:] {
				item, err := findItem(lib, ref)
				if err != nil {
					return err
				}
				ids = append(ids, item.ID)
			}

			if err := lib.SetStatusBulk(ids, st); err != nil {
				return err
			}
			fmt.Printf("Set %d item(s) to %s.\n", len(ids), st)
			return nil
		},
	}
}
