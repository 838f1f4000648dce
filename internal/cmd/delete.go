// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newDeleteCmd(lib *shelf.Library) *cobra.Command {
	var fromCollection string

	cmd := &cobra.Command{
		Use:   "delete <item> [item...]",
		Short: "Delete items, or remove them from a collection",
		Long: `Delete items from the shelf entirely. With --from-collection,
only remove their membership in that collection and leave the items
in place.

Examples:
  arc-shelf delete 1a2b3c4d                      # gone from the shelf
  arc-shelf delete 1a2b3c4d --from-collection "Sci-Fi"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids []string
			for _, ref := range args {
				item, err := findItem(lib, ref)
				if err != nil {
					return err
				}
				ids = append(ids, item.ID)
			}

			var collectionID string
			if fromCollection != "" {
				c, err := findCollection(lib, fromCollection, "")
				if err != nil {
					return err
				}
				collectionID = c.ID
			}

			if err := lib.RemoveBulk(ids, collectionID); err != nil {
				return err
			}

			if collectionID != "" {
				fmt.Printf("Removed %d item(s) from %s.\n", len(ids), fromCollection)
			} else {
				fmt.Printf("Deleted %d item(s).\n", len(ids))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromCollection, "from-collection", "", "Only remove membership in this collection")
	return cmd
}
