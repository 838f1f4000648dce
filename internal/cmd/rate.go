// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newRateCmd(lib *shelf.Library) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <item> <1-5|0>",
		Short: "Rate an item (0 clears the rating)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.Atoi(args[1])
			if err != nil || rating < 0 || rating > 5 {
				return fmt.Errorf("rating must be 1-5, or 0 to clear")
			}

			updated := *item
			updated.Rating = rating
			if err := lib.UpdateItem(updated); err != nil {
				return err
			}

			if rating == 0 {
				fmt.Printf("Cleared rating on %q.\n", item.Title)
			} else {
				fmt.Printf("Rated %q %d/5.\n", item.Title, rating)
			}
			return nil
		},
	}
}
