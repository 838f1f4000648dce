// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newReviewCmd(lib *shelf.Library) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "review <item> [text...]",
		Short: "Write or clear an item's review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}

			updated := *item
			if clear {
				updated.Review = ""
			} else {
				text := strings.Join(args[1:], " ")
				if text == "" {
					return fmt.Errorf("provide review text, or --clear")
				}
				updated.Review = text
			}

			if err := lib.UpdateItem(updated); err != nil {
				return err
			}
			if clear {
				fmt.Printf("Cleared review on %q.\n", item.Title)
			} else {
				fmt.Printf("Saved review on %q.\n", item.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the existing review")
	return cmd
}
