// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/output"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newShowCmd(lib *shelf.Library) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show <item>",
		Short: "Show one item in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(item)
			}

			fmt.Printf("%s (%s)\n", item.Title, item.Type)
			if item.OriginalTitle != "" {
				fmt.Printf("Original title: %s\n", item.OriginalTitle)
			}
			if item.Creator != "" {
				fmt.Printf("Creator: %s\n", item.Creator)
			}
			if item.Year != "" {
				fmt.Printf("Year: %s\n", item.Year)
			}
			fmt.Printf("Status: %s\n", item.Status)
			if item.Rating > 0 {
				fmt.Printf("Rating: %s (%d/5)\n", strings.Repeat("*", item.Rating), item.Rating)
			}
			if item.Review != "" {
				fmt.Printf("Review: %s\n", item.Review)
			}
			if item.Description != "" {
				fmt.Printf("\n%s\n", item.Description)
			}

			if len(item.CollectionIDs) > 0 {
				var names []string
				for _, cid := range item.CollectionIDs {
					if c := lib.Collection(cid); c != nil {
						names = append(names, c.Title)
					}
				}
				fmt.Printf("\nCollections: %s\n", strings.Join(names, ", "))
			}
			if len(item.Collaborators) > 0 {
				fmt.Printf("Edited with: %s\n", strings.Join(item.Collaborators, ", "))
			}

			if len(item.Memories) > 0 {
				fmt.Printf("\nMemories (%d):\n", len(item.Memories))
				for _, m := range item.Memories {
					line := fmt.Sprintf("  [%s] %s", shortID(m.ID), m.Caption)
					if m.Location != "" {
						line += fmt.Sprintf(" @ %s", m.Location)
					}
					fmt.Printf("%s (%s)\n", line, humanize.Time(m.CreatedAt))
				}
			}

			fmt.Printf("\nAdded %s (id: %s)\n", humanize.Time(item.AddedAt), item.ID)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
