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

func newListCmd(lib *shelf.Library) *cobra.Command {
	var out output.OutputOptions
	var (
		typeFlag      string
		statusFlag    string
		collection    string
		uncategorized bool
		sortBy        string
		desc          bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items on your shelf",
		Long: `List shelf items of one media type, filtered and sorted.

Examples:
  arc-shelf list                            # books, newest last
  arc-shelf list -T movie --status wishlist # movies still to watch
  arc-shelf list --collection "Sci-Fi"      # members of a collection
  arc-shelf list --sort rating --desc       # best rated first
  arc-shelf list --uncategorized            # items in no collection`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			t, err := parseType(typeFlag)
			if err != nil {
				return err
			}

			opts := shelf.ViewOptions{
				Type:          t,
				Uncategorized: uncategorized,
				SortBy:        shelf.SortKey(sortBy),
				Descending:    desc,
			}
			if statusFlag != "" {
				st, err := parseStatus(statusFlag)
				if err != nil {
					return err
				}
				opts.Status = st
			}
			if collection != "" {
				c, err := findCollection(lib, collection, t)
				if err != nil {
					return err
				}
				opts.CollectionID = c.ID
			}

			items := shelf.View(lib.Items(), opts)
			if len(items) == 0 {
				fmt.Printf("No %ss found.\n", t)
				fmt.Println("Use 'arc-shelf add <title>' to add one.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(items)
			}

			table := output.NewTable("ID", "Title", "Creator", "Status", "Rating", "Added")
			for _, it := range items {
				rating := ""
				if it.Rating > 0 {
					rating = strings.Repeat("*", it.Rating)
				}
				table.AddRow(
					shortID(it.ID),
					truncate(it.Title, 40),
					truncate(it.Creator, 24),
					string(it.Status),
					rating,
					humanize.Time(it.AddedAt),
				)
			}
			table.Render()

			fmt.Printf("\nTotal: %d %s(s)\n", len(items), t)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().StringVarP(&typeFlag, "type", "T", "book", "Media type: book, movie, game")
	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Filter by status: wishlist, current, done")
	cmd.Flags().StringVarP(&collection, "collection", "c", "", "Filter by collection")
	cmd.Flags().BoolVar(&uncategorized, "uncategorized", false, "Only items belonging to no collection")
	cmd.Flags().StringVar(&sortBy, "sort", "added", "Sort key: added, title, rating")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}
