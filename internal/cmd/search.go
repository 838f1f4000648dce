// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mtreilly/arc-shelf/internal/discover"
	"github.com/mtreilly/arc-shelf/internal/output"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newSearchCmd(lib *shelf.Library, adapter discover.Adapter, log *zap.Logger) *cobra.Command {
	var (
		mediaType string
		add       int
		out       output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog for media",
		Long: `Look a title up in the external catalog. Results are split into
direct matches and similar suggestions. Use --add to put a match
straight onto the shelf.

Example:
  arc-shelf search "blade runner" -T movie --add 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			t, err := parseType(mediaType)
			if err != nil {
				return err
			}

			session := discover.NewSession(adapter, log)
			defer session.Close()

			res, err := session.Search(cmd.Context(), args[0], t)
			if err != nil {
				return err
			}

			if add > 0 {
				if add > len(res.Matches) {
					return fmt.Errorf("no match #%d (got %d)", add, len(res.Matches))
				}
				d := res.Matches[add-1]
				item, err := lib.AddItem(shelf.MediaItem{
					Type:        t,
					Title:       d.Title,
					Creator:     d.Creator,
					Year:        d.Year,
					Description: d.Description,
				}, "")
				if err != nil {
					return err
				}
				fmt.Printf("Added %q to your wishlist (id: %s)\n", item.Title, shortID(item.ID))
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(res)
			}

			if len(res.Matches) == 0 && len(res.Similar) == 0 {
				fmt.Println("No results.")
				return nil
			}
			printDescriptors("Matches", res.Matches)
			printDescriptors("Similar", res.Similar)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "book", "Media type to search (book, movie, game)")
	cmd.Flags().IntVar(&add, "add", 0, "Add match number N to the shelf")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func printDescriptors(heading string, ds []discover.Descriptor) {
	if len(ds) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	table := output.NewTable("#", "Title", "Creator", "Year")
	for i, d := range ds {
		table.AddRow(fmt.Sprintf("%d", i+1), truncate(d.Title, 40), d.Creator, d.Year)
	}
	table.Render()
	fmt.Println()
}
