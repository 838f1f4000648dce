// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/output"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newStatsCmd(lib *shelf.Library) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show shelf statistics",
		Long:  `Display counts across the shelf: items by type and status, ratings, memories, collections.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			items := lib.Items()

			typeCounts := make(map[shelf.MediaType]int)
			statusCounts := make(map[shelf.Status]int)
			rated := 0
			ratingSum := 0
			reviewed := 0
			memories := 0
			uncategorized := 0
			for _, it := range items {
				typeCounts[it.Type]++
				statusCounts[it.Status]++
				if it.Rating > 0 {
					rated++
					ratingSum += it.Rating
				}
				if it.Review != "" {
					reviewed++
				}
				memories += len(it.Memories)
				if len(it.CollectionIDs) == 0 {
					uncategorized++
				}
			}

			avgRating := 0.0
			if rated > 0 {
				avgRating = float64(ratingSum) / float64(rated)
			}
			collections := lib.Collections()

			if out.Is(output.OutputJSON) {
				stats := map[string]any{
					"items":          len(items),
					"by_type":        typeCounts,
					"by_status":      statusCounts,
					"rated":          rated,
					"average_rating": avgRating,
					"reviewed":       reviewed,
					"memories":       memories,
					"collections":    len(collections),
					"uncategorized":  uncategorized,
				}
				return output.JSON(stats)
			}

			fmt.Printf("Shelf Statistics\n")
			fmt.Printf("================\n\n")
			fmt.Printf("Items:         %d\n", len(items))
			fmt.Println("By type:")
			for _, t := range []shelf.MediaType{shelf.TypeBook, shelf.TypeMovie, shelf.TypeGame} {
				fmt.Printf("  %s: %d\n", t, typeCounts[t])
			}
			fmt.Println("By status:")
			for _, s := range []shelf.Status{shelf.StatusWishlist, shelf.StatusCurrent, shelf.StatusDone} {
				fmt.Printf("  %s: %d\n", s, statusCounts[s])
			}
			fmt.Printf("Rated:         %d (avg %.1f)\n", rated, avgRating)
			fmt.Printf("Reviewed:      %d\n", reviewed)
			fmt.Printf("Memories:      %d\n", memories)
			fmt.Printf("Collections:   %d\n", len(collections))
			fmt.Printf("Uncategorized: %d\n", uncategorized)

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
