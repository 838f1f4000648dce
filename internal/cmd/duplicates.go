// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newDuplicatesCmd(lib *shelf.Library) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Detect duplicate or similar items",
		Long:  "Scan the shelf for potential duplicates by comparing titles within each media type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := lib.Items()
			if len(items) < 2 {
				fmt.Println("Not enough items to compare.")
				return nil
			}

			var pairs []duplicatePair

			// Compare each pair (O(n^2) but fine for personal shelves)
			for i := 0; i < len(items); i++ {
				for j := i + 1; j < len(items); j++ {
					a, b := items[i], items[j]
					if a.Type != b.Type {
						continue
					}

					// Same creator and title is a strong signal
					if a.Creator != "" && strings.EqualFold(a.Creator, b.Creator) &&
						strings.EqualFold(a.Title, b.Title) {
						pairs = append(pairs, duplicatePair{
							A:      a,
							B:      b,
							Score:  1.0,
							Reason: "identical title and creator",
						})
						continue
					}

					sim := titleSimilarity(a.Title, b.Title)
					if sim >= threshold {
						pairs = append(pairs, duplicatePair{
							A:      a,
							B:      b,
							Score:  sim,
							Reason: fmt.Sprintf("title similarity %.2f", sim),
						})
					}
				}
			}

			sort.Slice(pairs, func(i, j int) bool {
				return pairs[i].Score > pairs[j].Score
			})

			if len(pairs) == 0 {
				fmt.Printf("No duplicates found (threshold %.2f)\n", threshold)
				return nil
			}

			fmt.Printf("Found %d potential duplicate pair(s):\n\n", len(pairs))
			for i, p := range pairs {
				fmt.Printf("[%d] Score: %.2f (%s)\n", i+1, p.Score, p.Reason)
				fmt.Printf("    A: %s  %s\n", shortID(p.A.ID), truncate(p.A.Title, 50))
				fmt.Printf("    B: %s  %s\n", shortID(p.B.ID), truncate(p.B.Title, 50))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.7, "Similarity threshold (0-1)")
	return cmd
}

type duplicatePair struct {
	A      *shelf.MediaItem
	B      *shelf.MediaItem
	Score  float64
	Reason string
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// titleSimilarity is the Jaccard similarity of the titles' word sets,
// ignoring punctuation and very short words.
func titleSimilarity(a, b string) float64 {
	setA := titleWords(a)
	setB := titleWords(b)

	intersection := 0
	for word := range setA {
		if setB[word] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func titleWords(s string) map[string]bool {
	clean := nonWord.ReplaceAllString(strings.ToLower(s), "")
	set := make(map[string]bool)
	for _, word := range strings.Fields(clean) {
		if len(word) > 2 {
			set[word] = true
		}
	}
	return set
}
