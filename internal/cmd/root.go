// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/discover"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// NewRootCmd creates the root command for arc-shelf.
func NewRootCmd(cfg *config.Config, lib *shelf.Library, adapter discover.Adapter, log *zap.Logger) *cobra.Command {
	if log == nil {
		log = zap.NewNop()
	}

	root := &cobra.Command{
		Use:   "arc-shelf",
		Short: "Track the books, movies, and games on your shelf",
		Long: `Keep a wishlist and review log for books, movies, and games.

arc-shelf provides tools to:
- Add items and track their status, rating, and review
- Attach photo memories to items
- Group items into collections per media type
- Share collections and item edits as URLs, and import them back
- Discover new items through search and recommendations`,
	}

	root.AddCommand(newAddCmd(lib))
	root.AddCommand(newListCmd(lib))
	root.AddCommand(newShowCmd(lib))
	root.AddCommand(newStatusCmd(lib))
	root.AddCommand(newRateCmd(lib))
	root.AddCommand(newReviewCmd(lib))
	root.AddCommand(newDeleteCmd(lib))
	root.AddCommand(newMemoryCmd(lib))
	root.AddCommand(newCollectionCmd(lib))
	root.AddCommand(newShareCmd(cfg, lib))
	root.AddCommand(newImportCmd(lib))
	root.AddCommand(newSearchCmd(lib, adapter, log))
	root.AddCommand(newRecommendCmd(lib, adapter))
	root.AddCommand(newFeaturedCmd(adapter))
	root.AddCommand(newDuplicatesCmd(lib))
	root.AddCommand(newStatsCmd(lib))
	root.AddCommand(newExportCmd(lib))

	return root
}
