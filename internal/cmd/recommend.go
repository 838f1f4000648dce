// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/discover"
	"github.com/mtreilly/arc-shelf/internal/output"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newRecommendCmd(lib *shelf.Library, adapter discover.Adapter) *cobra.Command {
	var (
		mediaType string
		out       output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "recommend <collection>",
		Short: "Suggest items that fit a collection",
		Long: `Ask the catalog for items that would fit alongside a collection's
current members. Suggestions are based on the collection's name and
what is already in it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			var t shelf.MediaType
			if mediaType != "" {
				var err error
				if t, err = parseType(mediaType); err != nil {
					return err
				}
			}
			c, err := findCollection(lib, args[0], t)
			if err != nil {
				return err
			}

			members := make([]discover.Descriptor, 0)
			for _, it := range collectionItems(lib, c) {
				members = append(members, discover.Descriptor{
					Title:   it.Title,
					Type:    it.Type,
					Creator: it.Creator,
					Year:    it.Year,
				})
			}

			suggestions, err := adapter.Recommend(cmd.Context(), c.Title, members, c.Type)
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(suggestions)
			}
			if len(suggestions) == 0 {
				fmt.Println("No suggestions right now.")
				return nil
			}
			printDescriptors(fmt.Sprintf("For %q", c.Title), suggestions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Disambiguate by media type")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}
