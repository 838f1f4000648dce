// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/discover"
	"github.com/mtreilly/arc-shelf/internal/output"
)

func newFeaturedCmd(adapter discover.Adapter) *cobra.Command {
	var (
		mediaType string
		out       output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Browse curated collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			t, err := parseType(mediaType)
			if err != nil {
				return err
			}

			cols, err := adapter.Featured(cmd.Context(), t)
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(cols)
			}
			if len(cols) == 0 {
				fmt.Println("Nothing featured right now.")
				return nil
			}

			for _, c := range cols {
				fmt.Printf("%s", c.Title)
				if c.Author != "" {
					fmt.Printf(" · by %s", c.Author)
				}
				fmt.Println()
				if c.Description != "" {
					fmt.Println(c.Description)
				}
				if len(c.Tags) > 0 {
					fmt.Printf("[%s]\n", strings.Join(c.Tags, ", "))
				}
				table := output.NewTable("Title", "Creator", "Year")
				for _, d := range c.Items {
					table.AddRow(truncate(d.Title, 40), d.Creator, d.Year)
				}
				table.Render()
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "book", "Media type (book, movie, game)")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}
