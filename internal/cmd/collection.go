// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/output"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newCollectionCmd(lib *shelf.Library) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Manage collections",
		Long:    `Create, inspect, and edit collections, and assign items to them.`,
	}

	cmd.AddCommand(newCollectionCreateCmd(lib))
	cmd.AddCommand(newCollectionListCmd(lib))
	cmd.AddCommand(newCollectionShowCmd(lib))
	cmd.AddCommand(newCollectionUpdateCmd(lib))
	cmd.AddCommand(newCollectionDeleteCmd(lib))
	cmd.AddCommand(newCollectionSetCmd(lib))

	return cmd
}

func newCollectionCreateCmd(lib *shelf.Library) *cobra.Command {
	var (
		description string
		mediaType   string
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(mediaType)
			if err != nil {
				return err
			}
			c, err := lib.CreateCollection(args[0], description, t)
			if err != nil {
				if errors.Is(err, shelf.ErrDuplicateTitle) {
					return fmt.Errorf("a %s collection named %q already exists", t, strings.TrimSpace(args[0]))
				}
				return err
			}
			fmt.Printf("Created collection %q (id: %s)\n", c.Title, shortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Collection description")
	cmd.Flags().StringVarP(&mediaType, "type", "T", "book", "Media type (book, movie, game)")

	return cmd
}

func newCollectionListCmd(lib *shelf.Library) *cobra.Command {
	var (
		mediaType string
		out       output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			cols := lib.Collections()
			if mediaType != "" {
				t, err := parseType(mediaType)
				if err != nil {
					return err
				}
				filtered := cols[:0]
				for _, c := range cols {
					if c.Type == t {
						filtered = append(filtered, c)
					}
				}
				cols = filtered
			}

			if len(cols) == 0 {
				fmt.Println("No collections yet. Create one with: arc-shelf collection create <title>")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(cols)
			}

			table := output.NewTable("ID", "Title", "Type", "Items", "Created")
			for _, c := range cols {
				n := len(collectionItems(lib, c))
				table.AddRow(shortID(c.ID), c.Title, string(c.Type), fmt.Sprintf("%d", n), humanize.Time(c.CreatedAt))
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Filter by media type")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newCollectionShowCmd(lib *shelf.Library) *cobra.Command {
	var (
		mediaType string
		out       output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "show <collection>",
		Short: "Show a collection and its items",
		Args:  cobra.ExactArgs(1),
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
			items := collectionItems(lib, c)

			if out.Is(output.OutputJSON) {
				return output.JSON(struct {
					Collection *shelf.Collection  `json:"collection"`
					Items      []*shelf.MediaItem `json:"items"`
				}{c, items})
			}

			fmt.Printf("%s (%s)\n", c.Title, c.Type)
			if c.Description != "" {
				fmt.Println(c.Description)
			}
			fmt.Printf("Created %s · %d item(s)\n\n", humanize.Time(c.CreatedAt), len(items))

			if len(items) == 0 {
				return nil
			}
			table := output.NewTable("ID", "Title", "Creator", "Status", "Rating")
			for _, it := range items {
				table.AddRow(shortID(it.ID), truncate(it.Title, 40), it.Creator, string(it.Status), strings.Repeat("*", it.Rating))
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Disambiguate by media type")
	out.AddOutputFlags(cmd, output.OutputTable)

	return cmd
}

func newCollectionUpdateCmd(lib *shelf.Library) *cobra.Command {
	var (
		title       string
		description string
		mediaType   string
	)

	cmd := &cobra.Command{
		Use:   "update <collection>",
		Short: "Rename a collection or edit its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			newTitle := c.Title
			if cmd.Flags().Changed("title") {
				newTitle = title
			}
			newDesc := c.Description
			if cmd.Flags().Changed("description") {
				newDesc = description
			}

			if _, err := lib.UpdateCollection(c.ID, newTitle, newDesc); err != nil {
				if errors.Is(err, shelf.ErrDuplicateTitle) {
					return fmt.Errorf("a %s collection named %q already exists", c.Type, strings.TrimSpace(newTitle))
				}
				return err
			}
			fmt.Printf("Updated collection %q.\n", strings.TrimSpace(newTitle))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Disambiguate by media type")

	return cmd
}

func newCollectionDeleteCmd(lib *shelf.Library) *cobra.Command {
	var mediaType string

	cmd := &cobra.Command{
		Use:   "delete <collection>",
		Short: "Delete a collection",
		Long:  `Delete a collection. Items in it are kept and become uncategorized unless they belong to other collections.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if err := lib.DeleteCollection(c.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted collection %q.\n", c.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Disambiguate by media type")

	return cmd
}

func newCollectionSetCmd(lib *shelf.Library) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <item> [collection]...",
		Short: "Replace an item's collection membership",
		Long: `Set exactly which collections an item belongs to. Passing no
collections removes the item from all of them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(args)-1)
			for _, ref := range args[1:] {
				c, err := findCollection(lib, ref, item.Type)
				if err != nil {
					return err
				}
				ids = append(ids, c.ID)
			}

			if err := lib.SetItemCollections(item.ID, ids); err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Printf("%q is now uncategorized.\n", item.Title)
			} else {
				fmt.Printf("%q is now in %d collection(s).\n", item.Title, len(ids))
			}
			return nil
		},
	}

	return cmd
}
