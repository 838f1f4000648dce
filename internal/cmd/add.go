// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newAddCmd(lib *shelf.Library) *cobra.Command {
	var (
		typeFlag      string
		creator       string
		year          string
		description   string
		originalTitle string
		collection    string
		createColl    bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item to your shelf",
		Long: `Add a book, movie, or game to the shelf. New items start on the
wishlist. Duplicate titles are allowed.

Examples:
  arc-shelf add "Dune" --type book --creator "Frank Herbert" --year 1965
  arc-shelf add "Hades" --type game --collection "Roguelikes" --create-collection`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(typeFlag)
			if err != nil {
				return err
			}

			var collectionID string
			if collection != "" {
				c, err := findCollection(lib, collection, t)
				if err != nil {
					if !createColl {
						return err
					}
					c, err = lib.CreateCollection(collection, "", t)
					if err != nil {
						return err
					}
					fmt.Printf("Created collection: %s\n", c.Title)
				}
				collectionID = c.ID
			}

			item, err := lib.AddItem(shelf.MediaItem{
				Type:          t,
				Title:         args[0],
				OriginalTitle: originalTitle,
				Creator:       creator,
				Year:          year,
				Description:   description,
			}, collectionID)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s %q (id: %s)\n", item.Type, item.Title, shortID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "T", "book", "Media type: book, movie, game")
	cmd.Flags().StringVarP(&creator, "creator", "c", "", "Author, director, or studio")
	cmd.Flags().StringVarP(&year, "year", "y", "", "Release year")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description")
	cmd.Flags().StringVar(&originalTitle, "original-title", "", "Original (untranslated) title")
	cmd.Flags().StringVar(&collection, "collection", "", "Add the item to this collection")
	cmd.Flags().BoolVar(&createColl, "create-collection", false, "Create the collection if it does not exist")

	return cmd
}
