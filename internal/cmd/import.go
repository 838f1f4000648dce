// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/share"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newImportCmd(lib *shelf.Library) *cobra.Command {
	return &cobra.Command{
		Use:   "import <link-or-token>",
		Short: "Import a shared collection or item edit",
		Long: `Decode a share link (or its bare token) and merge it into the
library. Shared collections arrive as a new collection; items you
already own are linked into it instead of duplicated. Item edits update
the matching item in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := share.Decode(args[0])
			if err != nil {
				if errors.Is(err, share.ErrInvalidToken) {
					return errors.New("could not read that share link")
				}
				return err
			}

			switch p.Kind {
			case share.KindCollection:
				res, err := share.ImportCollection(lib, p.Collection)
				if err != nil {
					return err
				}
				fmt.Printf("Imported collection %q: %d item(s) added, %d already on your shelf.\n",
					res.Collection.Title, res.Created, res.Linked)
			case share.KindItemEdit:
				item, err := share.AcceptItemEdit(lib, p.ItemEdit)
				if err != nil {
					return err
				}
				fmt.Printf("Applied edit to %q from %s.\n", item.Title, p.ItemEdit.SharedBy)
			}
			return nil
		},
	}
}
