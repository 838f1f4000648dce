// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/share"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newShareCmd(cfg *config.Config, lib *shelf.Library) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Generate share links",
		Long: `Produce a URL that carries a collection or an item edit as an
encoded payload. Shared collections include catalog data only; your
status, ratings, reviews, and memories stay private.`,
	}

	cmd.AddCommand(newShareCollectionCmd(cfg, lib))
	cmd.AddCommand(newShareItemCmd(cfg, lib))

	return cmd
}

func newShareCollectionCmd(cfg *config.Config, lib *shelf.Library) *cobra.Command {
	var (
		mediaType string
		sharer    string
	)

	cmd := &cobra.Command{
		Use:   "collection <collection>",
		Short: "Share a collection as a link",
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
			items := collectionItems(lib, c)

			name := sharer
			if name == "" {
				name = cfg.SharerName
			}

			link, err := share.EncodeCollection(cfg.ShareBaseURL, c, items, name)
			if err != nil {
				return err
			}
			fmt.Println(link)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Disambiguate by media type")
	cmd.Flags().StringVar(&sharer, "as", "", "Name to attribute the share to")

	return cmd
}

func newShareItemCmd(cfg *config.Config, lib *shelf.Library) *cobra.Command {
	var sharer string

	cmd := &cobra.Command{
		Use:   "item <item>",
		Short: "Share an item edit as a link",
		Long: `Encode a single item so another arc-shelf user can merge it into
their library, keeping both names on the collaborator list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}

			name := sharer
			if name == "" {
				name = cfg.SharerName
			}

			link, err := share.EncodeItemEdit(cfg.ShareBaseURL, item, name)
			if err != nil {
				return err
			}
			fmt.Println(link)
			return nil
		},
	}

	cmd.Flags().StringVar(&sharer, "as", "", "Name to attribute the share to")

	return cmd
}
