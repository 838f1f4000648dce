// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/output"
	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newMemoryCmd(lib *shelf.Library) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "memory",
		Aliases: []string{"mem"},
		Short:   "Attach photo memories to items",
		Long:    `Add, list, and remove photo memories pinned to a shelf item.`,
	}

	cmd.AddCommand(newMemoryAddCmd(lib))
	cmd.AddCommand(newMemoryListCmd(lib))
	cmd.AddCommand(newMemoryRemoveCmd(lib))

	return cmd
}

func newMemoryAddCmd(lib *shelf.Library) *cobra.Command {
	var (
		image    string
		caption  string
		location string
	)

	cmd := &cobra.Command{
		Use:   "add <item> --image <path>",
		Short: "Add a photo memory to an item",
		Long: `Attach an image file as a memory. The optional location note is a
page number for books or a timestamp for movies and games.

Example:
  arc-shelf memory add "Dune" --image cover.jpg --caption "Beach read" --location "p. 214"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}
			dataURI, err := imageDataURI(image)
			if err != nil {
				return err
			}

			mem := shelf.Memory{
				ID:        uuid.New().String(),
				Image:     dataURI,
				Caption:   caption,
				Location:  location,
				CreatedAt: time.Now(),
			}

			updated := *item
			// Newest first.
			updated.Memories = append([]shelf.Memory{mem}, item.Memories...)
			if err := lib.UpdateItem(updated); err != nil {
				return err
			}

			fmt.Printf("Added memory to %q (id: %s)\n", item.Title, shortID(mem.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&image, "image", "i", "", "Path to the image file (required)")
	cmd.Flags().StringVarP(&caption, "caption", "c", "", "Caption text")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Page number or timestamp")
	cmd.MarkFlagRequired("image")

	return cmd
}

func newMemoryListCmd(lib *shelf.Library) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "list <item>",
		Short: "List an item's memories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}

			if len(item.Memories) == 0 {
				fmt.Printf("No memories on %q.\n", item.Title)
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(item.Memories)
			}

			table := output.NewTable("ID", "Caption", "Location", "Added")
			for _, m := range item.Memories {
				table.AddRow(shortID(m.ID), truncate(m.Caption, 40), m.Location, humanize.Time(m.CreatedAt))
			}
			table.Render()
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}

func newMemoryRemoveCmd(lib *shelf.Library) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <memory-id>",
		Short: "Remove a memory from an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(lib, args[0])
			if err != nil {
				return err
			}

			updated := *item
			kept := make([]shelf.Memory, 0, len(item.Memories))
			removed := false
			for _, m := range item.Memories {
				if m.ID == args[1] || (len(args[1]) >= 8 && strings.HasPrefix(m.ID, args[1])) {
					removed = true
					continue
				}
				kept = append(kept, m)
			}
			if !removed {
				return fmt.Errorf("memory not found: %s", args[1])
			}

			updated.Memories = kept
			if err := lib.UpdateItem(updated); err != nil {
				return err
			}
			fmt.Printf("Removed memory from %q.\n", item.Title)
			return nil
		},
	}
}

// imageDataURI reads an image file and embeds it as a data URI.
func imageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
