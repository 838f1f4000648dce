// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

func newExportCmd(lib *shelf.Library) *cobra.Command {
	var (
		format    string // "json", "markdown", "yaml"
		outPath   string // file path or "-" for stdout
		mediaType string
		status    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the shelf to other formats",
		Long:  "Export your items to JSON, Markdown, or YAML for use in other tools.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := shelf.ViewOptions{SortBy: shelf.SortByAdded}
			if mediaType != "" {
				t, err := parseType(mediaType)
				if err != nil {
					return err
				}
				opts.Type = t
			}
			if status != "" {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				opts.Status = s
			}

			items := exportItems(lib, opts)

			var (
				data []byte
				err  error
			)
			switch format {
			case "json":
				data, err = json.MarshalIndent(items, "", "  ")
			case "yaml":
				data, err = yaml.Marshal(items)
			case "markdown":
				data, err = exportMarkdown(lib, items)
			default:
				return fmt.Errorf("unsupported format: %s (choose json, markdown, yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			if outPath == "-" || outPath == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Printf("Exported %d item(s) to %s\n", len(items), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json, markdown, yaml")
	cmd.Flags().StringVarP(&outPath, "file", "F", "-", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&mediaType, "type", "T", "", "Filter by media type")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status")

	return cmd
}

// exportItems flattens the filtered view across all types when no type
// filter is set, since ViewOptions always scopes to one type.
func exportItems(lib *shelf.Library, opts shelf.ViewOptions) []shelf.MediaItem {
	types := []shelf.MediaType{opts.Type}
	if opts.Type == "" {
		types = []shelf.MediaType{shelf.TypeBook, shelf.TypeMovie, shelf.TypeGame}
	}

	var out []shelf.MediaItem
	for _, t := range types {
		o := opts
		o.Type = t
		for _, it := range shelf.View(lib.Items(), o) {
			out = append(out, *it)
		}
	}
	return out
}

// exportMarkdown renders items as a readable Markdown document.
func exportMarkdown(lib *shelf.Library, items []shelf.MediaItem) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Shelf Export\n\n")
	buf.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))
	buf.WriteString(fmt.Sprintf("Total items: %d\n\n---\n\n", len(items)))

	for _, it := range items {
		buf.WriteString(fmt.Sprintf("## %s\n\n", it.Title))
		if it.OriginalTitle != "" {
			buf.WriteString(fmt.Sprintf("*%s*\n\n", it.OriginalTitle))
		}

		buf.WriteString("**Type:** " + string(it.Type) + "\n\n")
		buf.WriteString("**Status:** " + string(it.Status) + "\n\n")
		if it.Creator != "" {
			buf.WriteString("**Creator:** " + it.Creator + "\n\n")
		}
		if it.Year != "" {
			buf.WriteString("**Year:** " + it.Year + "\n\n")
		}
		if it.Rating > 0 {
			buf.WriteString(fmt.Sprintf("**Rating:** %d/5\n\n", it.Rating))
		}
		if it.Description != "" {
			buf.WriteString(it.Description + "\n\n")
		}
		if it.Review != "" {
			buf.WriteString("**Review**\n\n")
			buf.WriteString(it.Review + "\n\n")
		}

		if len(it.CollectionIDs) > 0 {
			var names []string
			for _, id := range it.CollectionIDs {
				if c := lib.Collection(id); c != nil {
					names = append(names, c.Title)
				}
			}
			if len(names) > 0 {
				buf.WriteString("**Collections:** " + strings.Join(names, ", ") + "\n\n")
			}
		}

		if len(it.Memories) > 0 {
			buf.WriteString("### Memories\n\n")
			for _, m := range it.Memories {
				line := m.Caption
				if line == "" {
					line = "(no caption)"
				}
				if m.Location != "" {
					line += fmt.Sprintf(" (%s)", m.Location)
				}
				buf.WriteString(fmt.Sprintf("- %s\n", line))
			}
			buf.WriteString("\n")
		}

		buf.WriteString("---\n\n")
	}

	return buf.Bytes(), nil
}
