// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package discover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mtreilly/arc-shelf/internal/shelf"
)

// AIAdapter queries a chat-completions style generative text endpoint
// and coerces its replies into Descriptor records. The service is
// treated as untrusted input: everything it returns is validated and
// the type field is pinned to the requested type.
type AIAdapter struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	log      *zap.Logger
	validate *validator.Validate
}

// NewAIAdapter creates an adapter for the given endpoint and model.
func NewAIAdapter(endpoint, apiKey, model string, log *zap.Logger) *AIAdapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &AIAdapter{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      log,
		validate: validator.New(),
	}
}

const searchPrompt = `You are a media catalog assistant. The user is searching a %s catalog for: %q.
Return JSON with two arrays, "matches" (works whose title matches the query) and
"similar" (related works the user may also like), each entry an object with
string fields "title", "creator", "year", "description". Creator means the
author for books, director for movies, studio for games. Return JSON only.`

// Search asks the service to partition candidates into matches and
// similar suggestions. Service failures degrade to an empty result;
// only cancellation is reported as an error.
func (a *AIAdapter) Search(ctx context.Context, query string, t shelf.MediaType) (*SearchResult, error) {
	var parsed struct {
		Matches []Descriptor `json:"matches"`
		Similar []Descriptor `json:"similar"`
	}
	err := a.complete(ctx, fmt.Sprintf(searchPrompt, t, query), &parsed)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.log.Warn("search degraded to empty results", zap.String("query", query), zap.Error(err))
		return &SearchResult{}, nil
	}
	return &SearchResult{
		Matches: a.sanitize(parsed.Matches, t),
		Similar: a.sanitize(parsed.Similar, t),
	}, nil
}

const recommendPrompt = `You are a media catalog assistant. A user has a %s collection named %q containing: %s.
Suggest up to 5 additional works that fit the collection and are NOT already in it.
Return JSON with one array "items", each entry an object with string fields
"title", "creator", "year", "description". Return JSON only.`

// Recommend suggests new candidates for a named collection, excluding
// ones already present.
func (a *AIAdapter) Recommend(ctx context.Context, name string, members []Descriptor, t shelf.MediaType) ([]Descriptor, error) {
	titles := make([]string, 0, len(members))
	for _, m := range members {
		titles = append(titles, m.Title)
	}
	listing := strings.Join(titles, "; ")
	if listing == "" {
		listing = "(empty)"
	}

	var parsed struct {
		Items []Descriptor `json:"items"`
	}
	err := a.complete(ctx, fmt.Sprintf(recommendPrompt, t, name, listing), &parsed)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.log.Warn("recommend degraded to empty results", zap.String("collection", name), zap.Error(err))
		return nil, nil
	}

	present := make(map[string]bool, len(members))
	for _, m := range members {
		present[strings.ToLower(m.Title)] = true
	}
	out := a.sanitize(parsed.Items, t)
	kept := out[:0]
	for _, d := range out {
		if !present[strings.ToLower(d.Title)] {
			kept = append(kept, d)
		}
	}
	return kept, nil
}

const featuredPrompt = `You are a media catalog editor. Invent 3 appealing curated %s collections.
Return JSON with one array "collections", each entry an object with string
fields "title", "description", "author", an array of string "tags", and an
array "items" of objects with string fields "title", "creator", "year",
"description". Return JSON only.`

// Featured fetches curated-looking collection bundles for display.
func (a *AIAdapter) Featured(ctx context.Context, t shelf.MediaType) ([]FeaturedCollection, error) {
	var parsed struct {
		Collections []FeaturedCollection `json:"collections"`
	}
	err := a.complete(ctx, fmt.Sprintf(featuredPrompt, t), &parsed)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.log.Warn("featured degraded to empty results", zap.Error(err))
		return nil, nil
	}

	out := parsed.Collections[:0]
	for _, fc := range parsed.Collections {
		if fc.Title == "" {
			continue
		}
		fc.Items = a.sanitize(fc.Items, t)
		out = append(out, fc)
	}
	return out, nil
}

// sanitize validates untrusted descriptors and pins their type to the
// requested one.
func (a *AIAdapter) sanitize(in []Descriptor, t shelf.MediaType) []Descriptor {
	out := make([]Descriptor, 0, len(in))
	for _, d := range in {
		if err := a.validate.Struct(&d); err != nil {
			continue
		}
		d.Type = t
		out = append(out, d)
	}
	return out
}

// complete performs a single chat-completions request and unmarshals
// the model's JSON reply into out. No retries.
func (a *AIAdapter) complete(ctx context.Context, prompt string, out any) error {
	if a.endpoint == "" {
		return fmt.Errorf("no endpoint configured")
	}

	reqBody, err := json.Marshal(map[string]any{
		"model": a.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("query service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("service returned %s: %s", resp.Status, string(body))
	}

	var envelope struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Choices) == 0 {
		return fmt.Errorf("empty completion")
	}

	content := stripFences(envelope.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("parse completion: %w", err)
	}
	return nil
}

// stripFences removes a markdown code fence some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
