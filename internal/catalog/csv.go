// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV schemas for the two load-time data sources. Columns are matched by
// header name, not position, so extra columns are tolerated.
const (
	colProductID   = "product_id"
	colProductName = "product_name"
	colCategory    = "category"
	colImageURL    = "image_url"
	colPlatforms   = "platforms"

	colUserID        = "user_id"
	colViewedProduct = "viewed_product_id"
)

// platformSeparator joins platform labels within the products CSV.
const platformSeparator = "|"

// LoadStore reads the product catalog from a CSV file.
//
// A missing, unreadable, or malformed file is an error; callers treat this as
// fatal at startup (the process must not serve traffic over partial data).
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog source: %w", err)
	}
	defer func() { _ = f.Close() }()

	items, err := readItems(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog source %s: %w", path, err)
	}

	return NewStore(items), nil
}

// LoadLog reads the interaction log from a CSV file. Error semantics match
// LoadStore.
func LoadLog(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interaction source: %w", err)
	}
	defer func() { _ = f.Close() }()

	interactions, err := readInteractions(f)
	if err != nil {
		return nil, fmt.Errorf("read interaction source %s: %w", path, err)
	}

	return NewLog(interactions), nil
}

// readItems parses catalog rows from r.
func readItems(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)

	cols, err := headerIndex(cr, colProductID, colProductName, colCategory, colImageURL, colPlatforms)
	if err != nil {
		return nil, err
	}

	var items []Item
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		id, err := strconv.Atoi(record[cols[colProductID]])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", line, colProductID, err)
		}

		items = append(items, Item{
			ID:        id,
			Name:      record[cols[colProductName]],
			Category:  record[cols[colCategory]],
			ImageURL:  record[cols[colImageURL]],
			Platforms: splitPlatforms(record[cols[colPlatforms]]),
		})
	}

	return items, nil
}

// readInteractions parses interaction rows from r.
func readInteractions(r io.Reader) ([]Interaction, error) {
	cr := csv.NewReader(r)

	cols, err := headerIndex(cr, colUserID, colViewedProduct)
	if err != nil {
		return nil, err
	}

	var interactions []Interaction
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		profileID, err := strconv.Atoi(record[cols[colUserID]])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", line, colUserID, err)
		}
		itemID, err := strconv.Atoi(record[cols[colViewedProduct]])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", line, colViewedProduct, err)
		}

		interactions = append(interactions, Interaction{ProfileID: profileID, ItemID: itemID})
	}

	return interactions, nil
}

// headerIndex reads the header row and maps each required column name to its
// position.
func headerIndex(cr *csv.Reader, required ...string) (map[string]int, error) {
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	return cols, nil
}

// splitPlatforms splits the |-joined platform list, dropping empty labels.
func splitPlatforms(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, platformSeparator)
	platforms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			platforms = append(platforms, p)
		}
	}
	return platforms
}
