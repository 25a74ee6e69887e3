// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package datagen

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/suggestio/internal/catalog"
)

// WriteProducts writes the product table in the schema the server loads:
// product_id,product_name,category,image_url,platforms.
func WriteProducts(path string, items []catalog.Item) error {
	return writeCSV(path, [][]string{{"product_id", "product_name", "category", "image_url", "platforms"}},
		func(w *csv.Writer) error {
			for _, it := range items {
				record := []string{
					strconv.Itoa(it.ID),
					it.Name,
					it.Category,
					it.ImageURL,
					strings.Join(it.Platforms, "|"),
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("write product %d: %w", it.ID, err)
				}
			}
			return nil
		})
}

// WriteBehavior writes the interaction table in the schema the server loads:
// user_id,viewed_product_id.
func WriteBehavior(path string, interactions []catalog.Interaction) error {
	return writeCSV(path, [][]string{{"user_id", "viewed_product_id"}},
		func(w *csv.Writer) error {
			for _, rec := range interactions {
				record := []string{
					strconv.Itoa(rec.ProfileID),
					strconv.Itoa(rec.ItemID),
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("write interaction %d/%d: %w", rec.ProfileID, rec.ItemID, err)
				}
			}
			return nil
		})
}

func writeCSV(path string, header [][]string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	for _, record := range header {
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := body(w); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
