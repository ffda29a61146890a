// ABOUTME: Static insight catalog: the ordered universe of possible insights.
// ABOUTME: Loaded once from embedded JSON; passed by value, never mutated.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed insights.json
var defaultCatalogJSON []byte

// Entry declares one possible insight: which track item and question back it,
// and how it is named and grouped when displayed.
type Entry struct {
	InsightKey   string `json:"insightKey"`
	InsightName  string `json:"insightName"`
	ItemCode     string `json:"itemCode"`
	QuestionCode string `json:"questionCode"`
	Topic        string `json:"topic"`
	Unit         string `json:"unit"`
}

// Catalog is an ordered, read-only sequence of insight entries.
// Catalog order is display order throughout the app.
type Catalog []Entry

// Parse decodes a catalog from JSON.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse insight catalog: %w", err)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() Catalog {
	c, err := Parse(defaultCatalogJSON)
	if err != nil {
		// The embedded catalog is validated by tests; a decode failure here
		// means a broken build, not a runtime condition.
		panic(err)
	}
	return c
}

// Lookup returns the entry for an insight key and whether it exists.
func (c Catalog) Lookup(key string) (Entry, bool) {
	for _, e := range c {
		if e.InsightKey == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Keys returns all insight keys in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c))
	for i, e := range c {
		keys[i] = e.InsightKey
	}
	return keys
}
