// Package search provides full-text search over the inventory catalog using
// Bleve. The catalog is small (a few hundred items at most), so the index
// lives entirely in memory and is rebuilt wholesale whenever the catalog
// changes.
package search

import (
	"fmt"

	"github.com/prepstock/prepstock-server/internal/domain"
)

// ItemDocument is the Bleve document for a single catalog item.
type ItemDocument struct {
	ID        string  `json:"id"` // "section/category/name", stable across rebuilds
	Name      string  `json:"name"`
	Section   string  `json:"section"`
	Category  string  `json:"category"`
	Par       float64 `json:"par"`
	Temporary bool    `json:"temporary"`
}

// DocumentID builds the deterministic index key for an item.
func DocumentID(section domain.Section, category, name string) string {
	return fmt.Sprintf("%s/%s/%s", section, category, name)
}

// DocumentsFromCatalog flattens a catalog into index documents.
func DocumentsFromCatalog(catalog *domain.Catalog) []*ItemDocument {
	var docs []*ItemDocument
	for _, sec := range catalog.Sections {
		for _, cat := range sec.Categories {
			for _, item := range cat.Items {
				doc := &ItemDocument{
					ID:        DocumentID(sec.Name, cat.Name, item.Name),
					Name:      item.Name,
					Section:   string(sec.Name),
					Category:  cat.Name,
					Temporary: cat.Name == domain.TemporaryCategory,
				}
				if item.Par != nil {
					doc.Par = *item.Par
				}
				docs = append(docs, doc)
			}
		}
	}
	return docs
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *ItemDocument) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":        d.ID,
		"name":      d.Name,
		"section":   d.Section,
		"category":  d.Category,
		"par":       d.Par,
		"temporary": d.Temporary,
	}
}
