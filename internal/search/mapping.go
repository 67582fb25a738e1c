package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for item documents.
//
// Item names are stored uppercase ("CHICKEN BREAST 5OZ"), so the English
// analyzer handles tokenizing and lowercasing for matching. Section and
// category use the keyword analyzer for exact filtering.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Name - primary search target
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = en.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Section - exact filter ("DEPOT", "STORE", "BAKERY", "OTHER")
	sectionFieldMapping := bleve.NewTextFieldMapping()
	sectionFieldMapping.Analyzer = keyword.Name
	sectionFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("section", sectionFieldMapping)

	// Category - exact filter, stored for result display
	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = keyword.Name
	categoryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	// ID - stored but not analyzed
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	idFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Par - stored for result display, range-queryable
	parFieldMapping := bleve.NewNumericFieldMapping()
	parFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("par", parFieldMapping)

	// Temporary flag
	temporaryFieldMapping := bleve.NewBooleanFieldMapping()
	temporaryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("temporary", temporaryFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
