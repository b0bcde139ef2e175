// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EnrichConfig holds settings for the citation enrichment stage.
type EnrichConfig struct {
	// OpenURLBase is the canonical resolver endpoint prepended to
	// translated OpenURL query strings.
	OpenURLBase string `json:"openurl_base" yaml:"openurl_base"`

	// ProxyPrefixes lists login/redirect wrapper prefixes stripped from
	// reference URLs before parsing.
	ProxyPrefixes []string `json:"proxy_prefixes" yaml:"proxy_prefixes"`

	// StreamingDomain is the allow-listed host for raw media URLs. Raw
	// source URLs on any other host are never surfaced as display links.
	StreamingDomain string `json:"streaming_domain" yaml:"streaming_domain"`

	// PDFLinkTemplate builds download links for archived scanned PDFs.
	// It is expanded with the archive entry's pdf id and filename
	// (e.g. "https://reserves.example.edu/pdf/%s/%s").
	PDFLinkTemplate string `json:"pdf_link_template" yaml:"pdf_link_template"`

	// CDLItemTemplate builds canonical item links for digital-library
	// matches, expanded with the item identifier.
	CDLItemTemplate string `json:"cdl_item_template" yaml:"cdl_item_template"`
}

// CatalogConfig holds settings for the digital-library catalog cache.
type CatalogConfig struct {
	// DBPath is the SQLite file holding the cached catalog and the
	// archived-PDF index.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// IngestConfig holds settings for reading per-course raw record files.
type IngestConfig struct {
	// RecordsDir is the directory of per-course YAML extracts produced by
	// the course-matching stage.
	RecordsDir string `json:"records_dir" yaml:"records_dir"`
}

// ExportConfig holds settings for the import-file writer.
type ExportConfig struct {
	// OutputPath is the tab-separated import file to write.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Enrich  EnrichConfig  `json:"enrich" yaml:"enrich"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Ingest  IngestConfig  `json:"ingest" yaml:"ingest"`
	Export  ExportConfig  `json:"export" yaml:"export"`
}

// DefaultEnrichConfig returns the enrichment settings used when the config
// file does not override them.
func DefaultEnrichConfig() EnrichConfig {
	return EnrichConfig{
		OpenURLBase:     "https://resolver.library.example.edu/openurl?",
		ProxyPrefixes:   []string{"https://login.revproxy.example.edu/login?url="},
		StreamingDomain: "stream.library.example.edu",
		PDFLinkTemplate: "https://reserves.library.example.edu/pdf/%s/%s",
		CDLItemTemplate: "https://cdl.library.example.edu/item/%s",
	}
}
