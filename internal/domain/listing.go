// internal/domain/listing.go
package domain

// SourceFormat identifies how a source document is parsed.
type SourceFormat string

const (
	FormatRSS        SourceFormat = "rss"
	FormatHTML       SourceFormat = "html"
	FormatHTMLMobile SourceFormat = "html-mobile"
)

// Listing is one classified-ad candidate extracted from a source document.
// Key is the deduplication identity: the first non-empty of link, guid and
// title. A listing without a usable key is dropped at parse time.
type Listing struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Key         string `json:"key"`
}

// Location pairs a human-readable area label with the source it is scanned
// from. Static configuration, never mutated at runtime.
type Location struct {
	Name   string       `yaml:"name" json:"name"`
	URL    string       `yaml:"url" json:"url"`
	Format SourceFormat `yaml:"format" json:"format"`
}

// ScanSummary counts what one location scan produced.
type ScanSummary struct {
	Fetched  int `json:"fetched"`
	New      int `json:"new"`
	Notified int `json:"notified"`
}
