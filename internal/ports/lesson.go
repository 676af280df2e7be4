package ports

// Lesson is compiled lesson material ready for a presentation layer.
type Lesson struct {
	Entries []DictionaryEntry `json:"entries"`
	// TSV is Entries rendered as phrase<TAB>stroke lines.
	TSV string `json:"tsv"`
	// Words is the source word list, set for lessons built from history.
	Words string `json:"words,omitempty"`

	DictionaryReady   bool   `json:"dictionary_ready"`
	DictionaryVersion uint64 `json:"dictionary_version"`
	DictionarySize    int    `json:"dictionary_size"`
}
