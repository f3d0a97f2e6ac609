package types

// FiltersConfig holds settings for the filter regeneration stage.
type FiltersConfig struct {
	// WordsPath is the path to the korean-words.json dataset.
	WordsPath string `json:"words_path" yaml:"words_path"`

	// FiltersPath is the path the cascading_filters.json artifact is
	// written to.
	FiltersPath string `json:"filters_path" yaml:"filters_path"`
}

// IndexConfig holds settings for the word search index stage.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite index database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// WordsPath is the path to the korean-words.json dataset.
	WordsPath string `json:"words_path" yaml:"words_path"`

	// MaxResults is the maximum number of search results to return (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
