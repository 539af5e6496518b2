package pipeline

// RenderOptions control how the parsed document is written out.
type RenderOptions struct {
	// FigureWithCaption wraps images in <figure> with the title as caption.
	FigureWithCaption bool `yaml:"figureWithCaption" toml:"figureWithCaption" json:"figureWithCaption"`
	// IgnoreEmptyLinks renders [text]() as plain text.
	IgnoreEmptyLinks bool `yaml:"ignoreEmptyLinks" toml:"ignoreEmptyLinks" json:"ignoreEmptyLinks"`
	// Unsafe lets raw HTML and dangerous URLs through.
	Unsafe bool `yaml:"unsafe" toml:"unsafe" json:"unsafe"`
	// HardWraps renders soft line breaks as <br />.
	HardWraps bool `yaml:"hardWraps" toml:"hardWraps" json:"hardWraps"`
	// Sanitize runs the final HTML through a bluemonday UGC policy.
	Sanitize bool `yaml:"sanitize" toml:"sanitize" json:"sanitize"`
}

// ExtensionOptions toggle markdown syntax beyond CommonMark.
type ExtensionOptions struct {
	Autolink                 bool `yaml:"autolink" toml:"autolink" json:"autolink"`
	Table                    bool `yaml:"table" toml:"table" json:"table"`
	Strikethrough            bool `yaml:"strikethrough" toml:"strikethrough" json:"strikethrough"`
	Tasklist                 bool `yaml:"tasklist" toml:"tasklist" json:"tasklist"`
	Footnotes                bool `yaml:"footnotes" toml:"footnotes" json:"footnotes"`
	DescriptionLists         bool `yaml:"descriptionLists" toml:"descriptionLists" json:"descriptionLists"`
	Alerts                   bool `yaml:"alerts" toml:"alerts" json:"alerts"`
	Shortcodes               bool `yaml:"shortcodes" toml:"shortcodes" json:"shortcodes"`
	Wikilinks                bool `yaml:"wikilinks" toml:"wikilinks" json:"wikilinks"`
	WikilinksTitleBeforePipe bool `yaml:"wikilinksTitleBeforePipe" toml:"wikilinksTitleBeforePipe" json:"wikilinksTitleBeforePipe"`
	Tagfilter                bool `yaml:"tagfilter" toml:"tagfilter" json:"tagfilter"`
	Highlight                bool `yaml:"highlight" toml:"highlight" json:"highlight"`
	Typographer              bool `yaml:"typographer" toml:"typographer" json:"typographer"`
	SyntaxHighlighting       bool `yaml:"syntaxHighlighting" toml:"syntaxHighlighting" json:"syntaxHighlighting"`
}

// Options configures GoldmarkConverter.
type Options struct {
	Render    RenderOptions    `yaml:"render" toml:"render" json:"render"`
	Extension ExtensionOptions `yaml:"extension" toml:"extension" json:"extension"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Render: RenderOptions{
			FigureWithCaption: true,
			IgnoreEmptyLinks:  true,
		},
		Extension: ExtensionOptions{
			Autolink:           true,
			Table:              true,
			Strikethrough:      true,
			Tasklist:           true,
			Footnotes:          true,
			DescriptionLists:   true,
			Alerts:             true,
			Shortcodes:         true,
			Wikilinks:          true,
			Tagfilter:          true,
			Highlight:          true,
			SyntaxHighlighting: true,
		},
	}
}
