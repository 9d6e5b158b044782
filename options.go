package typstify

// ConvertOptions holds options for document rendering.
type ConvertOptions struct {
	Config *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithPaper overrides the page-size identifier.
func WithPaper(paper string) Option {
	return func(opts *ConvertOptions) {
		opts.Config = opts.Config.Clone()
		opts.Config.Paper = paper
	}
}

// WithFont overrides the text font family.
func WithFont(font string) Option {
	return func(opts *ConvertOptions) {
		opts.Config = opts.Config.Clone()
		opts.Config.Font = font
	}
}

// WithLang overrides the text language tag.
func WithLang(lang string) Option {
	return func(opts *ConvertOptions) {
		opts.Config = opts.Config.Clone()
		opts.Config.Lang = lang
	}
}

// defaultConvertOptions returns the default rendering options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
