package types

// Metadata holds the document metadata decoded from YAML frontmatter.
// Only title is recognized; unknown keys are dropped by the decoder.
type Metadata struct {
	Title string `yaml:"title"`
}

// RenderConfig holds the Typst page-setup values written ahead of the body.
type RenderConfig struct {
	Paper           string
	Font            string
	FontSize        string
	Lang            string
	Leading         string
	FirstLineIndent string
	TitleSize       string
}

// DefaultRenderConfig returns the stock page setup: A4 paper, SimSun 12pt
// Chinese text, 1.5em leading with a 2em first-line indent.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Paper:           "a4",
		Font:            "SimSun",
		FontSize:        "12pt",
		Lang:            "zh",
		Leading:         "1.5em",
		FirstLineIndent: "2em",
		TitleSize:       "22pt",
	}
}

// Clone returns a copy so option setters never mutate the shared default.
func (c *RenderConfig) Clone() *RenderConfig {
	out := *c
	return &out
}
