package section

// Section is one full-viewport entry of a sequence. Content is opaque to the
// controller; the host renders it.
type Section struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Document is a section sequence embedded in a scrollable page.
type Document struct {
	Intro    string    `yaml:"intro"`
	Outro    string    `yaml:"outro"`
	Sections []Section `yaml:"sections"`
	// Titles overrides Sections[i].Title when entry i is non-empty.
	Titles []string `yaml:"titles,omitempty"`
}

// Direction is the sign of a navigation step.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Boundary reports whether the sequence has been exhausted at either end.
type Boundary int

const (
	Inside Boundary = iota
	AtStart
	AtEnd
)

func (b Boundary) String() string {
	switch b {
	case AtStart:
		return "at_start"
	case AtEnd:
		return "at_end"
	default:
		return "inside"
	}
}

// ResolveTitles returns one title per section, applying non-empty overrides.
func ResolveTitles(sections []Section, overrides []string) []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
		if i < len(overrides) && overrides[i] != "" {
			titles[i] = overrides[i]
		}
		if titles[i] == "" {
			titles[i] = "Section"
		}
	}
	return titles
}
