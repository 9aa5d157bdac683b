package stepindex

// Definition is one step definition found in a step file: a decorator line
// such as @given('the user is "{role}"'). Entries are immutable once created
// and live for a single scan.
type Definition struct {
	File       string `json:"file"`
	Line       int    `json:"line"` // 1-based
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Keyword    string `json:"keyword"` // lowercased: given, when, then, step
}

// Undefined is one feature-file step line with no definition whose normalized
// pattern matches. One entry per occurrence — repeats are not deduplicated.
type Undefined struct {
	FeatureFile string `json:"feature_file"`
	Line        int    `json:"line"` // 1-based
	Text        string `json:"text"` // trimmed original line
	Normalized  string `json:"normalized"`
}
