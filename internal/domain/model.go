package domain

// MatchLevel is the coarse bucketing of a 0-100 confidence score.
type MatchLevel string

const (
	LevelHigh   MatchLevel = "high"
	LevelMedium MatchLevel = "medium"
	LevelLow    MatchLevel = "low"
	LevelNone   MatchLevel = "none"
)

// LevelFor maps a score to its level: >=80 high, >=50 medium, >=20 low, else none.
func LevelFor(score int) MatchLevel {
	switch {
	case score >= 80:
		return LevelHigh
	case score >= 50:
		return LevelMedium
	case score >= 20:
		return LevelLow
	default:
		return LevelNone
	}
}

// Rank returns a numeric rank for sorting levels (lower is more confident).
func (l MatchLevel) Rank() int {
	switch l {
	case LevelHigh:
		return 0
	case LevelMedium:
		return 1
	case LevelLow:
		return 2
	default:
		return 3
	}
}

// MatchConfidence describes how well a source fragment corresponds to the
// original markup. It is derived on demand and never cached.
type MatchConfidence struct {
	Score          int        `json:"score"`
	Level          MatchLevel `json:"level"`
	MatchedClasses []string   `json:"matched_classes"`
	MatchedText    string     `json:"matched_text,omitempty"`
	Details        string     `json:"details"`
}

// CodeLocation is the primary region of a source file that the locator
// believes holds the original markup. Lines are 1-based and inclusive.
type CodeLocation struct {
	LineStart    int        `json:"line_start"`
	LineEnd      int        `json:"line_end"`
	Confidence   MatchLevel `json:"confidence"`
	MatchedCode  string     `json:"matched_code"`
	Reason       string     `json:"reason"`
	IsComment    bool       `json:"is_comment"`
	AllInstances []Instance `json:"all_instances,omitempty"`
}

// Instance is one candidate line range used for multi-candidate navigation.
type Instance struct {
	LineStart int  `json:"line_start"`
	LineEnd   int  `json:"line_end"`
	IsComment bool `json:"is_comment"`
}

// Candidate is a file offered for ranking by the repository browser.
type Candidate struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// RankedFile is a candidate with its computed confidence attached.
type RankedFile struct {
	Candidate
	Confidence  MatchConfidence `json:"confidence"`
	IsBestMatch bool            `json:"is_best_match"`
}

// Apply methods reported in ApplyResult.Method.
const (
	MethodExact        = "exact"
	MethodClassPattern = "class_pattern"
	MethodLines        = "lines"
	MethodNone         = "none"
)

// ApplyResult is the outcome of substituting fixed markup into a source
// buffer. When Applied is false, Content holds only the transformed fixed
// markup and the caller must place it manually.
type ApplyResult struct {
	Content string `json:"content"`
	Applied bool   `json:"applied"`
	Method  string `json:"method"`
	Matches int    `json:"matches"`
}

// RepoPreference is the repository remembered for a scanned domain.
type RepoPreference struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// IsZero reports whether the preference carries no repository.
func (p RepoPreference) IsZero() bool {
	return p.Owner == "" || p.Repo == ""
}

// FullName returns "owner/repo".
func (p RepoPreference) FullName() string {
	return p.Owner + "/" + p.Repo
}
