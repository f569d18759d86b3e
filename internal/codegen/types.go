// Package codegen extracts, repairs, and structurally validates the
// source files embedded in the generative backend's free-text reply.
package codegen

// Artifact kinds, named after the language label the model is asked to
// use on its fenced blocks.
const (
	KindTypeScript = "typescript"
	KindMarkup     = "html"
	KindStyle      = "css"
)

// Severity separates hard failures from advisory findings. Both land in
// the same aggregated list; only hard issues fail a run.
type Severity string

const (
	SeverityHard     Severity = "hard"
	SeverityAdvisory Severity = "advisory"
)

// Issue is one parser or validator finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// GeneratedFile is one extracted artifact.
type GeneratedFile struct {
	FileName  string `json:"file_name"`
	Content   string `json:"content"`
	SizeBytes int    `json:"size_bytes"`
}

// GeneratedFileSet is the parse result for one backend response. Built
// once and immutable afterward. Errors flattens Issues for callers that
// only want text; a set can hold artifacts and errors at the same time.
type GeneratedFileSet struct {
	TypeScript *GeneratedFile `json:"typescript,omitempty"`
	Markup     *GeneratedFile `json:"markup,omitempty"`
	Style      *GeneratedFile `json:"style,omitempty"`
	Issues     []Issue        `json:"issues,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
}

func (s *GeneratedFileSet) addIssue(sev Severity, msg string) {
	s.Issues = append(s.Issues, Issue{Severity: sev, Message: msg})
	s.Errors = append(s.Errors, msg)
}

// HardErrors returns only the messages that should fail a run.
func (s *GeneratedFileSet) HardErrors() []string {
	var out []string
	for _, is := range s.Issues {
		if is.Severity == SeverityHard {
			out = append(out, is.Message)
		}
	}
	return out
}

// ExportEntry is one file of the export manifest.
type ExportEntry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
}
