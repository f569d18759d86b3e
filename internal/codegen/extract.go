package codegen

import (
	"fmt"
	"regexp"
	"strings"
)

// Extraction runs an ordered fallback chain per artifact, most specific
// first. The chain is heuristic by nature: backend output has no schema
// beyond "likely contains fenced code blocks", so each pattern is kept
// small and testable on its own.

var (
	tsFenceRE   = regexp.MustCompile("(?s)```(?:typescript|ts)[ \t]*\n(.*?)```")
	htmlFenceRE = regexp.MustCompile("(?s)```html[ \t]*\n(.*?)```")
	cssFenceRE  = regexp.MustCompile("(?s)```(?:css|scss)[ \t]*\n(.*?)```")
	anyFenceRE  = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\n(.*?)```")
)

var labeledFences = map[string]*regexp.Regexp{
	KindTypeScript: tsFenceRE,
	KindMarkup:     htmlFenceRE,
	KindStyle:      cssFenceRE,
}

var extByKind = map[string]string{
	KindTypeScript: "ts",
	KindMarkup:     "html",
	KindStyle:      "css",
}

// extractLabeled matches a fence explicitly labeled with the artifact's
// language. Postcondition: returned content is the fence body, trimmed.
func extractLabeled(text, kind string) (string, bool) {
	re, ok := labeledFences[kind]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// extractByFileName matches a fence preceded by a filename comment like
// "// login.component.ts", "<!-- login.component.html -->" or
// "/* login.component.css */". On success the fence is claimed so the
// any-fence fallback of a later artifact skips it.
func extractByFileName(text, baseName, kind string, claimed map[int]bool) (string, bool) {
	ext, ok := extByKind[kind]
	if !ok {
		return "", false
	}
	pattern := fmt.Sprintf(
		`(?s)(?://|<!--|/\*)[ \t]*%s\.component\.%s[^\n]*\n(\x60\x60\x60[a-zA-Z]*[ \t]*\n)(.*?)\x60\x60\x60`,
		regexp.QuoteMeta(baseName), ext,
	)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatchIndex(text)
	if m == nil {
		return "", false
	}
	claimed[m[2]] = true
	return strings.TrimSpace(text[m[4]:m[5]]), true
}

// extractAnyFence is the last resort: the first fenced block whose byte
// range has not already been claimed by another artifact. claimed maps
// block start offsets to true and is updated on success.
func extractAnyFence(text string, claimed map[int]bool) (string, bool) {
	for _, idx := range anyFenceRE.FindAllStringSubmatchIndex(text, -1) {
		if claimed[idx[0]] {
			continue
		}
		claimed[idx[0]] = true
		return strings.TrimSpace(text[idx[2]:idx[3]]), true
	}
	return "", false
}
