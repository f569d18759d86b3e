package codegen

import (
	"regexp"
	"strings"
)

const minMarkupLength = 20

var exportedComponentRE = regexp.MustCompile(`export\s+class\s+\w+Component\b`)

var materialButtonMarkers = []string{
	"mat-raised-button",
	"mat-button",
	"mat-stroked-button",
	"mat-flat-button",
}

// validateTypeScript checks for the component declaration and the
// exported class marker. Both are hard: a TypeScript artifact without
// them is not an Angular component.
func validateTypeScript(set *GeneratedFileSet, content string) {
	if !strings.Contains(content, "@Component") {
		set.addIssue(SeverityHard, "typescript artifact missing @Component declaration")
	}
	if !exportedComponentRE.MatchString(content) {
		set.addIssue(SeverityHard, "typescript artifact missing exported component class")
	}
}

// validateMarkup checks minimal length (hard) and, when a generic button
// appears, the presence of a Material button attribute (advisory).
func validateMarkup(set *GeneratedFileSet, content string) {
	if len(content) < minMarkupLength {
		set.addIssue(SeverityHard, "html artifact below minimal length")
		return
	}
	if !strings.Contains(content, "<button") {
		return
	}
	for _, marker := range materialButtonMarkers {
		if strings.Contains(content, marker) {
			return
		}
	}
	set.addIssue(SeverityAdvisory, "html artifact may be missing Material library components")
}
