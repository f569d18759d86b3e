package codegen

import (
	"fmt"
	"path"
	"strings"
)

// Parse extracts the three artifacts from the backend's free-text reply.
// Artifacts are extracted independently: a missing block is recorded as a
// hard issue and extraction of the remaining kinds continues.
func Parse(modelText, artifactBaseName string) GeneratedFileSet {
	base := normalizeBaseName(artifactBaseName)
	var set GeneratedFileSet

	// Pre-claim every language-labeled fence so the any-fence last resort
	// of one artifact cannot steal a block labeled for another.
	claimed := map[int]bool{}
	for _, re := range labeledFences {
		for _, idx := range re.FindAllStringIndex(modelText, -1) {
			claimed[idx[0]] = true
		}
	}

	for _, kind := range []string{KindTypeScript, KindMarkup, KindStyle} {
		content, ok := extractArtifact(modelText, base, kind, claimed)
		if !ok {
			set.addIssue(SeverityHard, fmt.Sprintf("No %s code block found", kind))
			continue
		}
		if kind == KindTypeScript {
			content = RepairStyleRef(content)
		}
		file := &GeneratedFile{
			FileName:  fmt.Sprintf("%s.component.%s", base, extByKind[kind]),
			Content:   content,
			SizeBytes: len(content),
		}
		switch kind {
		case KindTypeScript:
			set.TypeScript = file
			validateTypeScript(&set, content)
		case KindMarkup:
			set.Markup = file
			validateMarkup(&set, content)
		case KindStyle:
			set.Style = file
		}
	}
	return set
}

// extractArtifact tries the fallback chain for one kind: labeled fence,
// filename-comment fence, then any unclaimed fence.
func extractArtifact(text, base, kind string, claimed map[int]bool) (string, bool) {
	if content, ok := extractLabeled(text, kind); ok {
		return content, true
	}
	if content, ok := extractByFileName(text, base, kind, claimed); ok {
		return content, true
	}
	return extractAnyFence(text, claimed)
}

func normalizeBaseName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "screen"
	}
	return name
}

// ToExportManifest lists only the artifacts that are present; absent ones
// are already recorded in the set's issues.
func ToExportManifest(set GeneratedFileSet, outputDir string) []ExportEntry {
	var entries []ExportEntry
	add := func(f *GeneratedFile, kind string) {
		if f == nil {
			return
		}
		entries = append(entries, ExportEntry{
			Path:    path.Join(outputDir, f.FileName),
			Content: f.Content,
			Kind:    kind,
		})
	}
	add(set.TypeScript, KindTypeScript)
	add(set.Markup, KindMarkup)
	add(set.Style, KindStyle)
	return entries
}
