package codegen

import "regexp"

// The backend recurringly emits the singular styleUrl field that newer
// Angular accepts but our pinned target rejects. Rewrite it to the
// plural array form before validation. This is the only place extracted
// source text is mutated.
var styleRefRE = regexp.MustCompile(`styleUrl\s*:\s*(['"])([^'"]+)(['"])`)

// RepairStyleRef rewrites styleUrl: '...' into styleUrls: ['...'].
// Content already in the plural form passes through unchanged.
func RepairStyleRef(ts string) string {
	return styleRefRE.ReplaceAllString(ts, "styleUrls: [$1$2$3]")
}
