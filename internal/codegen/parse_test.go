package codegen

import (
	"strings"
	"testing"
)

const goodTS = `import { Component } from '@angular/core';

@Component({
  selector: 'app-login',
  standalone: true,
  templateUrl: './login.component.html',
  styleUrls: ['./login.component.css'],
})
export class LoginComponent {}`

const goodHTML = `<h1>Login</h1>
<mat-form-field appearance="outline">
  <mat-label>Email</mat-label>
  <input matInput type="text">
</mat-form-field>
<button mat-raised-button color="primary">Sign In</button>`

const goodCSS = `:host { display: block; padding: 16px; }`

func threeBlockResponse() string {
	return "Here are the files.\n\n```typescript\n" + goodTS + "\n```\n\n```html\n" + goodHTML + "\n```\n\n```css\n" + goodCSS + "\n```\n"
}

func TestParse_ThreeLabeledBlocks(t *testing.T) {
	set := Parse(threeBlockResponse(), "Login")
	if len(set.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", set.Errors)
	}
	if set.TypeScript == nil || set.Markup == nil || set.Style == nil {
		t.Fatalf("missing artifacts: %+v", set)
	}
	if set.TypeScript.FileName != "login.component.ts" {
		t.Fatalf("ts filename: %s", set.TypeScript.FileName)
	}
	if set.Markup.SizeBytes != len(set.Markup.Content) {
		t.Fatal("size bytes must match content length")
	}
}

func TestParse_MissingMarkupBlock(t *testing.T) {
	text := "```typescript\n" + goodTS + "\n```\n\n```css\n" + goodCSS + "\n```\n"
	set := Parse(text, "login")
	if set.TypeScript == nil || set.Style == nil {
		t.Fatal("present artifacts must still be extracted")
	}
	if set.Markup != nil {
		t.Fatal("markup must be absent")
	}
	if len(set.Errors) != 1 || set.Errors[0] != "No html code block found" {
		t.Fatalf("want exactly one missing-html error, got %v", set.Errors)
	}
	if len(set.HardErrors()) != 1 {
		t.Fatalf("missing block must be hard: %v", set.Issues)
	}
}

func TestParse_FilenameCommentFallback(t *testing.T) {
	text := "// login.component.ts\n```\n" + goodTS + "\n```\n\n<!-- login.component.html -->\n```\n" + goodHTML + "\n```\n\n/* login.component.css */\n```\n" + goodCSS + "\n```\n"
	set := Parse(text, "login")
	if set.TypeScript == nil || !strings.Contains(set.TypeScript.Content, "LoginComponent") {
		t.Fatalf("filename-comment ts extraction failed: %+v", set)
	}
	if set.Markup == nil || !strings.Contains(set.Markup.Content, "matInput") {
		t.Fatalf("filename-comment html extraction failed: %+v", set)
	}
}

func TestParse_AnyFenceLastResortDoesNotReuseBlocks(t *testing.T) {
	// Unlabeled blocks only: ts takes the first, html the second, css the third.
	text := "```\n" + goodTS + "\n```\n\n```\n" + goodHTML + "\n```\n\n```\n" + goodCSS + "\n```\n"
	set := Parse(text, "login")
	if set.TypeScript == nil || set.Markup == nil || set.Style == nil {
		t.Fatalf("expected all three from unlabeled fences: %v", set.Errors)
	}
	if !strings.Contains(set.TypeScript.Content, "@Component") {
		t.Fatal("first fence should become the typescript artifact")
	}
	if !strings.Contains(set.Markup.Content, "<h1>") {
		t.Fatal("second fence should become the markup artifact")
	}
	if !strings.Contains(set.Style.Content, ":host") {
		t.Fatal("third fence should become the style artifact")
	}
}

func TestParse_StyleRefRepairRunsOnTypeScriptOnly(t *testing.T) {
	ts := strings.Replace(goodTS, "styleUrls: ['./login.component.css']", "styleUrl: './login.component.css'", 1)
	text := "```typescript\n" + ts + "\n```\n\n```html\n" + goodHTML + "\n```\n\n```css\n" + goodCSS + "\n```\n"
	set := Parse(text, "login")
	if !strings.Contains(set.TypeScript.Content, "styleUrls: ['./login.component.css']") {
		t.Fatalf("styleUrl not repaired: %s", set.TypeScript.Content)
	}
}

func TestRepairStyleRef_PluralPassesThrough(t *testing.T) {
	if got := RepairStyleRef(goodTS); got != goodTS {
		t.Fatal("plural styleUrls must not be rewritten")
	}
	in := `styleUrl: "./a.css"`
	want := `styleUrls: ["./a.css"]`
	if got := RepairStyleRef(in); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestParse_StructuralValidation(t *testing.T) {
	// TypeScript without @Component or export class.
	text := "```typescript\nconst x = 1;\n```\n\n```html\n" + goodHTML + "\n```\n\n```css\n" + goodCSS + "\n```\n"
	set := Parse(text, "login")
	hard := set.HardErrors()
	if len(hard) != 2 {
		t.Fatalf("want two hard ts issues, got %v", set.Issues)
	}

	// Markup with a generic button and no Material marker is advisory.
	html := "<div><h1>Hi</h1><button>Click</button></div>"
	text = "```typescript\n" + goodTS + "\n```\n\n```html\n" + html + "\n```\n\n```css\n" + goodCSS + "\n```\n"
	set = Parse(text, "login")
	if len(set.HardErrors()) != 0 {
		t.Fatalf("advisory finding must not be hard: %v", set.Issues)
	}
	found := false
	for _, is := range set.Issues {
		if is.Severity == SeverityAdvisory && strings.Contains(is.Message, "may be missing") {
			found = true
		}
	}
	if !found {
		t.Fatalf("want advisory Material warning, got %v", set.Issues)
	}
}

func TestToExportManifest_OmitsAbsentArtifacts(t *testing.T) {
	text := "```typescript\n" + goodTS + "\n```\n\n```css\n" + goodCSS + "\n```\n"
	set := Parse(text, "login")
	entries := ToExportManifest(set, "out/login")
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].Path != "out/login/login.component.ts" || entries[0].Kind != KindTypeScript {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Kind != KindStyle {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}
