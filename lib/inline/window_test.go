// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/inlinekit/inlinekit/lib/document"
)

func snapshotOf(lines ...string) *document.Memory {
	return document.NewMemory("main.go", "go", 1, lines)
}

func fenceBody(t *testing.T, rendered string) string {
	t.Helper()
	lines := strings.Split(rendered, "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "```") || lines[len(lines)-1] != "```" {
		t.Fatalf("output is not a fenced code block:\n%s", rendered)
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}

func TestCursorWindow_MarkerSplitsAtColumn(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf(
		"package main",
		"",
		"func main() {",
		"\tprintln(42)",
		"}",
	)
	rendered := CursorWindow(snapshot, document.Position{Line: 3, Column: 1})

	if got := strings.Count(rendered, CursorMarker); got != 1 {
		t.Fatalf("marker appears %d times, want exactly 1:\n%s", got, rendered)
	}
	// line.slice(0,col) + MARKER + line.slice(col)
	want := "\t" + CursorMarker + "println(42)"
	if !strings.Contains(rendered, want) {
		t.Errorf("output missing split line %q:\n%s", want, rendered)
	}
}

func TestCursorWindow_RadiusLaw(t *testing.T) {
	t.Parallel()

	// Cursor far from both boundaries with only non-blank neighbors:
	// exactly 2 lines before and 2 after, no more.
	snapshot := snapshotOf("l0", "l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8")
	rendered := CursorWindow(snapshot, document.Position{Line: 4, Column: 0})

	body := fenceBody(t, rendered)
	want := "l2\nl3\n" + CursorMarker + "l4\nl5\nl6"
	if body != want {
		t.Errorf("window body =\n%s\nwant\n%s", body, want)
	}
}

func TestCursorWindow_BlankBoundaryExtension(t *testing.T) {
	t.Parallel()

	// Lines 1 and 2 are blank (line 2 whitespace-only), so the lower
	// bound must extend past the whole blank run. Line 8 below the
	// baseline is blank too.
	snapshot := snapshotOf(
		"package main", // 0
		"",             // 1
		"   ",          // 2
		"a",            // 3
		"b",            // 4
		"c",            // 5: cursor
		"d",            // 6
		"e",            // 7
		"\t",           // 8
		"end",          // 9
	)
	rendered := CursorWindow(snapshot, document.Position{Line: 5, Column: 0})

	body := fenceBody(t, rendered)
	want := "\n   \na\nb\n" + CursorMarker + "c\nd\ne\n\t"
	if body != want {
		t.Errorf("window body = %q, want %q", body, want)
	}
}

func TestCursorWindow_CursorAtFileStart(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("line 1", "line 2", "line 3", "line 4", "line 5")
	rendered := CursorWindow(snapshot, document.Position{Line: 0, Column: 0})

	if !strings.Contains(rendered, CursorMarker+"line 1") {
		t.Errorf("output missing %q:\n%s", CursorMarker+"line 1", rendered)
	}
	for _, want := range []string{"line 1", "line 2", "line 3"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("output missing %q:\n%s", want, rendered)
		}
	}
	if strings.Contains(rendered, "line 5") {
		t.Errorf("output should stop at line 3, contains line 5:\n%s", rendered)
	}
}

func TestCursorWindow_CursorAtLastLine(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("a", "b", "c", "d", "e")
	rendered := CursorWindow(snapshot, document.Position{Line: 4, Column: 1})

	body := fenceBody(t, rendered)
	if body != "c\nd\ne"+CursorMarker {
		t.Errorf("window body = %q, want %q", body, "c\nd\ne"+CursorMarker)
	}
}

func TestCursorWindow_SingleLineFile(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("only line")
	rendered := CursorWindow(snapshot, document.Position{Line: 0, Column: 4})

	body := fenceBody(t, rendered)
	if body != "only"+CursorMarker+" line" {
		t.Errorf("window body = %q, want %q", body, "only"+CursorMarker+" line")
	}
}

func TestCursorWindow_ClampsOutOfBounds(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("a", "b", "c")

	// Line far past the end clamps to the last line; column past the
	// line end clamps to end-of-line.
	rendered := CursorWindow(snapshot, document.Position{Line: 99, Column: 99})
	if !strings.Contains(rendered, "c"+CursorMarker) {
		t.Errorf("clamped cursor should land at end of last line:\n%s", rendered)
	}

	rendered = CursorWindow(snapshot, document.Position{Line: -3, Column: -1})
	if !strings.Contains(rendered, CursorMarker+"a") {
		t.Errorf("clamped cursor should land at start of first line:\n%s", rendered)
	}
}

func TestCursorWindow_MarkerAbutsTextAtLineEdges(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("abc")

	rendered := CursorWindow(snapshot, document.Position{Line: 0, Column: 0})
	if body := fenceBody(t, rendered); body != CursorMarker+"abc" {
		t.Errorf("column 0: body = %q, want %q", body, CursorMarker+"abc")
	}

	rendered = CursorWindow(snapshot, document.Position{Line: 0, Column: 3})
	if body := fenceBody(t, rendered); body != "abc"+CursorMarker {
		t.Errorf("column 3: body = %q, want %q", body, "abc"+CursorMarker)
	}
}

func TestCursorWindow_FencedBlockStructure(t *testing.T) {
	t.Parallel()

	snapshot := snapshotOf("package main", "func main() {}", "// done")
	rendered := CursorWindow(snapshot, document.Position{Line: 1, Column: 0})

	// Parse the output as markdown and verify it is one fenced code
	// block with the document's language as the info string.
	source := []byte(rendered)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var fences []*ast.FencedCodeBlock
	ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if fence, ok := node.(*ast.FencedCodeBlock); ok && entering {
			fences = append(fences, fence)
		}
		return ast.WalkContinue, nil
	})

	if len(fences) != 1 {
		t.Fatalf("parsed %d fenced code blocks, want 1:\n%s", len(fences), rendered)
	}
	if got := string(fences[0].Language(source)); got != "go" {
		t.Errorf("fence language = %q, want %q", got, "go")
	}
}
