package combine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dircat/pkg/discover"

	"go.uber.org/zap"
)

func TestWriteTreeHonorsExclusions(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "a.txt", "alpha\n")
	writeFixture(t, root, "sub/b.txt", "beta\n")
	writeFixture(t, root, "skip/c.txt", "gamma\n")
	output := filepath.Join(t.TempDir(), "tree.txt")

	excluded := discover.NewMatcher([]string{"skip"})
	if err := WriteTree(root, output, excluded, zap.NewNop()); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read tree output: %v", err)
	}
	tree := string(got)

	for _, want := range []string{"  a.txt\n", "  sub\n", "    b.txt\n"} {
		if !strings.Contains(tree, want) {
			t.Errorf("tree output missing %q:\n%s", want, tree)
		}
	}
	if strings.Contains(tree, "skip") || strings.Contains(tree, "c.txt") {
		t.Errorf("tree output contains excluded entries:\n%s", tree)
	}
}

func TestRunWritesTreeWhenRequested(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "a.txt", "alpha\n")
	outDir := t.TempDir()

	args := Arguments{
		Directory: root,
		Output:    filepath.Join(outDir, "out.txt"),
		Tree:      filepath.Join(outDir, "tree.txt"),
	}
	if err := Run(args, zap.NewNop()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(args.Tree)
	if err != nil {
		t.Fatalf("Failed to read tree output: %v", err)
	}
	if !strings.Contains(string(got), "a.txt") {
		t.Errorf("tree output missing a.txt:\n%s", got)
	}
}
