package tree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/arbor/pkg/tree"
)

// fixture builds the canonical test tree using deterministic ids:
//
//	Root (r1)
//	  * Branch (r2)
//	    - Leaf (r3)
//	  - Solo (r4)
//
// and returns the tree along with the factory used to build it.
func fixture(t *testing.T) (tree.Tree, tree.Factory) {
	t.Helper()
	f := tree.Factory{IDs: tree.NewSequenceIDs("r")}
	root := f.NamedNode("Root")
	branch := f.NamedNode("Branch")
	leaf := f.NamedNode("Leaf")
	solo := f.NamedNode("Solo")

	tr := tree.NewWithRoot(root)
	var err error
	if tr, err = tr.AddChild(branch, root.ID); err != nil {
		t.Fatalf("add Branch: %v", err)
	}
	if tr, err = tr.AddChild(leaf, branch.ID); err != nil {
		t.Fatalf("add Leaf: %v", err)
	}
	if tr, err = tr.AddChild(solo, root.ID); err != nil {
		t.Fatalf("add Solo: %v", err)
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("fixture invalid: %v", err)
	}
	return tr, f
}

func names(nodes []tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func TestFactoryNode(t *testing.T) {
	f := tree.Factory{IDs: tree.NewSequenceIDs("n")}

	n := f.Node("alpha", 42)
	if n.ID != "n1" {
		t.Errorf("ID = %q, want n1", n.ID)
	}
	if n.Name != "alpha" || n.Content != 42 {
		t.Errorf("Name/Content = %q/%v, want alpha/42", n.Name, n.Content)
	}
	if !n.IsRoot() || !n.IsLeaf() || !n.HasContent() {
		t.Errorf("predicates = root:%v leaf:%v content:%v, want all true",
			n.IsRoot(), n.IsLeaf(), n.HasContent())
	}
	if n.Level != 0 {
		t.Errorf("Level = %d, want 0", n.Level)
	}

	blank := f.BlankNode()
	if blank.ID != "n2" {
		t.Errorf("second ID = %q, want n2", blank.ID)
	}
	if blank.HasContent() {
		t.Error("blank node should have no content")
	}
}

func TestRandomIDsUnique(t *testing.T) {
	seen := make(map[tree.NodeID]struct{})
	var src tree.RandomIDs
	for range 1000 {
		id := src.NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewWithRootNormalizes(t *testing.T) {
	// A node that claims a parent, depth, and children must come out as a
	// clean standalone root.
	n := tree.Node{ID: "x", Name: "X", Parent: "ghost", Level: 7, Children: []tree.NodeID{"a", "b"}}
	tr := tree.NewWithRoot(n)

	root, ok := tr.Root()
	if !ok {
		t.Fatal("Root() not found")
	}
	if !root.IsRoot() || root.Level != 0 || len(root.Children) != 0 {
		t.Errorf("root = %+v, want parentless level-0 leaf", root)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tr := tree.New()

	if !tr.IsEmpty() || tr.Len() != 0 {
		t.Errorf("IsEmpty/Len = %v/%d, want true/0", tr.IsEmpty(), tr.Len())
	}
	if _, ok := tr.Root(); ok {
		t.Error("Root() on empty tree should report false")
	}
	if got := tr.ToList(); len(got) != 0 {
		t.Errorf("ToList = %d nodes, want 0", len(got))
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestQueries(t *testing.T) {
	tr, _ := fixture(t)
	root, _ := tr.Root()
	branch, ok := tr.Get("r2")
	if !ok {
		t.Fatal("Get(r2) not found")
	}

	if got := names(tr.Children(root)); !equalStrings(got, []string{"Branch", "Solo"}) {
		t.Errorf("Children(root) = %v, want [Branch Solo]", got)
	}
	if got := names(tr.Siblings(branch)); !equalStrings(got, []string{"Solo"}) {
		t.Errorf("Siblings(Branch) = %v, want [Solo]", got)
	}
	if p, ok := tr.Parent(branch); !ok || p.ID != root.ID {
		t.Errorf("Parent(Branch) = %v/%v, want root", p.ID, ok)
	}
	if _, ok := tr.Parent(root); ok {
		t.Error("Parent(root) should report false")
	}
	if !tr.Contains("r3") || tr.Contains("nope") {
		t.Error("Contains mismatch")
	}
	if tr.Len() != 4 {
		t.Errorf("Len = %d, want 4", tr.Len())
	}
	if branch.IsLeaf() {
		t.Error("Branch should not be a leaf")
	}
	leaf, _ := tr.Get("r3")
	if !leaf.IsLeaf() || leaf.Level != 2 {
		t.Errorf("Leaf = %+v, want leaf at level 2", leaf)
	}
}

func TestPut(t *testing.T) {
	tr, f := fixture(t)
	branch, _ := tr.Get("r2")

	replacement := f.Node("Trunk", "wood")
	got, err := tr.Put(branch.ID, replacement)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	n, _ := got.Get(branch.ID)
	if n.Name != "Trunk" || n.Content != "wood" {
		t.Errorf("replaced = %q/%v, want Trunk/wood", n.Name, n.Content)
	}
	// Structure survives whatever the replacement carried.
	if n.Parent != branch.Parent || n.Level != branch.Level || len(n.Children) != len(branch.Children) {
		t.Errorf("structure changed: %+v", n)
	}
	// Receiver untouched.
	old, _ := tr.Get(branch.ID)
	if old.Name != "Branch" {
		t.Errorf("source tree mutated: %q", old.Name)
	}

	if _, err := tr.Put("nope", replacement); err == nil {
		t.Error("Put(absent) should fail")
	}
}

func TestUpdateContent(t *testing.T) {
	tr, _ := fixture(t)

	got := tr.UpdateContent(func(any) any { return "seen" })
	for _, n := range got.ToList() {
		if n.Content != "seen" {
			t.Errorf("node %q content = %v, want seen", n.Name, n.Content)
		}
	}
	// Receiver untouched.
	for _, n := range tr.ToList() {
		if n.Content != nil {
			t.Errorf("source node %q content = %v, want nil", n.Name, n.Content)
		}
	}
}

func TestEachLeaf(t *testing.T) {
	tr, _ := fixture(t)

	got := tr.EachLeaf(func(any) any { return "leaf" })
	for _, n := range got.ToList() {
		want := any(nil)
		if n.IsLeaf() {
			want = "leaf"
		}
		if n.Content != want {
			t.Errorf("node %q content = %v, want %v", n.Name, n.Content, want)
		}
	}
}

func TestPrint(t *testing.T) {
	tr, _ := fixture(t)

	var buf bytes.Buffer
	if err := tr.Print(&buf, nil); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := strings.Join([]string{
		"* Root",
		"  * Branch",
		"    - Leaf",
		"  - Solo",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("Print output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintCustomLabel(t *testing.T) {
	tr, _ := fixture(t)

	var buf bytes.Buffer
	err := tr.Print(&buf, func(n tree.Node) string { return strings.ToUpper(n.Name) })
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(buf.String(), "* ROOT") {
		t.Errorf("custom label not applied:\n%s", buf.String())
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
