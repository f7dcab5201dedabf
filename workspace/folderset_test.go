package workspace

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFolderSet_SetGet(t *testing.T) {
	fs := NewFolderSet()

	fs.Set(NewFolder("alpha"))
	fs.Set(NewFolder("beta"))

	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fs.Len())
	}

	folder, ok := fs.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if folder.Name != "alpha" {
		t.Errorf("Get(alpha).Name = %q, want alpha", folder.Name)
	}

	if _, ok := fs.Get("missing"); ok {
		t.Error("Get(missing) found, want not found")
	}
}

func TestFolderSet_OrderPreserved(t *testing.T) {
	fs := NewFolderSet()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		fs.Set(NewFolder(name))
	}

	want := []string{"zeta", "alpha", "mid"}
	if diff := cmp.Diff(want, fs.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	if first := fs.First(); first == nil || first.Name != "zeta" {
		t.Errorf("First() = %v, want zeta", first)
	}
}

func TestFolderSet_ReplaceKeepsOrder(t *testing.T) {
	fs := NewFolderSet()
	fs.Set(NewFolder("a"))
	fs.Set(NewFolder("b"))

	replacement := NewFolder("a")
	replacement.Path = "/tmp/a"
	fs.Set(replacement)

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, fs.Names()); diff != "" {
		t.Errorf("Names() after replace mismatch (-want +got):\n%s", diff)
	}

	got, _ := fs.Get("a")
	if got.Path != "/tmp/a" {
		t.Errorf("Get(a).Path = %q, want /tmp/a", got.Path)
	}
}

func TestFolderSet_MarshalJSON_Order(t *testing.T) {
	fs := NewFolderSet()
	fs.Set(NewFolder("second_created_later"))
	fs.Set(NewFolder("alpha"))

	data, err := json.Marshal(fs)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	// Insertion order, not alphabetical order.
	var keys []string
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		t.Fatalf("failed to read opening token: %v", err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("failed to read key: %v", err)
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("failed to skip value: %v", err)
		}
	}

	want := []string{"second_created_later", "alpha"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("marshaled key order mismatch (-want +got):\n%s", diff)
	}
}

func TestFolderSet_UnmarshalJSON(t *testing.T) {
	input := `{
		"beta": {"name": "beta", "path": "/ws/beta", "folders": {}},
		"alpha": {"name": "alpha", "path": "/ws/alpha", "folders": {
			"nested": {"name": "nested", "path": "/ws/alpha/nested", "folders": {}}
		}}
	}`

	fs := NewFolderSet()
	if err := json.Unmarshal([]byte(input), fs); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	want := []string{"beta", "alpha"}
	if diff := cmp.Diff(want, fs.Names()); diff != "" {
		t.Errorf("Names() after unmarshal mismatch (-want +got):\n%s", diff)
	}

	alpha, ok := fs.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if _, ok := alpha.Folders.Get("nested"); !ok {
		t.Error("nested folder not reconstructed")
	}
}

func TestFolderSet_UnmarshalJSON_KeyWins(t *testing.T) {
	// The object key is authoritative over a divergent name field.
	input := `{"real": {"name": "stale", "path": "", "folders": {}}}`

	fs := NewFolderSet()
	if err := json.Unmarshal([]byte(input), fs); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	folder, ok := fs.Get("real")
	if !ok {
		t.Fatal("Get(real) not found")
	}
	if folder.Name != "real" {
		t.Errorf("folder.Name = %q, want real", folder.Name)
	}
}

func TestFolderSet_UnmarshalJSON_NotObject(t *testing.T) {
	fs := NewFolderSet()
	if err := json.Unmarshal([]byte(`["a","b"]`), fs); err == nil {
		t.Error("Unmarshal() of array succeeded, want error")
	}
}

func TestFolderSet_RoundTrip(t *testing.T) {
	fs := NewFolderSet()
	fs.Set(NewFolderWithChildren("outer", []*Folder{
		NewFolder("inner_b"),
		NewFolder("inner_a"),
	}))
	fs.Set(NewFolder("single"))

	data, err := json.Marshal(fs)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	decoded := NewFolderSet()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if diff := cmp.Diff(fs.Names(), decoded.Names()); diff != "" {
		t.Errorf("top-level order mismatch (-want +got):\n%s", diff)
	}

	outer, _ := decoded.Get("outer")
	want := []string{"inner_b", "inner_a"}
	if diff := cmp.Diff(want, outer.Folders.Names()); diff != "" {
		t.Errorf("nested order mismatch (-want +got):\n%s", diff)
	}
}
