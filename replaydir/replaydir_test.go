package replaydir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dropBlob = `{"fmt":"DROP %{objtype}s %{if_exists}s %{name}D",` +
	`"objtype":"TABLE",` +
	`"if_exists":{"fmt":"IF EXISTS","present":true},` +
	`"name":{"schemaname":"public","objname":"orders"}}`

const seqBlob = `{"fmt":"DROP %{objtype}s %{if_exists}s %{name}D",` +
	`"objtype":"SEQUENCE",` +
	`"if_exists":{"fmt":"IF EXISTS","present":false},` +
	`"name":{"schemaname":"public","objname":"orders_id_seq"}}`

func writeReplayDir(t *testing.T, manifest string) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"replay.yaml":   manifest,
		"drop.json":     dropBlob,
		"seq.json":      seqBlob,
		"retarget.json": `[{"op":"replace","path":"/name/schemaname","value":"sandbox"}]`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestReplay(t *testing.T) {
	root := writeReplayDir(t, `
destDir: out
sources:
- file: drop.json
- file: seq.json
patches:
- file: retarget.json
  if: objtype == "TABLE"
`)
	dir, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}
	results, err := dir.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	// the guard fires for the table, not the sequence
	if results[0].Text != "DROP TABLE IF EXISTS sandbox.orders" {
		t.Errorf("drop text = %q", results[0].Text)
	}
	if results[1].Text != "DROP SEQUENCE public.orders_id_seq" {
		t.Errorf("seq text = %q", results[1].Text)
	}

	if err := dir.Write(results); err != nil {
		t.Fatal(err)
	}
	sql, err := os.ReadFile(filepath.Join(root, "out", "drop.sql"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(sql)) != "DROP TABLE IF EXISTS sandbox.orders" {
		t.Errorf("drop.sql = %q", sql)
	}
	blob, err := os.ReadFile(filepath.Join(root, "out", "drop.out.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(blob), "sandbox") {
		t.Errorf("drop.out.json = %s", blob)
	}
}

func TestReplayUnguardedPatch(t *testing.T) {
	root := writeReplayDir(t, `
sources:
- file: drop.json
- file: seq.json
patches:
- file: retarget.json
`)
	dir, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}
	results, err := dir.Run()
	if err != nil {
		t.Fatal(err)
	}
	for _, res := range results {
		if !strings.Contains(res.Text, "sandbox.") {
			t.Errorf("%s: unguarded patch skipped: %q", res.Name, res.Text)
		}
	}
}

func TestReplayMissingManifest(t *testing.T) {
	if _, err := OpenDir(t.TempDir()); err == nil {
		t.Error("missing manifest accepted")
	}
}

func TestReplayBadGuard(t *testing.T) {
	root := writeReplayDir(t, `
sources:
- file: drop.json
patches:
- file: retarget.json
  if: "objtype =="
`)
	if _, err := OpenDir(root); err == nil {
		t.Error("bad guard accepted")
	}
}
