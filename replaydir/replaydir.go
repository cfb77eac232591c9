// Package replaydir interprets a replay directory.
//
// A replay directory holds captured wire blobs plus a manifest,
// replay.{yaml,json}, describing how to turn them back into runnable
// command text: which blob files to load, which patches to apply on the
// way through, and where the expanded text lands.  Patches may be guarded
// by a predicate so that one manifest can rewrite only the blobs it cares
// about, for example retargeting every command against one schema.
package replaydir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	ddl "github.com/signadot/ddl-format/go-ddl"
	"github.com/signadot/ddl-format/go-ddl/debug"
	"github.com/signadot/ddl-format/go-ddl/match"
)

const DefaultManifest = "replay"

// Dir is one loaded replay directory.
type Dir struct {
	Root    string      `yaml:"-"`
	DestDir string      `yaml:"destDir,omitempty"`
	Sources []DirSource `yaml:"sources"`
	Patches []DirPatch  `yaml:"patches,omitempty"`
}

// DirSource names one wire blob file, relative to the directory root.
type DirSource struct {
	File string `yaml:"file"`
}

// DirPatch names one RFC 6902 patch file, optionally guarded by a
// predicate over the target blob's tree.
type DirPatch struct {
	File string `yaml:"file"`
	If   string `yaml:"if,omitempty"`

	patch   []byte
	matcher *match.Matcher
}

// Result is the outcome of replaying one source blob.
type Result struct {
	// Name is the source file name without its extension.
	Name string
	// Blob is the patched, canonical wire blob.
	Blob []byte
	// Text is the expanded command text, or "" when the blob's root is
	// marked not-present.
	Text string
}

// OpenDir loads a replay directory, trying replay.yaml then replay.json.
func OpenDir(path string) (*Dir, error) {
	extensions := []string{".yaml", ".json"}
	var d []byte
	var manifest string
	for _, ext := range extensions {
		candidate := filepath.Join(path, DefaultManifest+ext)
		var err error
		d, err = os.ReadFile(candidate)
		if err == nil {
			manifest = candidate
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidate, err)
		}
	}
	if manifest == "" {
		return nil, fmt.Errorf("could not find replay.{yaml,json} in %q", path)
	}
	dir := &Dir{Root: path}
	if err := yaml.Unmarshal(d, dir); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", manifest, err)
	}
	if err := dir.load(); err != nil {
		return nil, err
	}
	return dir, nil
}

// load reads patch files and compiles guards up front so a broken manifest
// fails before any source is touched.
func (dir *Dir) load() error {
	for i := range dir.Patches {
		p := &dir.Patches[i]
		d, err := os.ReadFile(filepath.Join(dir.Root, p.File))
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", p.File, err)
		}
		p.patch = d
		if p.If == "" {
			continue
		}
		m, err := match.Compile(p.If)
		if err != nil {
			return fmt.Errorf("patch %q: %w", p.File, err)
		}
		p.matcher = m
	}
	return nil
}

// Run replays every source through the patch chain and expands the result.
func (dir *Dir) Run() ([]Result, error) {
	results := make([]Result, 0, len(dir.Sources))
	for i := range dir.Sources {
		src := &dir.Sources[i]
		res, err := dir.runSource(src)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.File, err)
		}
		results = append(results, *res)
	}
	return results, nil
}

func (dir *Dir) runSource(src *DirSource) (*Result, error) {
	blob, err := os.ReadFile(filepath.Join(dir.Root, src.File))
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", src.File, err)
	}
	blob, err = ddl.Canonical(blob)
	if err != nil {
		return nil, err
	}
	for i := range dir.Patches {
		p := &dir.Patches[i]
		if p.matcher != nil {
			ok, err := p.matcher.MatchJSON(blob)
			if err != nil {
				return nil, fmt.Errorf("patch %q guard: %w", p.File, err)
			}
			if !ok {
				continue
			}
		}
		if debug.Replay() {
			debug.Logf("replay %s: applying %s\n", src.File, p.File)
		}
		blob, err = ddl.Patch(blob, p.patch)
		if err != nil {
			return nil, fmt.Errorf("patch %q: %w", p.File, err)
		}
	}
	text, err := ddl.ExpandJSONToText(blob)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(src.File), filepath.Ext(src.File))
	return &Result{Name: name, Blob: blob, Text: text}, nil
}

// Write lands results in the destination directory, one .sql file per
// source plus the patched blob alongside it.  An empty DestDir writes
// into the directory root.
func (dir *Dir) Write(results []Result) error {
	dest := dir.Root
	if dir.DestDir != "" {
		dest = filepath.Join(dir.Root, dir.DestDir)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return fmt.Errorf("could not create %q: %w", dest, err)
		}
	}
	for i := range results {
		res := &results[i]
		sqlPath := filepath.Join(dest, res.Name+".sql")
		if err := os.WriteFile(sqlPath, []byte(res.Text+"\n"), 0o644); err != nil {
			return fmt.Errorf("could not write %q: %w", sqlPath, err)
		}
		blobPath := filepath.Join(dest, res.Name+".out.json")
		if err := os.WriteFile(blobPath, res.Blob, 0o644); err != nil {
			return fmt.Errorf("could not write %q: %w", blobPath, err)
		}
	}
	return nil
}
