package generator

import (
	"fmt"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

// Status is the outcome of writing one file.
type Status string

const (
	StatusCreated   Status = "create"
	StatusIdentical Status = "identical"
	StatusConflict  Status = "conflict"
	StatusForced    Status = "force"
)

// FileResult describes one file touched by Write. Diff is set for
// conflicts and forced overwrites, from the existing content to the new.
type FileResult struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

type Result struct {
	Files []FileResult `json:"files"`
}

// Conflicts returns the files that were left untouched because they already
// exist with different content.
func (r *Result) Conflicts() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Status == StatusConflict {
			out = append(out, f)
		}
	}
	return out
}

// Write renders the type and writes it to fs. Everything is rendered before
// the first file is touched, so a render error leaves fs unchanged. Existing
// files with different content are only replaced when Force is set.
func (g *TypeGenerator) Write(fs afero.Fs) (*Result, error) {
	ruby, err := g.RenderRuby()
	if err != nil {
		return nil, err
	}
	files := []struct{ path, content string }{{g.RubyPath(), ruby}}

	if g.Opts.SDL {
		sdl, err := g.RenderSDL()
		if err != nil {
			return nil, err
		}
		files = append(files, struct{ path, content string }{g.SDLPath(), sdl})
	}

	res := &Result{}
	for _, f := range files {
		fr, err := g.writeFile(fs, f.path, f.content)
		if err != nil {
			return nil, err
		}
		res.Files = append(res.Files, fr)
	}
	return res, nil
}

func (g *TypeGenerator) writeFile(fs afero.Fs, path, content string) (FileResult, error) {
	l := g.Opts.Logger.With("path", path)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	status := StatusCreated
	var diff string
	if exists {
		existing, err := afero.ReadFile(fs, path)
		if err != nil {
			return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if string(existing) == content {
			l.Debug("file unchanged")
			return FileResult{Path: path, Status: StatusIdentical}, nil
		}
		diff = cmp.Diff(string(existing), content)
		if !g.Opts.Force {
			l.Debug("file conflicts with existing content")
			return FileResult{Path: path, Status: StatusConflict, Diff: diff}, nil
		}
		status = StatusForced
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return FileResult{}, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return FileResult{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	l.Debug("file written", "status", status, "type", g.String())
	return FileResult{Path: path, Status: status, Diff: diff}, nil
}
