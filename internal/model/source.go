// Package model defines the data structures shared by the style inference engine.
package model

import "sort"

// Path represents a file system path.
type Path string

// File represents one source file of a corpus.
type File struct {
	Path    Path
	Content string
}

// Corpus is an ordered set of source files, sorted by path.
// It is never modified once built.
type Corpus struct {
	files []File
}

// NewCorpus builds a Corpus from path -> content pairs.
func NewCorpus(contents map[Path]string) Corpus {
	files := make([]File, 0, len(contents))
	for path, content := range contents {
		files = append(files, File{Path: path, Content: content})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return Corpus{files: files}
}

// Len returns the number of files in the corpus.
func (c Corpus) Len() int {
	return len(c.files)
}

// Empty reports whether the corpus holds no files.
func (c Corpus) Empty() bool {
	return len(c.files) == 0
}

// File returns the i-th file in path order.
func (c Corpus) File(i int) File {
	return c.files[i]
}

// Files returns a copy of the files in path order.
func (c Corpus) Files() []File {
	out := make([]File, len(c.files))
	copy(out, c.files)

	return out
}

// Paths returns the file paths in corpus order.
func (c Corpus) Paths() []Path {
	paths := make([]Path, 0, len(c.files))
	for _, f := range c.files {
		paths = append(paths, f.Path)
	}

	return paths
}
