// Package provider ingests the external NLP annotation output: one JSON
// document per file, paragraphs of sentences of tokens, as serialized by the
// spacy/stanza export. The engine never tokenizes, tags or parses on its
// own; a provider failure is surfaced as ErrInputUnavailable.
package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sent "github.com/revelaction/tecla/sentence"
	"github.com/revelaction/tecla/syllable"
)

// ErrInputUnavailable marks a document the annotation provider could not
// deliver: unreadable file, undecodable JSON.
var ErrInputUnavailable = errors.New("annotation provider input unavailable")

// ReadDoc reads an annotated document from the given path, validates it and
// derives the per-token fields the calculators need.
func ReadDoc(path string) (sent.Doc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	var doc sent.Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return sent.Doc{}, fmt.Errorf("%w: %s: %v", ErrInputUnavailable, path, err)
	}

	return sent.Build(doc, syllable.Count)
}

// DocHandler reads annotated documents from a corpus directory, one .json
// file per document, ordered by file name.
type DocHandler struct {
	dir   string
	names []string
}

func NewDocHandler(dir string) (*DocHandler, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	h := &DocHandler{dir: dir}
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			h.names = append(h.names, file.Name())
		}
	}

	return h, nil
}

// Names returns the document file names of the corpus, in directory order.
func (h *DocHandler) Names() []string {
	return h.names
}

// Doc returns the document with the given id, which is its position in
// Names.
func (h *DocHandler) Doc(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.names) {
		return sent.Doc{}, fmt.Errorf("%w: no doc with id %d", ErrInputUnavailable, id)
	}
	return h.docAt(id)
}

// DocForName returns the first document whose file name contains the given
// match string.
func (h *DocHandler) DocForName(match string) (sent.Doc, error) {
	for id, name := range h.names {
		if strings.Contains(name, match) {
			return h.docAt(id)
		}
	}
	return sent.Doc{}, fmt.Errorf("%w: no doc matching %q", ErrInputUnavailable, match)
}

func (h *DocHandler) docAt(id int) (sent.Doc, error) {
	doc, err := ReadDoc(filepath.Join(h.dir, h.names[id]))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = id
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(h.names[id], ".json")
	}
	return doc, nil
}
