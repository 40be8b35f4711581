// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package export writes expanded term hierarchies as RDF quads.
package export

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	_ "github.com/cayleygraph/quad/nquads"
	_ "github.com/cayleygraph/quad/pquads"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"

	"github.com/cayleygraph/ols/clog"
	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

// Deprecated is the OWL annotation property marking obsolete terms.
const Deprecated = quad.IRI("http://www.w3.org/2002/07/owl#deprecated")

// Options control how edges are turned into quads.
type Options struct {
	// Direction the edges were collected in. Children edges point from
	// parent to child, Parents edges from child to parent.
	Direction ols.Direction
	// Graph labels every quad when set.
	Graph string
}

type builder struct {
	label quad.Value
	seen  map[string]struct{}
	out   []quad.Quad
}

func (b *builder) add(s quad.Value, p quad.IRI, o quad.Value) {
	b.out = append(b.out, quad.Quad{Subject: s, Predicate: p.Full(), Object: o, Label: b.label})
}

func (b *builder) term(t *term.Term) {
	if _, ok := b.seen[t.IRI]; ok {
		return
	}
	b.seen[t.IRI] = struct{}{}
	node := quad.IRI(t.IRI)
	b.add(node, rdf.Type, quad.IRI(rdfs.Class).Full())
	if t.Label != "" {
		b.add(node, rdfs.Label, quad.String(t.Label))
	}
	if t.IsObsolete() {
		b.add(node, Deprecated, quad.Bool(true))
	}
}

// Quads describes every term of the edges as an rdfs:Class with its label
// and every edge as an rdfs:subClassOf statement. Terms are described once,
// the first time they are seen. Terms without an IRI are skipped.
func Quads(edges []ols.Edge, opt Options) []quad.Quad {
	b := &builder{seen: make(map[string]struct{})}
	if opt.Graph != "" {
		b.label = quad.IRI(opt.Graph)
	}
	for i := range edges {
		sub, sup := &edges[i].To, &edges[i].From
		if opt.Direction == ols.Parents {
			sub, sup = sup, sub
		}
		if sub.IRI == "" || sup.IRI == "" {
			continue
		}
		b.term(&edges[i].From)
		b.term(&edges[i].To)
		b.add(quad.IRI(sub.IRI), rdfs.SubClassOf, quad.IRI(sup.IRI))
	}
	return b.out
}

// Write encodes quads to w in the named format.
func Write(w io.Writer, format string, quads []quad.Quad) (int, error) {
	f := quad.FormatByName(format)
	if f == nil {
		return 0, fmt.Errorf("unsupported format: %q", format)
	} else if f.Writer == nil {
		return 0, fmt.Errorf("encoding in %s format is not supported", format)
	}
	qw := f.Writer(w)
	defer qw.Close()
	n, err := quad.Copy(qw, quad.NewReader(quads))
	if err != nil {
		return n, err
	} else if err = qw.Close(); err != nil {
		return n, err
	}
	return n, nil
}

// WriteFile writes quads to path, or to stdout if path is "-". A ".gz"
// suffix compresses the output. An empty format is guessed from the file
// extension and defaults to N-Quads.
func WriteFile(path, format string, quads []quad.Quad) (int, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdout
		clog.Infof("writing quads to stdout")
	} else {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return 0, fmt.Errorf("could not create file %q: %v", path, err)
		}
		defer f.Close()
		clog.Infof("writing quads to file %q", path)
	}

	var w io.Writer = f
	ext := filepath.Ext(path)
	if ext == ".gz" {
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}
	if format == "" {
		if qf := quad.FormatByExt(ext); qf != nil {
			format = qf.Name
		} else {
			format = "nquads"
		}
	}
	n, err := Write(w, format, quads)
	if err != nil {
		return n, err
	}
	if gz, ok := w.(*gzip.Writer); ok {
		if err = gz.Close(); err != nil {
			return n, err
		}
	}
	if f != os.Stdout {
		return n, f.Close()
	}
	return n, nil
}
