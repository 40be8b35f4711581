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

package ols

import (
	"context"
	"fmt"

	"github.com/cayleygraph/ols/term"
)

// Direction selects which hierarchy links a traversal follows.
type Direction int

const (
	Children Direction = iota
	Parents
)

func (d Direction) String() string {
	switch d {
	case Children:
		return "children"
	case Parents:
		return "parents"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "children":
		return Children, nil
	case "parents":
		return Parents, nil
	}
	return 0, fmt.Errorf("unknown direction: %q", s)
}

func (d Direction) link(t *term.Term) (string, bool) {
	if d == Parents {
		return t.ParentsLink()
	}
	return t.ChildrenLink()
}

// Edge is one hop of a traversal: To was found in the collection linked
// from From in the traversal direction.
type Edge struct {
	From term.Term
	To   term.Term
}

// frame holds the terms of one collected hop whose own hops are still to
// be expanded.
type frame struct {
	terms []term.Term
	next  int
	left  int
}

// walk expands start up to distance hops. visit is called once per expanded
// term with the full collection behind its hop link, in the order a
// depth-first recursion over the hop collections would produce them.
func (c *Client) walk(ctx context.Context, start *term.Term, dir Direction, distance int, visit func(from *term.Term, hop []term.Term)) error {
	if distance < 0 {
		return ErrNegativeDistance
	}
	if distance == 0 {
		return nil
	}
	hop, err := c.hop(ctx, start, dir)
	if err != nil {
		return err
	}
	visit(start, hop)
	var stack []*frame
	if distance > 1 && len(hop) > 0 {
		stack = append(stack, &frame{terms: hop, left: distance - 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next == len(f.terms) {
			stack = stack[:len(stack)-1]
			continue
		}
		t := &f.terms[f.next]
		f.next++
		hop, err := c.hop(ctx, t, dir)
		if err != nil {
			return err
		}
		visit(t, hop)
		if f.left > 1 && len(hop) > 0 {
			stack = append(stack, &frame{terms: hop, left: f.left - 1})
		}
	}
	return nil
}

// hop returns the whole collection behind a term's hop link, or nothing if
// the term has no such link.
func (c *Client) hop(ctx context.Context, t *term.Term, dir Direction) ([]term.Term, error) {
	href, ok := dir.link(t)
	if !ok {
		return nil, nil
	}
	mHops.WithLabelValues(dir.String()).Inc()
	return FollowNext(ctx, href, c.linkedTermPage)
}

// Expand returns every term within distance hops of start in the given
// direction. Terms reachable along several paths are repeated.
//
// The result holds the first hop collection, followed by the expansion of
// each of its members in order.
func (c *Client) Expand(ctx context.Context, start *term.Term, dir Direction, distance int) ([]term.Term, error) {
	var out []term.Term
	err := c.walk(ctx, start, dir, distance, func(_ *term.Term, hop []term.Term) {
		out = append(out, hop...)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Edges performs the same traversal as Expand and reports it as edges.
func (c *Client) Edges(ctx context.Context, start *term.Term, dir Direction, distance int) ([]Edge, error) {
	var out []Edge
	err := c.walk(ctx, start, dir, distance, func(from *term.Term, hop []term.Term) {
		for _, t := range hop {
			out = append(out, Edge{From: *from, To: t})
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Children resolves id and returns its descendants up to distance hops.
// An unknown id yields no terms.
func (c *Client) Children(ctx context.Context, id term.Identifier, ontology string, distance int) ([]term.Term, error) {
	return c.expandID(ctx, id, ontology, Children, distance)
}

// Parents resolves id and returns its ancestors up to distance hops.
// An unknown id yields no terms.
func (c *Client) Parents(ctx context.Context, id term.Identifier, ontology string, distance int) ([]term.Term, error) {
	return c.expandID(ctx, id, ontology, Parents, distance)
}

func (c *Client) expandID(ctx context.Context, id term.Identifier, ontology string, dir Direction, distance int) ([]term.Term, error) {
	if distance < 0 {
		return nil, ErrNegativeDistance
	}
	t, err := c.Term(ctx, id, ontology)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return c.Expand(ctx, t, dir, distance)
}
