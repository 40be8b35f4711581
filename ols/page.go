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

	"github.com/cayleygraph/ols/term"
)

// Page is one page of a collection resource.
type Page[T any] struct {
	Elements []T
	// Total is the number of elements across all pages, as reported by the
	// envelope. Only the value of the first page is used.
	Total int
}

// PageFunc fetches page n of a collection. A nil page with a nil error means
// the envelope or its element array was absent.
type PageFunc[T any] func(ctx context.Context, n int) (*Page[T], error)

// FetchAll requests page 0 and, if it does not hold every element, the
// remaining pages one after another. Elements are returned in page order.
//
// The number of pages is derived from the first page only:
// total/len(first)+1. An empty first page ends the fetch, as the page size
// cannot be inferred from it. Any page error fails the whole call.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	first, err := fetch(ctx, 0)
	if err != nil {
		return nil, err
	}
	if first == nil || len(first.Elements) == 0 {
		return nil, nil
	}
	out := append([]T(nil), first.Elements...)
	size := len(first.Elements)
	if size >= first.Total {
		return out, nil
	}
	pages := first.Total/size + 1
	for n := 1; n < pages; n++ {
		p, err := fetch(ctx, n)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, p.Elements...)
		}
	}
	return out, nil
}

// LinkedPage is one page of a collection that points at its successor.
type LinkedPage[T any] struct {
	Elements []T
	Next     string
}

// LinkFunc fetches the page behind href.
type LinkFunc[T any] func(ctx context.Context, href string) (*LinkedPage[T], error)

// FollowNext fetches href and every page reachable through "next" links,
// strictly forward. A link seen twice in one chain fails with ErrPageCycle.
func FollowNext[T any](ctx context.Context, href string, fetch LinkFunc[T]) ([]T, error) {
	seen := make(map[string]struct{})
	var out []T
	for href != "" {
		if _, ok := seen[href]; ok {
			return nil, ErrPageCycle
		}
		seen[href] = struct{}{}
		p, err := fetch(ctx, href)
		if err != nil {
			return nil, err
		}
		if p == nil {
			break
		}
		out = append(out, p.Elements...)
		href = p.Next
	}
	return out, nil
}

type pageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

type termCollection struct {
	Embedded struct {
		Terms []term.Term `json:"terms"`
	} `json:"_embedded"`
	Links term.Links `json:"_links"`
	Page  pageInfo   `json:"page"`
}

type ontologyCollection struct {
	Embedded struct {
		Ontologies []term.Ontology `json:"ontologies"`
	} `json:"_embedded"`
	Links term.Links `json:"_links"`
	Page  pageInfo   `json:"page"`
}

type searchResponse struct {
	Response struct {
		NumFound int                 `json:"numFound"`
		Start    int                 `json:"start"`
		Docs     []term.SearchResult `json:"docs"`
	} `json:"response"`
}
