package filter

import (
	"strings"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
)

// Predicate reports whether a document satisfies one search criterion.
type Predicate func(doc domdoc.Document) bool

// Criteria is a conjunction of predicates. The zero value matches every document.
type Criteria struct {
	predicates []Predicate
}

// NewCriteria combines predicates with logical AND.
func NewCriteria(predicates ...Predicate) Criteria {
	return Criteria{predicates: predicates}
}

// FromRequest builds one predicate per criterion set on the request.
func FromRequest(req request.Request) Criteria {
	var ps []Predicate
	if prefixes, ok := req.TitlePrefixes(); ok {
		ps = append(ps, TitleHasPrefix(prefixes...))
	}
	if subs, ok := req.ContainsContents(); ok {
		ps = append(ps, ContentContains(subs...))
	}
	if ids, ok := req.AuthorIDs(); ok {
		ps = append(ps, AuthorIn(ids...))
	}
	if from, ok := req.CreatedFrom(); ok {
		ps = append(ps, CreatedFrom(from))
	}
	if to, ok := req.CreatedTo(); ok {
		ps = append(ps, CreatedTo(to))
	}
	return NewCriteria(ps...)
}

// Matches reports whether doc satisfies every predicate.
func (c Criteria) Matches(doc domdoc.Document) bool {
	for _, p := range c.predicates {
		if !p(doc) {
			return false
		}
	}
	return true
}

// Len returns the number of predicates.
func (c Criteria) Len() int { return len(c.predicates) }

// TitleHasPrefix matches titles starting with any of the prefixes.
func TitleHasPrefix(prefixes ...string) Predicate {
	return func(doc domdoc.Document) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(doc.Title(), p) {
				return true
			}
		}
		return false
	}
}

// ContentContains matches content containing any of the substrings.
func ContentContains(subs ...string) Predicate {
	return func(doc domdoc.Document) bool {
		for _, s := range subs {
			if strings.Contains(doc.Content(), s) {
				return true
			}
		}
		return false
	}
}

// AuthorIn matches documents whose author ID is one of ids.
func AuthorIn(ids ...string) Predicate {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(doc domdoc.Document) bool {
		_, ok := set[doc.Author().ID()]
		return ok
	}
}

// CreatedFrom matches documents created at or after from.
func CreatedFrom(from time.Time) Predicate {
	return func(doc domdoc.Document) bool {
		return !doc.Created().Before(from)
	}
}

// CreatedTo matches documents created at or before to.
func CreatedTo(to time.Time) Predicate {
	return func(doc domdoc.Document) bool {
		return !doc.Created().After(to)
	}
}
