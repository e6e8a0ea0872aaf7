package request

import (
	"slices"
	"time"
)

// Request is a normalized search query. Every criterion is optional;
// an absent criterion places no constraint on the result.
type Request struct {
	titlePrefixes    []string
	containsContents []string
	authorIDs        []string
	createdFrom      *time.Time
	createdTo        *time.Time
}

// New creates a Request. Nil or empty slices and nil bounds mean "no constraint".
// Inputs are copied so later caller mutation cannot change the request.
func New(titlePrefixes, containsContents, authorIDs []string, createdFrom, createdTo *time.Time) Request {
	return Request{
		titlePrefixes:    cloneNonEmpty(titlePrefixes),
		containsContents: cloneNonEmpty(containsContents),
		authorIDs:        cloneNonEmpty(authorIDs),
		createdFrom:      cloneTime(createdFrom),
		createdTo:        cloneTime(createdTo),
	}
}

// TitlePrefixes returns the accepted title prefixes and whether the criterion is set.
func (r Request) TitlePrefixes() ([]string, bool) {
	return r.titlePrefixes, r.titlePrefixes != nil
}

// ContainsContents returns the accepted content substrings and whether the criterion is set.
func (r Request) ContainsContents() ([]string, bool) {
	return r.containsContents, r.containsContents != nil
}

// AuthorIDs returns the accepted author IDs and whether the criterion is set.
func (r Request) AuthorIDs() ([]string, bool) {
	return r.authorIDs, r.authorIDs != nil
}

// CreatedFrom returns the inclusive lower bound and whether it is set.
func (r Request) CreatedFrom() (time.Time, bool) {
	if r.createdFrom == nil {
		return time.Time{}, false
	}
	return *r.createdFrom, true
}

// CreatedTo returns the inclusive upper bound and whether it is set.
func (r Request) CreatedTo() (time.Time, bool) {
	if r.createdTo == nil {
		return time.Time{}, false
	}
	return *r.createdTo, true
}

// IsEmpty reports whether the request constrains nothing.
func (r Request) IsEmpty() bool {
	return r.titlePrefixes == nil && r.containsContents == nil && r.authorIDs == nil &&
		r.createdFrom == nil && r.createdTo == nil
}

func cloneNonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
