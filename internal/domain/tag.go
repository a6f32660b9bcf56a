package domain

import (
	"sort"
	"strings"
)

// TagConstraints is the constraint message for invalid tag names.
const TagConstraints = "Tags names should be alphanumeric"

// Tag is a free-form, alphanumeric label attached to a person.
type Tag struct {
	name string
}

// IsValidTag reports whether raw is a valid tag name.
func IsValidTag(raw string) bool {
	return validate.Var(raw, "required,alphanum") == nil
}

// NewTag validates raw and wraps it in a Tag.
func NewTag(raw string) (Tag, error) {
	if !IsValidTag(raw) {
		return Tag{}, newInvalidFormatError("tag", raw, TagConstraints)
	}
	return Tag{name: raw}, nil
}

// NewTags validates every raw name, returning the first failure.
func NewTags(raw ...string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (t Tag) String() string { return "[" + t.name + "]" }
func (t Tag) Name() string { return t.name }
func (t Tag) IsZero() bool { return t.name == "" }
func (t Tag) Equal(o Tag) bool { return t.name == o.name }

// tagSet is an unordered, deduplicated set of tags.
type tagSet map[Tag]struct{}

func newTagSet(tags []Tag) tagSet {
	s := make(tagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// sorted returns the tags ordered by name so callers get a stable view.
func (s tagSet) sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].name, out[j].name) < 0
	})
	return out
}

func (s tagSet) equal(o tagSet) bool {
	if len(s) != len(o) {
		return false
	}
	for t := range s {
		if _, ok := o[t]; !ok {
			return false
		}
	}
	return true
}
