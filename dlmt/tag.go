package dlmt

import (
	"fmt"
	"strings"
)

// TagDescription documents a tag, with links to external vocabularies.
//
//	tag i:1 lang en same-as [ geospecies:bioclasses/P632y ] -> part of head
type TagDescription struct {
	ID          string
	Lang        string
	SameAs      []string // prefixed identifiers `ns:id`
	Description string
}

// ParseTagDescription reads a tag record.
func ParseTagDescription(line string) (TagDescription, error) {
	head, description, found := strings.Cut(line, "->")
	fields, err := fieldsOf(head, "tag", 6)
	if err != nil {
		return TagDescription{}, err
	}
	if !found {
		return TagDescription{}, malformed(line, "missing -> description")
	}
	if err = expectKeys(line, fields, "tag", "", "lang", "", "same-as", ""); err != nil {
		return TagDescription{}, err
	}
	return TagDescription{
		ID:          fields[1],
		Lang:        fields[3],
		SameAs:      parseList(fields[5]),
		Description: strings.TrimSpace(description),
	}, nil
}

func (t TagDescription) String() string {
	return fmt.Sprintf("tag %s lang %s same-as %s -> %s", t.ID, t.Lang, formatList(t.SameAs, ", "), t.Description)
}
