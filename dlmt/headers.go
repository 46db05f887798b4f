package dlmt

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/benoitkugler/dalmatian/geom"
	"golang.org/x/text/language"
)

// TextName is the name of a localized header text.
type TextName uint8

const (
	License TextName = iota
	AttributionName
	Author
	BrushesLicense
	BrushesAttributionName
	Name
	Title
	Description
	AlternativeTitle
)

var textNames = [...]string{
	License:                "license",
	AttributionName:        "attribution-name",
	Author:                 "author",
	BrushesLicense:         "brushes-license",
	BrushesAttributionName: "brushes-attribution-name",
	Name:                   "name",
	Title:                  "title",
	Description:            "description",
	AlternativeTitle:       "alternative-title",
}

func (n TextName) String() string {
	if int(n) < len(textNames) {
		return textNames[n]
	}
	return "E"
}

// ParseTextName returns false for an unsupported name.
func ParseTextName(s string) (TextName, bool) {
	for i, name := range textNames {
		if name == s {
			return TextName(i), true
		}
	}
	return 0, false
}

// URLName is the name of a localized header link.
type URLName uint8

const (
	LicenseURL URLName = iota
	AttributionURL
	AuthorURL
	BrushesLicenseURL
	BrushesAttributionURL
	MetadataURL
	HomepageURL
	RepositoryURL
	ThumbnailURL
	ContentURL
)

var urlNames = [...]string{
	LicenseURL:            "license-url",
	AttributionURL:        "attribution-url",
	AuthorURL:             "author-url",
	BrushesLicenseURL:     "brushes-license-url",
	BrushesAttributionURL: "brushes-attribution-url",
	MetadataURL:           "metadata-url",
	HomepageURL:           "homepage-url",
	RepositoryURL:         "repository-url",
	ThumbnailURL:          "thumbnail-url",
	ContentURL:            "content-url",
}

func (n URLName) String() string {
	if int(n) < len(urlNames) {
		return urlNames[n]
	}
	return "E"
}

// ParseURLName returns false for an unsupported name.
func ParseURLName(s string) (URLName, bool) {
	for i, name := range urlNames {
		if name == s {
			return URLName(i), true
		}
	}
	return 0, false
}

// MediaType is the format of the resource behind a header link.
type MediaType uint8

const (
	HTML MediaType = iota
	JSON
	RDF
	Markdown
	NTriples
	Turtle
	JSONLD
	CSV
	DLMT
)

var mediaTypes = [...]string{
	HTML:     "html",
	JSON:     "json",
	RDF:      "rdf",
	Markdown: "markdown",
	NTriples: "nt",
	Turtle:   "ttl",
	JSONLD:   "json-ld",
	CSV:      "csv",
	DLMT:     "dlmt",
}

func (m MediaType) String() string {
	if int(m) < len(mediaTypes) {
		return mediaTypes[m]
	}
	return "E"
}

// ParseMediaType returns false for an unsupported media type.
func ParseMediaType(s string) (MediaType, bool) {
	for i, name := range mediaTypes {
		if name == s {
			return MediaType(i), true
		}
	}
	return 0, false
}

// TextRef is a localized header text, such as `title en: Bird`.
type TextRef struct {
	Name TextName
	Lang string
	Text string
}

// URLRef is a localized header link, such as `license-url html en: https://...`.
type URLRef struct {
	Name  URLName
	Media MediaType
	Lang  string
	URL   string
}

// Sections lists the section names, in document order.
var Sections = [...]string{"header", "views", "tag-descriptions", "brushes", "brushstrokes"}

// Headers holds the document wide metadata.
type Headers struct {
	IDURN                 string
	BrushPageRatio        *big.Rat // size of the brush unit on the page
	PageCoordinateSystem  CoordinateSystem
	BrushCoordinateSystem BrushCoordinateSystem
	Prefixes              Dict // short prefix -> URI
	RequireSections       Dict // section -> version
	HasParts              []string
	Texts                 []TextRef
	URLs                  []URLRef
	CopyrightYear         int
	IsFamilyFriendly      bool
}

// NewHeaders returns the default headers.
func NewHeaders() Headers {
	h := Headers{
		BrushPageRatio:        geom.R(1, 50),
		PageCoordinateSystem:  PageCoordinateSystem,
		BrushCoordinateSystem: DefaultBrushCoordinateSystem(),
		Prefixes:              Dict{{"github", "https://github.com/"}},
		CopyrightYear:         3000,
		IsFamilyFriendly:      true,
	}
	for _, s := range Sections {
		h.RequireSections = append(h.RequireSections, Pair{s, "0.5"})
	}
	return h
}

// SetText adds or replaces a localized text.
func (h *Headers) SetText(name TextName, lang, text string) {
	ref := TextRef{Name: name, Lang: strings.TrimSpace(lang), Text: strings.TrimSpace(text)}
	texts := append([]TextRef(nil), h.Texts...)
	for i, t := range texts {
		if t.Name == ref.Name && t.Lang == ref.Lang {
			texts[i] = ref
			h.Texts = texts
			return
		}
	}
	h.Texts = append(texts, ref)
}

// Text returns the text for the exact language.
func (h Headers) Text(name TextName, lang string) (string, bool) {
	for _, t := range h.Texts {
		if t.Name == name && t.Lang == lang {
			return t.Text, true
		}
	}
	return "", false
}

// LocalizedText returns the text in the language closest to lang,
// or false if no text has this name.
func (h Headers) LocalizedText(name TextName, lang string) (string, bool) {
	if text, ok := h.Text(name, lang); ok {
		return text, true
	}
	var (
		tags  []language.Tag
		texts []string
	)
	for _, t := range h.Texts {
		if t.Name != name {
			continue
		}
		tag, err := language.Parse(t.Lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		texts = append(texts, t.Text)
	}
	if len(tags) == 0 {
		return "", false
	}
	want, err := language.Parse(lang)
	if err != nil {
		return texts[0], true
	}
	_, index, _ := language.NewMatcher(tags).Match(want)
	return texts[index], true
}

// SetURL adds or replaces a localized link.
func (h *Headers) SetURL(name URLName, media MediaType, lang, url string) {
	ref := URLRef{Name: name, Media: media, Lang: strings.TrimSpace(lang), URL: strings.TrimSpace(url)}
	urls := append([]URLRef(nil), h.URLs...)
	for i, u := range urls {
		if u.Name == ref.Name && u.Media == ref.Media && u.Lang == ref.Lang {
			urls[i] = ref
			h.URLs = urls
			return
		}
	}
	h.URLs = append(urls, ref)
}

func (h Headers) URL(name URLName, media MediaType, lang string) (string, bool) {
	for _, u := range h.URLs {
		if u.Name == name && u.Media == media && u.Lang == lang {
			return u.URL, true
		}
	}
	return "", false
}

// ShortPrefixes returns the declared namespace prefixes.
func (h Headers) ShortPrefixes() IDSet { return NewIDSet(h.Prefixes.Keys()...) }

func unsupportedHeader(line, key string) error {
	return &RecordError{Text: line, Err: fmt.Errorf("%w: %q", ErrUnsupportedHeader, key)}
}

// ParseHeaders reads `key: value` lines, starting from the defaults.
func ParseHeaders(lines []string) (Headers, error) {
	h := NewHeaders()
	for _, line := range lines {
		if err := h.parseLine(line); err != nil {
			return Headers{}, err
		}
	}
	return h, nil
}

func (h *Headers) parseLine(line string) error {
	rawKey, value, found := strings.Cut(line, ":")
	if !found {
		return malformed(line, "expected key: value")
	}
	key, value := strings.TrimSpace(rawKey), strings.TrimSpace(value)
	var err error
	switch key {
	case "id-urn":
		h.IDURN = value
	case "brush-page-ratio":
		if h.BrushPageRatio, err = geom.ParseRat(value); err != nil {
			return invalidField(line, err)
		}
	case "page-coordinate-system":
		if h.PageCoordinateSystem, err = ParseCoordinateSystem(value); err != nil {
			return &RecordError{Text: line, Err: err}
		}
	case "brush-coordinate-system":
		if h.BrushCoordinateSystem, err = ParseBrushCoordinateSystem(value); err != nil {
			return &RecordError{Text: line, Err: err}
		}
	case "copyright-year":
		if h.CopyrightYear, err = strconv.Atoi(value); err != nil {
			return invalidField(line, err)
		}
	case "is-family-friendly":
		h.IsFamilyFriendly = strings.ToLower(value) == "yes"
	case "prefixes":
		h.Prefixes = parseDict(value)
	case "require-sections":
		h.RequireSections = parseDict(value)
	case "has-parts":
		h.HasParts = parseList(value)
	default:
		parts := strings.Fields(key)
		switch len(parts) {
		case 2:
			name, ok := ParseTextName(parts[0])
			if !ok {
				return unsupportedHeader(line, key)
			}
			h.SetText(name, parts[1], value)
		case 3:
			name, ok := ParseURLName(parts[0])
			if !ok {
				return unsupportedHeader(line, key)
			}
			media, ok := ParseMediaType(parts[1])
			if !ok {
				return unsupportedHeader(line, key)
			}
			h.SetURL(name, media, parts[2], value)
		default:
			return unsupportedHeader(line, key)
		}
	}
	return nil
}

// Lines returns the header lines, in canonical order.
func (h Headers) Lines() []string {
	familyFriendly := "no"
	if h.IsFamilyFriendly {
		familyFriendly = "yes"
	}
	out := []string{
		"id-urn: " + h.IDURN,
		"require-sections: " + h.RequireSections.String(),
		"prefixes: " + h.Prefixes.String(),
		"page-coordinate-system: " + h.PageCoordinateSystem.String(),
		"brush-coordinate-system: " + h.BrushCoordinateSystem.String(),
		"brush-page-ratio: " + geom.FormatRat(h.BrushPageRatio),
	}
	for _, t := range h.Texts {
		out = append(out, fmt.Sprintf("%s %s: %s", t.Name, t.Lang, t.Text))
	}
	for _, u := range h.URLs {
		out = append(out, fmt.Sprintf("%s %s %s: %s", u.Name, u.Media, u.Lang, u.URL))
	}
	return append(out,
		"copyright-year: "+strconv.Itoa(h.CopyrightYear),
		"is-family-friendly: "+familyFriendly,
		"has-parts: "+formatList(h.HasParts, ","),
	)
}

func (h Headers) String() string { return strings.Join(h.Lines(), "\n") }
