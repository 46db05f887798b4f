package svgwrite

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// Summary holds the content of an SVG file written by Write.
type Summary struct {
	ViewBox     string
	Title       string
	Description string
	Language    string
	Identifier  string
	Date        string
	Creator     string
	License     string
	Paths       []string // the `d` attribute of each path
}

func attrValue(attrs []xml.Attr, space, local string) string {
	for _, a := range attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// ReadSummary reads back an SVG document written by Write. Elements
// outside of the metadata and path set are ignored.
func ReadSummary(stream io.Reader) (Summary, error) {
	var (
		out     Summary
		stack   []xml.Name
		seenSVG bool
	)
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenSVG {
					return out, errors.New("invalid svg document")
				}
				return out, nil
			}
			return out, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			stack = append(stack, se.Name)
			switch {
			case se.Name.Space == nsSVG && se.Name.Local == "svg":
				seenSVG = true
				out.ViewBox = attrValue(se.Attr, "", "viewBox")
			case se.Name.Space == nsSVG && se.Name.Local == "path":
				out.Paths = append(out.Paths, attrValue(se.Attr, "", "d"))
			case se.Name.Space == nsCC && se.Name.Local == "license":
				out.License = attrValue(se.Attr, nsRDF, "resource")
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) < 2 {
				continue
			}
			name, parent := stack[len(stack)-1], stack[len(stack)-2]
			if name.Space != nsDC {
				continue
			}
			text := string(se)
			switch name.Local {
			case "title":
				if parent.Local == "Agent" {
					out.Creator += text
				} else {
					out.Title += text
				}
			case "description":
				out.Description += text
			case "language":
				out.Language += text
			case "identifier":
				out.Identifier += text
			case "date":
				out.Date += text
			}
		}
	}
}

// ReadSummaryFile reads back the named SVG file.
func ReadSummaryFile(name string) (Summary, error) {
	f, err := os.Open(name)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	return ReadSummary(f)
}
