// Outputs the brushstrokes of a Dalmatian media, seen through a view,
// as an SVG document with Dublin Core metadata.
package svgwrite

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/benoitkugler/dalmatian/dlmt"
	"github.com/benoitkugler/dalmatian/scene"
)

const (
	nsSVG   = "http://www.w3.org/2000/svg"
	nsXLink = "http://www.w3.org/1999/xlink"
	nsDC    = "http://purl.org/dc/elements/1.1/"
	nsCC    = "http://creativecommons.org/ns#"
	nsRDF   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// DefaultLicense is used when the media has no `license-url html` header.
	DefaultLicense = "https://creativecommons.org/licenses/by-sa/4.0/legalcode"
)

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// writer chains the tokens, keeping the first error
type writer struct {
	enc *xml.Encoder
	err error
}

func (w *writer) token(t xml.Token) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(t)
	}
}

func (w *writer) start(name string, attrs ...xml.Attr) {
	w.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (w *writer) end(name string) {
	w.token(xml.EndElement{Name: xml.Name{Local: name}})
}

// element writes <name>text</name>
func (w *writer) element(name, text string, attrs ...xml.Attr) {
	w.start(name, attrs...)
	if text != "" {
		w.token(xml.CharData(text))
	}
	w.end(name)
}

func (w *writer) metadata(h dlmt.Headers, lang string) {
	text := func(name dlmt.TextName) string {
		s, _ := h.LocalizedText(name, lang)
		return s
	}
	license, ok := h.URL(dlmt.LicenseURL, dlmt.HTML, lang)
	if !ok {
		license = DefaultLicense
	}

	w.start("metadata")
	w.start("rdf:RDF")
	w.start("cc:Work")
	w.element("dc:format", "image/svg+xml")
	w.element("dc:type", "", attr("rdf:resource", "http://purl.org/dc/dcmitype/StillImage"))
	w.element("dc:title", text(dlmt.Title))
	w.element("dc:description", text(dlmt.Description))
	w.element("dc:source", "source")
	w.element("dc:language", lang)
	w.element("dc:identifier", h.IDURN)
	w.element("dc:date", strconv.Itoa(h.CopyrightYear))
	w.start("dc:creator")
	w.start("cc:Agent")
	w.element("dc:title", text(dlmt.Author))
	w.end("cc:Agent")
	w.end("dc:creator")
	w.element("cc:license", "", attr("rdf:resource", license))
	w.end("cc:Work")
	w.end("rdf:RDF")
	w.end("metadata")
}

// Write composes the view of cfg and writes the SVG document to out.
func Write(out io.Writer, m dlmt.Media, cfg Config) error {
	strokes, err := scene.ForView(m, cfg.View)
	if err != nil {
		return err
	}
	lang := cfg.View.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err = io.WriteString(out, xml.Header); err != nil {
		return err
	}
	w := writer{enc: xml.NewEncoder(out)}
	w.start("svg",
		attr("xmlns", nsSVG),
		attr("xmlns:xlink", nsXLink),
		attr("xmlns:dc", nsDC),
		attr("xmlns:cc", nsCC),
		attr("xmlns:rdf", nsRDF),
		attr("xmlns:svg", nsSVG),
		attr("viewBox", cfg.PageViewBox()),
	)
	w.metadata(m.Headers(), lang)
	proj := cfg.Projection()
	for _, pbs := range strokes {
		w.element("path", "", attr("d", pbs.Path.SVGString(proj)))
	}
	w.end("svg")
	if w.err != nil {
		return w.err
	}
	if err = w.enc.Flush(); err != nil {
		return err
	}
	dlmt.Logger().Debug("svg written", "view", cfg.View.ID, "paths", len(strokes))
	return nil
}

// WriteFile writes the SVG document to the named file.
func WriteFile(name string, m dlmt.Media, cfg Config) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	if err = Write(buf, m, cfg); err != nil {
		f.Close()
		return err
	}
	if err = buf.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
