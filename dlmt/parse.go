package dlmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// markers are the tokens identifying the records of each section;
// other lines are noise.
var markers = [len(Sections)]string{":", "view ", "tag ", "brush ", "brushstroke "}

// isSeparator matches a line of at least 7 dashes.
func isSeparator(line string) bool {
	return len(line) >= 7 && strings.Trim(line, "-") == ""
}

type parser struct {
	opts    ParseOptions
	section int  // index in Sections
	started bool // the section marker has been read
	headers Headers
	builder *Builder
}

// Parse reads a complete DLMT document.
// Structural defects are reported as a *RecordError; references between
// records are not checked (see Media.Defects).
func Parse(content string, opts ParseOptions) (Media, error) {
	p := parser{opts: opts, headers: NewHeaders(), builder: NewBuilder(Headers{})}
	for i, line := range strings.Split(content, "\n") {
		if err := p.parseLine(strings.TrimSpace(line)); err != nil {
			var re *RecordError
			if errors.As(err, &re) && re.Line == 0 {
				re.Line = i + 1
			}
			return Media{}, err
		}
	}
	if p.section != len(Sections)-1 || !p.started {
		return Media{}, fmt.Errorf("%w: missing section %s", ErrSection, Sections[p.section])
	}
	p.builder.SetHeaders(p.headers)
	m, err := p.builder.Build()
	if err != nil {
		return Media{}, err
	}
	Logger().Debug("parsed dlmt media", "summary", m.Summary())
	return m, nil
}

func (p *parser) parseLine(line string) error {
	switch {
	case line == "":
		return nil
	case isSeparator(line):
		if !p.started {
			return &RecordError{Text: line, Err: fmt.Errorf("%w: empty section %s", ErrSection, Sections[p.section])}
		}
		if p.section == len(Sections)-1 {
			return &RecordError{Text: line, Err: fmt.Errorf("%w: too many sections", ErrSection)}
		}
		p.section++
		p.started = false
		return nil
	case !p.started:
		if want := "section " + Sections[p.section]; line != want {
			return &RecordError{Text: line, Err: fmt.Errorf("%w: expected %q", ErrSection, want)}
		}
		p.started = true
		return nil
	case !strings.Contains(line, markers[p.section]):
		return p.noise(line)
	}

	switch p.section {
	case 0:
		return p.headers.parseLine(line)
	case 1:
		p.builder.AddViewString(line)
	case 2:
		p.builder.AddTagDescriptionString(line)
	case 3:
		p.builder.AddBrushString(line)
	case 4:
		p.builder.AddBrushstrokeString(line)
	}
	return p.builder.err
}

func (p *parser) noise(line string) error {
	switch p.opts.ErrorMode {
	case StrictErrorMode:
		return &RecordError{Text: line, Err: ErrNoise}
	case WarnErrorMode:
		Logger().Warn("dropping unrecognized line", "section", Sections[p.section], "text", line)
	}
	return nil
}

// Read decodes the document from r. A byte order mark is skipped, and
// content which is not valid UTF-8 is decoded as windows-1252.
func Read(r io.Reader, opts ParseOptions) (Media, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Media{}, err
	}
	if !utf8.Valid(content) {
		content, err = charmap.Windows1252.NewDecoder().Bytes(content)
		if err != nil {
			return Media{}, err
		}
	}
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	return Parse(strings.ReplaceAll(string(content), "\r\n", "\n"), opts)
}

// ReadFile reads the named DLMT file.
func ReadFile(name string, opts ParseOptions) (Media, error) {
	f, err := os.Open(name)
	if err != nil {
		return Media{}, err
	}
	defer f.Close()
	m, err := Read(f, opts)
	if err != nil {
		return Media{}, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}
