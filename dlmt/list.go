package dlmt

import (
	"regexp"
	"sort"
	"strings"
)

// parseList reads `[ a, b ]`. Empty items are dropped.
func parseList(s string) []string {
	s = strings.NewReplacer("[", "", "]", "").Replace(s)
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func formatList(items []string, sep string) string {
	return "[ " + strings.Join(items, sep) + " ]"
}

// Pair is an entry of a Dict.
type Pair struct {
	Key, Value string
}

// Dict is an ordered mapping, written `[ key value,key value ]`.
type Dict []Pair

func parseDict(s string) Dict {
	var out Dict
	for _, item := range parseList(s) {
		key, value, _ := strings.Cut(item, " ")
		out = out.Set(key, strings.TrimSpace(value))
	}
	return out
}

// Get returns the value for key.
func (d Dict) Get(key string) (string, bool) {
	for _, p := range d {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Set returns a dict where key is mapped to value. An existing key keeps
// its position. d itself is not modified.
func (d Dict) Set(key, value string) Dict {
	out := append(Dict(nil), d...)
	for i, p := range out {
		if p.Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Pair{key, value})
}

func (d Dict) Keys() []string {
	out := make([]string, len(d))
	for i, p := range d {
		out[i] = p.Key
	}
	return out
}

func (d Dict) String() string {
	items := make([]string, len(d))
	for i, p := range d {
		items[i] = p.Key + " " + p.Value
	}
	return formatList(items, ",")
}

// IDSet is a set of record ids or prefixes.
type IDSet map[string]struct{}

// NewIDSet returns the set of the given ids.
func NewIDSet(tags ...string) IDSet {
	out := make(IDSet, len(tags))
	for _, t := range tags {
		out[t] = struct{}{}
	}
	return out
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Intersects returns true if s and o have a common id.
func (s IDSet) Intersects(o IDSet) bool {
	if len(o) < len(s) {
		s, o = o, s
	}
	for t := range s {
		if o.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the tags in increasing order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// tokens splits line into n whitespace separated fields, the last one
// holding the rest of the line. It returns false if there are fewer fields.
func tokens(line string, n int) ([]string, bool) {
	out := make([]string, 0, n)
	rest := strings.TrimSpace(line)
	for len(out) < n-1 {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			break
		}
		out = append(out, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	if rest == "" {
		return out, false
	}
	out = append(out, rest)
	return out, len(out) == n
}

// expectKeys checks the keywords of fields against layout,
// where an empty entry stands for a value.
func expectKeys(line string, fields []string, layout ...string) error {
	for i, key := range layout {
		if key != "" && fields[i] != key {
			return malformed(line, "expected "+key+", got "+fields[i])
		}
	}
	return nil
}

// prefix returns the namespace of an `ns:id` identifier.
func prefix(id string) string {
	p, _, _ := strings.Cut(id, ":")
	return p
}

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9_-]`)

// tidyName lowers s and replaces unsafe characters by dashes.
func tidyName(s string) string {
	return nonAlphaNum.ReplaceAllString(strings.ToLower(s), "-")
}
