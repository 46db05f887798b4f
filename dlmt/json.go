package dlmt

import "encoding/json"

// mediaJSON is the object form of a media, each record being stored
// in its text form.
type mediaJSON struct {
	Headers         []string `json:"headers"`
	Views           []string `json:"views"`
	TagDescriptions []string `json:"tag-descriptions"`
	Brushes         []string `json:"brushes"`
	Brushstrokes    []string `json:"brushstrokes"`
}

func toStrings[T interface{ String() string }](records []T) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String()
	}
	return out
}

func (m Media) MarshalJSON() ([]byte, error) {
	return json.Marshal(mediaJSON{
		Headers:         m.headers.Lines(),
		Views:           toStrings(m.SortedViews()),
		TagDescriptions: toStrings(m.tags),
		Brushes:         toStrings(m.SortedBrushes()),
		Brushstrokes:    toStrings(m.brushstrokes),
	})
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var obj mediaJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	headers, err := ParseHeaders(obj.Headers)
	if err != nil {
		return err
	}
	b := NewBuilder(headers)
	for _, line := range obj.Views {
		b.AddViewString(line)
	}
	for _, line := range obj.TagDescriptions {
		b.AddTagDescriptionString(line)
	}
	for _, line := range obj.Brushes {
		b.AddBrushString(line)
	}
	for _, line := range obj.Brushstrokes {
		b.AddBrushstrokeString(line)
	}
	out, err := b.Build()
	if err != nil {
		return err
	}
	*m = out
	return nil
}
