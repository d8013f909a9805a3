package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ElementKind discriminates the content-block union.
type ElementKind string

const (
	KindText           ElementKind = "text"
	KindHeading        ElementKind = "heading"
	KindImage          ElementKind = "image"
	KindEmbed          ElementKind = "embed"
	KindButton         ElementKind = "button"
	KindList           ElementKind = "list"
	KindQuote          ElementKind = "quote"
	KindKPI            ElementKind = "kpi"
	KindTable          ElementKind = "table"
	KindCallout        ElementKind = "callout"
	KindToggle         ElementKind = "toggle"
	KindMultipleChoice ElementKind = "multiple_choice"
	KindRating         ElementKind = "rating"
	KindShortAnswer    ElementKind = "short_answer"
	KindChart          ElementKind = "chart"
	KindCode           ElementKind = "code"
	KindCard           ElementKind = "card"
	KindComment        ElementKind = "comment"
	KindPoll           ElementKind = "poll"
	KindTracker        ElementKind = "tracker"
	KindProfile        ElementKind = "profile"
)

// ErrUnknownKind is returned when decoding an element whose kind has no
// registered payload type.
var ErrUnknownKind = errors.New("unknown element kind")

// ElementData is the kind-specific payload of an Element. Implementations are
// pointer types so partial updates can be decoded over an existing value.
type ElementData interface {
	Kind() ElementKind
}

// Element is a single content block. Its id is unique across the entire page,
// not just its column, because lookup by id must work without knowing the
// owning container.
type Element struct {
	ID   string
	Data ElementData
}

// TextData is a paragraph of rich text stored as a markdown string.
type TextData struct {
	Text string `json:"text"`
}

func (*TextData) Kind() ElementKind { return KindText }

type HeadingData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

func (*HeadingData) Kind() ElementKind { return KindHeading }

type ImageData struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Width   string `json:"width"`
}

func (*ImageData) Kind() ElementKind { return KindImage }

type EmbedData struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
}

func (*EmbedData) Kind() ElementKind { return KindEmbed }

type ButtonData struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Style string `json:"style"`
	Align string `json:"align"`
}

func (*ButtonData) Kind() ElementKind { return KindButton }

type ListData struct {
	Style string   `json:"style"` // "bullet", "numbered" or "checklist"
	Items []string `json:"items"`
}

func (*ListData) Kind() ElementKind { return KindList }

type QuoteData struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution"`
}

func (*QuoteData) Kind() ElementKind { return KindQuote }

// KPIData is a single metric tile with a trend direction and color theme.
type KPIData struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend"` // "up", "down" or "flat"
	Theme string `json:"theme"`
}

func (*KPIData) Kind() ElementKind { return KindKPI }

type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (*TableData) Kind() ElementKind { return KindTable }

type CalloutData struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
	Tone  string `json:"tone"`
}

func (*CalloutData) Kind() ElementKind { return KindCallout }

type ToggleData struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Open  bool   `json:"open"`
}

func (*ToggleData) Kind() ElementKind { return KindToggle }

type MultipleChoiceData struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	AllowMultiple bool     `json:"allow_multiple"`
}

func (*MultipleChoiceData) Kind() ElementKind { return KindMultipleChoice }

type RatingData struct {
	Question string `json:"question"`
	Max      int    `json:"max"`
	Icon     string `json:"icon"`
}

func (*RatingData) Kind() ElementKind { return KindRating }

type ShortAnswerData struct {
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

func (*ShortAnswerData) Kind() ElementKind { return KindShortAnswer }

// ChartSeries is one named series of a chart element.
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type ChartData struct {
	Style  string        `json:"style"` // "bar", "line" or "pie"
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

func (*ChartData) Kind() ElementKind { return KindChart }

type CodeData struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

func (*CodeData) Kind() ElementKind { return KindCode }

// CardData embeds a third-party card by URL. The embedding handshake itself is
// handled outside the structural model.
type CardData struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (*CardData) Kind() ElementKind { return KindCard }

type CommentData struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

func (*CommentData) Kind() ElementKind { return KindComment }

type PollData struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	ShowResults bool     `json:"show_results"`
}

func (*PollData) Kind() ElementKind { return KindPoll }

type TrackerData struct {
	Label   string `json:"label"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Unit    string `json:"unit"`
}

func (*TrackerData) Kind() ElementKind { return KindTracker }

type ProfileData struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

func (*ProfileData) Kind() ElementKind { return KindProfile }

// MarshalJSON flattens the element into a single object carrying id, kind and
// the payload fields side by side.
func (e Element) MarshalJSON() ([]byte, error) {
	if e.Data == nil {
		return nil, fmt.Errorf("element %s has no payload", e.ID)
	}

	raw, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	id, _ := json.Marshal(e.ID)
	kind, _ := json.Marshal(e.Data.Kind())
	fields["id"] = id
	fields["kind"] = kind

	return json.Marshal(fields)
}

// UnmarshalJSON decodes the flat object form. The payload starts from the
// per-kind defaults so fields absent from the stored document keep their
// documented default values.
func (e *Element) UnmarshalJSON(b []byte) error {
	var head struct {
		ID   string      `json:"id"`
		Kind ElementKind `json:"kind"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	data, ok := defaultDataFor(head.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, head.Kind)
	}
	if err := json.Unmarshal(b, data); err != nil {
		return err
	}

	e.ID = head.ID
	e.Data = data
	return nil
}

// MergeData shallow-merges a partial payload onto data, leaving the kind
// untouched. Keys named "id" or "kind" in the patch are ignored.
func MergeData(data ElementData, patch map[string]any) (ElementData, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	for key, value := range patch {
		if key == "id" || key == "kind" {
			continue
		}
		enc, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("invalid patch value for %q: %w", key, err)
		}
		fields[key] = enc
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	out, ok := defaultDataFor(data.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, data.Kind())
	}
	if err := json.Unmarshal(merged, out); err != nil {
		return nil, err
	}
	return out, nil
}
