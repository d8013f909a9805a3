package models

import (
	"fmt"
	"sort"
)

// defaultFactories is the single source of truth for what a blank block of
// each kind looks like. It must cover every ElementKind; the insertion
// palette and the JSON decoder are both built on it.
var defaultFactories = map[ElementKind]func() ElementData{
	KindText:    func() ElementData { return &TextData{} },
	KindHeading: func() ElementData { return &HeadingData{Level: 2} },
	KindImage:   func() ElementData { return &ImageData{Width: "full"} },
	KindEmbed:   func() ElementData { return &EmbedData{Height: 400} },
	KindButton: func() ElementData {
		return &ButtonData{Label: "Click me", Style: "primary", Align: "left"}
	},
	KindList: func() ElementData {
		return &ListData{Style: "bullet", Items: []string{""}}
	},
	KindQuote: func() ElementData { return &QuoteData{} },
	KindKPI: func() ElementData {
		return &KPIData{Trend: "flat", Theme: "blue"}
	},
	KindTable: func() ElementData {
		return &TableData{
			Headers: []string{"Column 1", "Column 2"},
			Rows:    [][]string{{"", ""}},
		}
	},
	KindCallout: func() ElementData {
		return &CalloutData{Emoji: "💡", Tone: "info"}
	},
	KindToggle: func() ElementData { return &ToggleData{} },
	KindMultipleChoice: func() ElementData {
		return &MultipleChoiceData{Options: []string{"Option 1", "Option 2"}}
	},
	KindRating: func() ElementData {
		return &RatingData{Max: 5, Icon: "star"}
	},
	KindShortAnswer: func() ElementData {
		return &ShortAnswerData{Placeholder: "Type your answer..."}
	},
	KindChart: func() ElementData {
		return &ChartData{
			Style:  "bar",
			Series: []ChartSeries{{Name: "Series 1"}},
		}
	},
	KindCode: func() ElementData { return &CodeData{Language: "plain"} },
	KindCard: func() ElementData { return &CardData{} },
	KindComment: func() ElementData {
		return &CommentData{}
	},
	KindPoll: func() ElementData {
		return &PollData{Options: []string{"Yes", "No"}}
	},
	KindTracker: func() ElementData { return &TrackerData{Target: 100} },
	KindProfile: func() ElementData { return &ProfileData{} },
}

func defaultDataFor(kind ElementKind) (ElementData, bool) {
	factory, ok := defaultFactories[kind]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// DefaultData returns a default-initialized payload for the given kind.
// Asking for a kind absent from the default table is a programmer error and
// panics rather than limping along with a nil payload.
func DefaultData(kind ElementKind) ElementData {
	data, ok := defaultDataFor(kind)
	if !ok {
		panic(fmt.Sprintf("models: no default payload registered for kind %q", kind))
	}
	return data
}

// KnownKind reports whether kind has a registered payload type.
func KnownKind(kind ElementKind) bool {
	_, ok := defaultFactories[kind]
	return ok
}

// Kinds returns every registered element kind in stable (sorted) order.
func Kinds() []ElementKind {
	kinds := make([]ElementKind, 0, len(defaultFactories))
	for kind := range defaultFactories {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
