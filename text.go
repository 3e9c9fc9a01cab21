package lottie

// Text layer defaults.
const (
	DefaultFontSize   = 36.0
	DefaultFontFamily = "Arial"
	DefaultFontColor  = "#333333"

	defaultLineHeight    = 43.2
	defaultJustification = 2
)

// TextOptions describes a single, static text document. Zero values take
// the package defaults.
type TextOptions struct {
	Text       string
	FontSize   float64
	FontFamily string
	FontColor  string
}

// NewTextData builds a text layer's "t" fragment.
func NewTextData(o TextOptions) Object {
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.FontColor == "" {
		o.FontColor = DefaultFontColor
	}
	return Object{
		"d": Object{
			"k": []any{
				Object{
					"s": Object{
						"s":  number(o.FontSize),
						"f":  o.FontFamily,
						"t":  o.Text,
						"j":  number(defaultJustification),
						"tr": number(0),
						"lh": number(defaultLineHeight),
						"ls": number(0),
						"fc": lottieColor(o.FontColor),
					},
					"t": number(0),
				},
			},
		},
		"p": Object{},
		"m": Object{
			"g": number(1),
			"a": staticValue(numbers(0, 0), 2),
		},
		"a": []any{},
	}
}

// textDocuments returns the "s" objects of every keyframe of a text data
// fragment.
func textDocuments(data Object) []Object {
	var out []Object
	for _, kf := range sliceValue(objectValue(data["d"])["k"]) {
		if s := objectValue(objectValue(kf)["s"]); s != nil {
			out = append(out, s)
		}
	}
	return out
}
