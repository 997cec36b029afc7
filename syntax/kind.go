package syntax

// Kind is the semantic category assigned to a token for rendering.
type Kind uint8

const (
	// None renders without any wrapping tag.
	None Kind = iota
	// Glyph renders inside <u> tags.
	Glyph
	// Literal renders inside <span> tags.
	Literal
	// Identifier renders inside <var> tags.
	Identifier
	// SpecialIdentifier renders inside <em> tags.
	SpecialIdentifier
	// StrongIdentifier renders inside <strong> tags.
	StrongIdentifier
	// Keyword renders inside <b> tags.
	Keyword
	// Comment renders inside <i> tags.
	Comment

	numKinds = iota
)

// _kindTags maps each Kind to its HTML tag name.
// None maps to the empty string: no tag at all.
var _kindTags = [numKinds]string{
	Glyph:             "u",
	Literal:           "span",
	Identifier:        "var",
	SpecialIdentifier: "em",
	StrongIdentifier:  "strong",
	Keyword:           "b",
	Comment:           "i",
}

var _kindNames = [numKinds]string{
	None:              "None",
	Glyph:             "Glyph",
	Literal:           "Literal",
	Identifier:        "Identifier",
	SpecialIdentifier: "SpecialIdentifier",
	StrongIdentifier:  "StrongIdentifier",
	Keyword:           "Keyword",
	Comment:           "Comment",
}

// Tag reports the HTML tag name used to render runs of this Kind,
// and false if the Kind renders untagged.
func (k Kind) Tag() (string, bool) {
	if int(k) >= len(_kindTags) || _kindTags[k] == "" {
		return "", false
	}
	return _kindTags[k], true
}

func (k Kind) String() string {
	if int(k) >= len(_kindNames) {
		return "Kind(?)"
	}
	return _kindNames[k]
}
