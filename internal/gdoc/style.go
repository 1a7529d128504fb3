package gdoc

// TextStyle is the styling applied to a run of text. Nil fields are unset and
// must be inherited from the paragraph's named style.
type TextStyle struct {
	Bold               *bool               `json:"bold,omitempty"`
	Italic             *bool               `json:"italic,omitempty"`
	Underline          *bool               `json:"underline,omitempty"`
	Strikethrough      *bool               `json:"strikethrough,omitempty"`
	SmallCaps          *bool               `json:"smallCaps,omitempty"`
	FontSize           *Dimension          `json:"fontSize,omitempty"`
	Link               *Link               `json:"link,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
	BaselineOffset     BaselineOffset      `json:"baselineOffset,omitempty"`
	BackgroundColor    *OptionalColor      `json:"backgroundColor,omitempty"`
	ForegroundColor    *OptionalColor      `json:"foregroundColor,omitempty"`
}

// ParagraphStyle applies to a whole paragraph. On a paragraph it inherits from
// the named style type; on a named style it inherits from NORMAL_TEXT.
type ParagraphStyle struct {
	NamedStyleType      NamedStyleType `json:"namedStyleType"`
	Alignment           Alignment      `json:"alignment,omitempty"`
	Direction           Direction      `json:"direction,omitempty"`
	SpacingMode         SpacingMode    `json:"spacingMode,omitempty"`
	HeadingID           string         `json:"headingId,omitempty"`
	LineSpacing         *float64       `json:"lineSpacing,omitempty"`
	IndentStart         *Dimension     `json:"indentStart,omitempty"`
	IndentEnd           *Dimension     `json:"indentEnd,omitempty"`
	IndentFirstLine     *Dimension     `json:"indentFirstLine,omitempty"`
	SpaceAbove          *Dimension     `json:"spaceAbove,omitempty"`
	SpaceBelow          *Dimension     `json:"spaceBelow,omitempty"`
	KeepWithNext        *bool          `json:"keepWithNext,omitempty"`
	KeepLinesTogether   *bool          `json:"keepLinesTogether,omitempty"`
	AvoidWidowAndOrphan *bool          `json:"avoidWidowAndOrphan,omitempty"`
}

// SectionStyle is the styling that applies to a section.
type SectionStyle struct {
	ColumnSeparatorStyle ColumnSeparatorStyle `json:"columnSeparatorStyle,omitempty"`
	ContentDirection     Direction            `json:"contentDirection,omitempty"`
	SectionType          SectionType          `json:"sectionType,omitempty"`
}

// NamedStyle is a reusable style bundle that paragraphs with the same named
// style type inherit from.
type NamedStyle struct {
	NamedStyleType NamedStyleType `json:"namedStyleType"`
	TextStyle      TextStyle      `json:"textStyle"`
	ParagraphStyle ParagraphStyle `json:"paragraphStyle"`
}

// NamedStyles is the document's list of named styles.
type NamedStyles struct {
	Styles []NamedStyle `json:"styles"`
}

// ByType indexes the styles by type. A later style overwrites an earlier one
// with the same type.
func (n NamedStyles) ByType() map[NamedStyleType]NamedStyle {
	m := make(map[NamedStyleType]NamedStyle, len(n.Styles))
	for _, s := range n.Styles {
		m[s.NamedStyleType] = s
	}
	return m
}

// Link references another portion of the document or an external resource.
type Link struct {
	BookmarkID string `json:"bookmarkId,omitempty"`
	HeadingID  string `json:"headingId,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Href returns the first of bookmark id, heading id and url that is set.
func (l *Link) Href() string {
	switch {
	case l == nil:
		return ""
	case l.BookmarkID != "":
		return l.BookmarkID
	case l.HeadingID != "":
		return l.HeadingID
	default:
		return l.URL
	}
}

// WeightedFontFamily is a font family with a weight.
type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
	Weight     int    `json:"weight"`
}

// NamedStyleType identifies a named style.
type NamedStyleType string

const (
	NamedStyleUnspecified NamedStyleType = "NAMED_STYLE_TYPE_UNSPECIFIED"
	NamedStyleNormalText  NamedStyleType = "NORMAL_TEXT"
	NamedStyleTitle       NamedStyleType = "TITLE"
	NamedStyleSubtitle    NamedStyleType = "SUBTITLE"
	NamedStyleHeading1    NamedStyleType = "HEADING_1"
	NamedStyleHeading2    NamedStyleType = "HEADING_2"
	NamedStyleHeading3    NamedStyleType = "HEADING_3"
	NamedStyleHeading4    NamedStyleType = "HEADING_4"
	NamedStyleHeading5    NamedStyleType = "HEADING_5"
	NamedStyleHeading6    NamedStyleType = "HEADING_6"
)

// BaselineOffset is the vertical offset of text from its normal position.
type BaselineOffset string

const (
	BaselineOffsetUnspecified BaselineOffset = "BASELINE_OFFSET_UNSPECIFIED"
	BaselineOffsetNone        BaselineOffset = "NONE"
	BaselineOffsetSuperscript BaselineOffset = "SUPERSCRIPT"
	BaselineOffsetSubscript   BaselineOffset = "SUBSCRIPT"
)

type Alignment string

const (
	AlignmentUnspecified Alignment = "ALIGNMENT_UNSPECIFIED"
	AlignmentStart       Alignment = "START"
	AlignmentCenter      Alignment = "CENTER"
	AlignmentEnd         Alignment = "END"
	AlignmentJustified   Alignment = "JUSTIFIED"
)

type SpacingMode string

const (
	SpacingModeUnspecified   SpacingMode = "SPACING_MODE_UNSPECIFIED"
	SpacingModeNeverCollapse SpacingMode = "NEVER_COLLAPSE"
	SpacingModeCollapseLists SpacingMode = "COLLAPSE_LISTS"
)

type ColumnSeparatorStyle string

const (
	ColumnSeparatorUnspecified   ColumnSeparatorStyle = "COLUMN_SEPARATOR_STYLE_UNSPECIFIED"
	ColumnSeparatorNone          ColumnSeparatorStyle = "NONE"
	ColumnSeparatorBetweenColumn ColumnSeparatorStyle = "BETWEEN_EACH_COLUMN"
)

type SectionType string

const (
	SectionTypeUnspecified SectionType = "SECTION_TYPE_UNSPECIFIED"
	SectionTypeContinuous  SectionType = "CONTINUOUS"
	SectionTypeNextPage    SectionType = "NEXT_PAGE"
)
