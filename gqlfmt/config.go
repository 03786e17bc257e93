// Package gqlfmt implements the document-to-layout translator at the heart
// of this GraphQL formatter: it walks a lossless
// [go.jacobcolvin.com/gqlfmt/cst] tree and produces a
// [go.jacobcolvin.com/gqlfmt/layout] IR tree, then hands that IR to
// [go.jacobcolvin.com/gqlfmt/printer] to render a string. [FormatText] and
// [PrintTree] are the package's two entry points.
package gqlfmt

// Comma selects how optional commas are rendered in a comma-separated
// construct.
type Comma int

const (
	// CommaInherit falls back to the document-wide default; only valid
	// as a per-construct override value.
	CommaInherit Comma = iota
	// CommaAlways always emits a comma between entries and a trailing
	// comma when the container breaks.
	CommaAlways
	// CommaNever never emits a comma.
	CommaNever
	// CommaNoTrailing emits commas between entries but never a trailing
	// one.
	CommaNoTrailing
	// CommaOnlySingleLine emits a comma between entries only while the
	// container stays on one line, and never a trailing one.
	CommaOnlySingleLine
)

// SingleLine selects how eagerly a container prefers to stay on one line.
type SingleLine int

const (
	// SingleLineInherit falls back to the document-wide default; only
	// valid as a per-construct override value.
	SingleLineInherit SingleLine = iota
	// SingleLinePrefer always tries to fit the container on one line.
	SingleLinePrefer
	// SingleLineSmart follows the source: a delimited container breaks if
	// the whitespace after its opening delimiter contains a newline, and a
	// separated or directive list breaks if whitespace between two of its
	// entries does; otherwise prefer flat (subject to width).
	SingleLineSmart
	// SingleLineNever always breaks the container.
	SingleLineNever
)

// LineBreakKind selects the output line terminator.
type LineBreakKind int

const (
	// LineBreakLF selects "\n".
	LineBreakLF LineBreakKind = iota
	// LineBreakCRLF selects "\r\n".
	LineBreakCRLF
)

// CommaOptions resolves the document-wide default plus every per-construct
// override named in the configuration table. A zero-value CommaOptions
// behaves as all-inherit, i.e. purely the Default.
type CommaOptions struct {
	Default               Comma `yaml:"comma"`
	Directives             Comma `yaml:"directives.comma"`
	EnumValuesDefinition   Comma `yaml:"enumValuesDefinition.comma"`
	FieldsDefinition       Comma `yaml:"fieldsDefinition.comma"`
	InputFieldsDefinition  Comma `yaml:"inputFieldsDefinition.comma"`
	ObjectValue            Comma `yaml:"objectValue.comma"`
	SchemaDefinition       Comma `yaml:"schemaDefinition.comma"`
	SchemaExtension        Comma `yaml:"schemaExtension.comma"`
	Arguments              Comma `yaml:"arguments.comma"`
	ArgumentsDefinition    Comma `yaml:"argumentsDefinition.comma"`
	VariableDefinitions    Comma `yaml:"variableDefinitions.comma"`
	ListValue              Comma `yaml:"listValue.comma"`
	SelectionSet           Comma `yaml:"selectionSet.comma"`
}

// resolve returns value if it is not CommaInherit, else the document-wide
// default.
func (c CommaOptions) resolve(value Comma) Comma {
	if value == CommaInherit {
		return c.Default
	}

	return value
}

// SingleLineOptions resolves the document-wide default plus every
// per-construct override.
type SingleLineOptions struct {
	Default              SingleLine `yaml:"singleLine"`
	EnumValuesDefinition SingleLine `yaml:"enumValuesDefinition.singleLine"`
	FieldsDefinition     SingleLine `yaml:"fieldsDefinition.singleLine"`
	InputFieldsDefinition SingleLine `yaml:"inputFieldsDefinition.singleLine"`
	SchemaDefinition     SingleLine `yaml:"schemaDefinition.singleLine"`
	SchemaExtension      SingleLine `yaml:"schemaExtension.singleLine"`
	SelectionSet         SingleLine `yaml:"selectionSet.singleLine"`
	Arguments            SingleLine `yaml:"arguments.singleLine"`
	ArgumentsDefinition  SingleLine `yaml:"argumentsDefinition.singleLine"`
	VariableDefinitions  SingleLine `yaml:"variableDefinitions.singleLine"`
	ListValue            SingleLine `yaml:"listValue.singleLine"`
	ObjectValue          SingleLine `yaml:"objectValue.singleLine"`
	Directives           SingleLine `yaml:"directives.singleLine"`
	ImplementsInterfaces SingleLine `yaml:"implementsInterfaces.singleLine"`
	UnionMemberTypes     SingleLine `yaml:"unionMemberTypes.singleLine"`
	DirectiveLocations   SingleLine `yaml:"directiveLocations.singleLine"`
}

func (s SingleLineOptions) resolve(value SingleLine) SingleLine {
	if value == SingleLineInherit {
		return s.Default
	}

	return value
}

// SpacingOptions resolves the four boolean spacing switches and their
// per-construct overrides. A nil override means "inherit the relevant
// global switch".
type SpacingOptions struct {
	ParenSpacing   bool `yaml:"parenSpacing"`
	BracketSpacing bool `yaml:"bracketSpacing"`
	BraceSpacing   bool `yaml:"braceSpacing"`

	ArgumentsParenSpacing           *bool `yaml:"arguments.parenSpacing"`
	ArgumentsDefinitionParenSpacing *bool `yaml:"argumentsDefinition.parenSpacing"`
	VariableDefinitionsParenSpacing *bool `yaml:"variableDefinitions.parenSpacing"`

	EnumValuesDefinitionBraceSpacing  *bool `yaml:"enumValuesDefinition.braceSpacing"`
	FieldsDefinitionBraceSpacing      *bool `yaml:"fieldsDefinition.braceSpacing"`
	InputFieldsDefinitionBraceSpacing *bool `yaml:"inputFieldsDefinition.braceSpacing"`
	ObjectValueBraceSpacing           *bool `yaml:"objectValue.braceSpacing"`
	SchemaDefinitionBraceSpacing      *bool `yaml:"schemaDefinition.braceSpacing"`
	SchemaExtensionBraceSpacing       *bool `yaml:"schemaExtension.braceSpacing"`
	SelectionSetBraceSpacing          *bool `yaml:"selectionSet.braceSpacing"`
}

func resolveBool(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}

	return fallback
}

// LanguageOptions is the resolved, read-only policy object every node
// formatter consults: comma/single-line/spacing policy, comment handling,
// and the ignore directive. It is the Go analogue of the upstream design's
// "LanguageOptions", carried (by pointer, never mutated) inside [ctx].
type LanguageOptions struct {
	Comma      CommaOptions      `yaml:",inline"`
	SingleLine SingleLineOptions `yaml:",inline"`
	Spacing    SpacingOptions    `yaml:",inline"`

	FormatComments         bool   `yaml:"formatComments"`
	IgnoreCommentDirective string `yaml:"ignoreCommentDirective"`
}

// DefaultLanguageOptions returns the configuration-table defaults from the
// external interface: comma=onlySingleLine, singleLine=smart,
// parenSpacing/bracketSpacing=false, braceSpacing=true, formatComments=
// false, ignoreCommentDirective="dprint-ignore", with every per-construct
// override at its documented default (not "inherit" where the table names
// an explicit default).
func DefaultLanguageOptions() LanguageOptions {
	return LanguageOptions{
		Comma: CommaOptions{
			Default:               CommaOnlySingleLine,
			Directives:             CommaNever,
			EnumValuesDefinition:   CommaNever,
			FieldsDefinition:       CommaNever,
			InputFieldsDefinition:  CommaNever,
			ObjectValue:            CommaNever,
			SchemaDefinition:       CommaNever,
			SchemaExtension:        CommaNever,
			Arguments:              CommaInherit,
			ArgumentsDefinition:    CommaInherit,
			VariableDefinitions:    CommaInherit,
			ListValue:              CommaInherit,
			SelectionSet:           CommaNever,
		},
		SingleLine: SingleLineOptions{
			Default:              SingleLineSmart,
			EnumValuesDefinition: SingleLineNever,
			FieldsDefinition:     SingleLineNever,
			InputFieldsDefinition: SingleLineNever,
			SchemaDefinition:     SingleLineNever,
			SchemaExtension:      SingleLineNever,
			SelectionSet:         SingleLineNever,
			Arguments:            SingleLineInherit,
			ArgumentsDefinition:  SingleLineInherit,
			VariableDefinitions:  SingleLineInherit,
			ListValue:            SingleLineInherit,
			ObjectValue:          SingleLineInherit,
			Directives:           SingleLineInherit,
			ImplementsInterfaces: SingleLineInherit,
			UnionMemberTypes:     SingleLineInherit,
			DirectiveLocations:   SingleLineInherit,
		},
		Spacing: SpacingOptions{
			ParenSpacing:   false,
			BracketSpacing: false,
			BraceSpacing:   true,
		},
		FormatComments:         false,
		IgnoreCommentDirective: "dprint-ignore",
	}
}

// LayoutOptions controls the printed shape independent of per-construct
// policy: width, indentation, and line terminator.
type LayoutOptions struct {
	PrintWidth  int           `yaml:"printWidth"`
	UseTabs     bool          `yaml:"useTabs"`
	IndentWidth int           `yaml:"indentWidth"`
	LineBreak   LineBreakKind `yaml:"lineBreak"`
}

// DefaultLayoutOptions returns printWidth=80, useTabs=false, indentWidth=2,
// lineBreak=lf.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		PrintWidth:  80,
		UseTabs:     false,
		IndentWidth: 2,
		LineBreak:   LineBreakLF,
	}
}

// FormatOptions is the full, immutable configuration for a single format
// call: [LayoutOptions] plus [LanguageOptions]. Construct with
// [DefaultFormatOptions] and override only the fields that differ from the
// documented defaults.
type FormatOptions struct {
	Layout   LayoutOptions   `yaml:",inline"`
	Language LanguageOptions `yaml:",inline"`
}

// DefaultFormatOptions returns the full configuration-table defaults.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Layout:   DefaultLayoutOptions(),
		Language: DefaultLanguageOptions(),
	}
}
