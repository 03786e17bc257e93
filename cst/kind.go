// Package cst provides a lossless, read-only concrete syntax tree for
// GraphQL documents.
//
// A tree is built from [Node]s and [Token]s. Every node has an ordered
// sequence of children that may themselves be nodes or tokens; walking every
// token of a tree and concatenating its text reproduces the original input
// exactly, including whitespace and comments. Trivia ([Whitespace] and
// [Comment]) are never discarded and never nested inside a token's text —
// they appear as ordinary sibling tokens, which is what lets the formatter
// in [go.jacobcolvin.com/gqlfmt/gqlfmt] recover and re-place comments and blank
// lines.
//
// Trees are produced by [go.jacobcolvin.com/gqlfmt/gqlparser] and are
// borrowed read-only for the lifetime of a single format call; nothing in
// this package mutates a tree after construction.
package cst

// Kind identifies the grammatical role of a [Node] or the lexical class of
// a [Token].
type Kind int

// Token kinds.
const (
	KindInvalid Kind = iota

	// Trivia.
	Whitespace
	Comment

	// Punctuation.
	Bang         // !
	Dollar       // $
	Amp          // &
	ParenL       // (
	ParenR       // )
	Spread       // ...
	Colon        // :
	Equals       // =
	At           // @
	BracketL     // [
	BracketR     // ]
	BraceL       // {
	Pipe         // |
	BraceR       // }
	Comma        // ,
	EOF

	// Literal/name tokens.
	Name
	IntValueTok
	FloatValueTok
	StringValueTok

	// Keywords (lexed as Name, reclassified contextually by the parser;
	// kept as distinct kinds here for readability at parse sites).
	KeywordQuery
	KeywordMutation
	KeywordSubscription
	KeywordFragment
	KeywordOn
	KeywordSchema
	KeywordScalar
	KeywordType
	KeywordInterface
	KeywordUnion
	KeywordEnum
	KeywordInput
	KeywordExtend
	KeywordImplements
	KeywordDirective
	KeywordRepeatable
	KeywordTrue
	KeywordFalse
	KeywordNull

	// Node kinds.
	Document
	OperationDefinition
	OperationType
	VariableDefinitions
	VariableDefinition
	Variable
	DefaultValue
	SelectionSet
	Field
	Alias
	Arguments
	Argument
	FragmentSpread
	InlineFragment
	FragmentDefinition
	TypeCondition
	NamedType
	ListType
	NonNullType
	IntValue
	FloatValue
	StringValue
	BooleanValue
	NullValue
	EnumValue
	ListValue
	ObjectValue
	ObjectField
	Directives
	Directive
	Description

	SchemaDefinition
	RootOperationTypeDefinition
	ScalarTypeDefinition
	ObjectTypeDefinition
	ImplementsInterfaces
	FieldsDefinition
	FieldDefinition
	ArgumentsDefinition
	InputValueDefinition
	InterfaceTypeDefinition
	UnionTypeDefinition
	UnionMemberTypes
	EnumTypeDefinition
	EnumValuesDefinition
	EnumValueDefinition
	InputObjectTypeDefinition
	InputFieldsDefinition
	DirectiveDefinition
	DirectiveLocations
	DirectiveLocation

	SchemaExtension
	ScalarTypeExtension
	ObjectTypeExtension
	InterfaceTypeExtension
	UnionTypeExtension
	EnumTypeExtension
	InputObjectTypeExtension
)

var kindNames = map[Kind]string{
	KindInvalid: "Invalid",

	Whitespace: "Whitespace",
	Comment:    "Comment",

	Bang: "!", Dollar: "$", Amp: "&", ParenL: "(", ParenR: ")",
	Spread: "...", Colon: ":", Equals: "=", At: "@",
	BracketL: "[", BracketR: "]", BraceL: "{", Pipe: "|", BraceR: "}",
	Comma: ",", EOF: "EOF",

	Name: "Name", IntValueTok: "IntValueTok", FloatValueTok: "FloatValueTok",
	StringValueTok: "StringValueTok",

	KeywordQuery: "query", KeywordMutation: "mutation",
	KeywordSubscription: "subscription", KeywordFragment: "fragment",
	KeywordOn: "on", KeywordSchema: "schema", KeywordScalar: "scalar",
	KeywordType: "type", KeywordInterface: "interface", KeywordUnion: "union",
	KeywordEnum: "enum", KeywordInput: "input", KeywordExtend: "extend",
	KeywordImplements: "implements", KeywordDirective: "directive",
	KeywordRepeatable: "repeatable", KeywordTrue: "true", KeywordFalse: "false",
	KeywordNull: "null",

	Document: "Document", OperationDefinition: "OperationDefinition",
	OperationType: "OperationType", VariableDefinitions: "VariableDefinitions",
	VariableDefinition: "VariableDefinition", Variable: "Variable",
	DefaultValue: "DefaultValue", SelectionSet: "SelectionSet", Field: "Field",
	Alias: "Alias", Arguments: "Arguments", Argument: "Argument",
	FragmentSpread: "FragmentSpread", InlineFragment: "InlineFragment",
	FragmentDefinition: "FragmentDefinition", TypeCondition: "TypeCondition",
	NamedType: "NamedType", ListType: "ListType", NonNullType: "NonNullType",
	IntValue: "IntValue", FloatValue: "FloatValue", StringValue: "StringValue",
	BooleanValue: "BooleanValue", NullValue: "NullValue", EnumValue: "EnumValue",
	ListValue: "ListValue", ObjectValue: "ObjectValue", ObjectField: "ObjectField",
	Directives: "Directives", Directive: "Directive", Description: "Description",

	SchemaDefinition: "SchemaDefinition",
	RootOperationTypeDefinition: "RootOperationTypeDefinition",
	ScalarTypeDefinition:        "ScalarTypeDefinition",
	ObjectTypeDefinition:        "ObjectTypeDefinition",
	ImplementsInterfaces:        "ImplementsInterfaces",
	FieldsDefinition:            "FieldsDefinition",
	FieldDefinition:             "FieldDefinition",
	ArgumentsDefinition:         "ArgumentsDefinition",
	InputValueDefinition:        "InputValueDefinition",
	InterfaceTypeDefinition:     "InterfaceTypeDefinition",
	UnionTypeDefinition:         "UnionTypeDefinition",
	UnionMemberTypes:            "UnionMemberTypes",
	EnumTypeDefinition:          "EnumTypeDefinition",
	EnumValuesDefinition:        "EnumValuesDefinition",
	EnumValueDefinition:         "EnumValueDefinition",
	InputObjectTypeDefinition:   "InputObjectTypeDefinition",
	InputFieldsDefinition:       "InputFieldsDefinition",
	DirectiveDefinition:         "DirectiveDefinition",
	DirectiveLocations:          "DirectiveLocations",
	DirectiveLocation:           "DirectiveLocation",

	SchemaExtension:          "SchemaExtension",
	ScalarTypeExtension:      "ScalarTypeExtension",
	ObjectTypeExtension:      "ObjectTypeExtension",
	InterfaceTypeExtension:   "InterfaceTypeExtension",
	UnionTypeExtension:       "UnionTypeExtension",
	EnumTypeExtension:        "EnumTypeExtension",
	InputObjectTypeExtension: "InputObjectTypeExtension",
}

// String returns the kind's debug name, used in panic messages and tree
// dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// IsTrivia reports whether k is [Whitespace] or [Comment].
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
