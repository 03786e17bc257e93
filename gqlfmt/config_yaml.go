package gqlfmt

import "fmt"

// MarshalText renders a [Comma] as its configuration-table enum string.
func (c Comma) MarshalText() ([]byte, error) {
	switch c {
	case CommaInherit:
		return []byte("inherit"), nil
	case CommaAlways:
		return []byte("always"), nil
	case CommaNever:
		return []byte("never"), nil
	case CommaNoTrailing:
		return []byte("noTrailing"), nil
	case CommaOnlySingleLine:
		return []byte("onlySingleLine"), nil
	}

	return nil, fmt.Errorf("gqlfmt: invalid Comma value %d", c)
}

// UnmarshalText parses a configuration-table comma enum string into a
// [Comma].
func (c *Comma) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inherit":
		*c = CommaInherit
	case "always":
		*c = CommaAlways
	case "never":
		*c = CommaNever
	case "noTrailing":
		*c = CommaNoTrailing
	case "onlySingleLine":
		*c = CommaOnlySingleLine
	default:
		return fmt.Errorf("gqlfmt: unknown comma value %q", text)
	}

	return nil
}

// MarshalText renders a [SingleLine] as its configuration-table enum
// string.
func (s SingleLine) MarshalText() ([]byte, error) {
	switch s {
	case SingleLineInherit:
		return []byte("inherit"), nil
	case SingleLinePrefer:
		return []byte("prefer"), nil
	case SingleLineSmart:
		return []byte("smart"), nil
	case SingleLineNever:
		return []byte("never"), nil
	}

	return nil, fmt.Errorf("gqlfmt: invalid SingleLine value %d", s)
}

// UnmarshalText parses a configuration-table single-line enum string into a
// [SingleLine].
func (s *SingleLine) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inherit":
		*s = SingleLineInherit
	case "prefer":
		*s = SingleLinePrefer
	case "smart":
		*s = SingleLineSmart
	case "never":
		*s = SingleLineNever
	default:
		return fmt.Errorf("gqlfmt: unknown singleLine value %q", text)
	}

	return nil
}

// MarshalText renders a [LineBreakKind] as "lf" or "crlf".
func (l LineBreakKind) MarshalText() ([]byte, error) {
	switch l {
	case LineBreakLF:
		return []byte("lf"), nil
	case LineBreakCRLF:
		return []byte("crlf"), nil
	}

	return nil, fmt.Errorf("gqlfmt: invalid LineBreakKind value %d", l)
}

// UnmarshalText parses "lf"/"crlf" into a [LineBreakKind].
func (l *LineBreakKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lf":
		*l = LineBreakLF
	case "crlf":
		*l = LineBreakCRLF
	default:
		return fmt.Errorf("gqlfmt: unknown lineBreak value %q", text)
	}

	return nil
}
