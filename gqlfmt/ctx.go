package gqlfmt

// ctx is the read-only state every node formatter borrows: the resolved
// language policy plus the ignore-directive comment text it was derived
// from. It carries no mutable fields — node formatters are pure functions
// of (ctx, *cst.Node) to [layout.Doc] — matching the reference module's
// habit of threading a small shared-borrow struct through recursive
// descent instead of a package-level global.
type ctx struct {
	lang *LanguageOptions
}

func newCtx(opts *FormatOptions) *ctx {
	return &ctx{lang: &opts.Language}
}
