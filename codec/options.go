package codec

// Options controls how documents are decoded. The zero value is the lenient
// default: unknown members are ignored and modifier extensions are kept
// without inspection.
type Options struct {
	// DisallowUnknownElements makes members that are not part of a
	// structure's table fail with ErrUnknownElement.
	DisallowUnknownElements bool

	// CheckModifierExtensions makes any modifierExtension whose url is not in
	// UnderstoodModifiers fail with ErrUnrecognizedModifier.
	CheckModifierExtensions bool

	// UnderstoodModifiers lists modifier extension URLs the caller processes.
	UnderstoodModifiers map[string]struct{}
}

// Understands reports whether a modifier extension url is understood.
func (o *Options) Understands(url string) bool {
	_, ok := o.UnderstoodModifiers[url]
	return ok
}
