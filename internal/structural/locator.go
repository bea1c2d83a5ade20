package structural

// Locator finds declarations by byte position in a parsed source tree. All
// failure modes (no grammar for the file, parse failure, no enclosing node)
// are reported as ok=false, never as errors: they signal "try the fallback
// path", not a fault.
type Locator interface {
	// EnclosingDeclaration returns the verbatim source text of the smallest
	// named declaration (type or function) whose byte span contains offset.
	EnclosingDeclaration(path string, source []byte, offset int) (string, bool)

	// LastTypeDeclarationBefore returns the source text of the last type
	// declaration, in source order, whose start precedes cutoff. Ties favor
	// the most recently declared type before the cutoff rather than the
	// lexically innermost one; callers depend on this "last seen before
	// cutoff" policy.
	LastTypeDeclarationBefore(path string, source []byte, cutoff int) (string, bool)
}
