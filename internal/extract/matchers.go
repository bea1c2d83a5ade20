package extract

import "regexp"

// CandidateKind tags which dialect pattern flagged a line as a block opener.
// The tag is informational only; extraction never branches on it.
type CandidateKind string

const (
	KindFuncHeader       CandidateKind = "func-header"
	KindComputedProperty CandidateKind = "computed-property"
	KindFuncAssignment   CandidateKind = "function-assignment"
	KindFuncDeclaration  CandidateKind = "function-declaration"
	KindHandlerCall      CandidateKind = "handler-registration"
	KindMethod           CandidateKind = "message-method"
)

// Candidate is a line index believed to open an enclosing block.
type Candidate struct {
	Line int
	Kind CandidateKind
}

// The canonical matcher set. Each pattern is an independent predicate over a
// single line; any match qualifies the line as a candidate opener. Patterns
// are heuristics, not grammars: they only need to flag plausible openers so
// the brace-balance extractor can take over.
var (
	// Typed-language function header: optional modifiers, func keyword,
	// identifier, optional generic parameter list, parameter list, optional
	// effect keywords and return arrow, opening brace on the same line.
	funcHeaderRe = regexp.MustCompile(`^\s*(?:(?:public|private|fileprivate|internal|open|static|final|override|mutating|class|@\w+)\s+)*func\s+\w+(?:<[^>]*>)?\s*\(.*\)\s*(?:async\s*)?(?:(?:re)?throws\s*)?(?:->\s*[^{]+?)?\s*\{\s*$`)

	// Computed-property header: a typed var whose body opens on the same line.
	computedPropertyRe = regexp.MustCompile(`^\s*(?:(?:public|private|fileprivate|internal|open|static|override|lazy|class)\s+)*var\s+\w+\s*:\s*[^={]+\{\s*$`)

	// Dynamic-language function expression assigned to a name, with optional
	// const/var/let prefix.
	funcAssignmentRe = regexp.MustCompile(`^\s*(?:(?:const|var|let)\s+)?[\w$][\w$.]*\s*=\s*(?:async\s+)?function\s*\(.*\)\s*\{\s*$`)

	// Standalone function declaration, optionally async.
	funcDeclarationRe = regexp.MustCompile(`^\s*(?:async\s+)?function\s+[\w$]+\s*\(.*\)\s*\{\s*$`)

	// Handler-registration idiom: Namespace.Method(<selector-or-identifier>,
	// [async] (<params>) => {
	handlerCallRe = regexp.MustCompile(`^\s*\w+(?:\.\w+)+\(\s*[^,]+,\s*(?:async\s+)?\(.*\)\s*=>\s*\{\s*$`)

	// Message-passing method declaration: leading -/+, parenthesized return
	// type, selector with optional keyword:type segments, opening brace on the
	// same line.
	methodRe = regexp.MustCompile(`^\s*[-+]\s*\([^)]+\)[^{;=]*\{\s*$`)

	// The same signature with the opening brace split onto the next line.
	methodSplitRe = regexp.MustCompile(`^\s*[-+]\s*\([^)]+\)[^{;=]*$`)
)

var matchers = []struct {
	kind CandidateKind
	re   *regexp.Regexp
}{
	{KindFuncHeader, funcHeaderRe},
	{KindComputedProperty, computedPropertyRe},
	{KindFuncAssignment, funcAssignmentRe},
	{KindFuncDeclaration, funcDeclarationRe},
	{KindHandlerCall, handlerCallRe},
	{KindMethod, methodRe},
}

// MatchCandidate classifies a single line as a plausible declaration opener.
// A line matching no pattern is not a candidate.
func MatchCandidate(line string) (CandidateKind, bool) {
	for _, m := range matchers {
		if m.re.MatchString(line) {
			return m.kind, true
		}
	}
	return "", false
}

// MatchesSplitSignature reports whether line looks like a message-passing
// method signature whose opening brace sits on the following line.
func MatchesSplitSignature(line string) bool {
	return methodSplitRe.MatchString(line)
}
