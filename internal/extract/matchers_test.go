package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Candidate-Line Matchers:
// - Typed-language func headers with modifiers, generics, throws, return arrow
// - Computed-property headers (typed var opening a body)
// - Dynamic-language function assignments with const/var/let prefixes
// - Standalone function declarations, optionally async
// - Handler-registration arrow idiom
// - Message-passing methods, single-line and split signature
// - Non-opener lines are rejected

func TestMatchCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		kind CandidateKind
		ok   bool
	}{
		{"plain func", "func fetchItems() {", KindFuncHeader, true},
		{"func with params and return", "    func load(from url: URL) -> Data {", KindFuncHeader, true},
		{"modified func", "public override func viewDidLoad() {", KindFuncHeader, true},
		{"generic throwing func", "func decode<T: Decodable>(_ data: Data) throws -> T {", KindFuncHeader, true},
		{"async func", "func refresh() async {", KindFuncHeader, true},
		{"attribute func", "@objc func onTap() {", KindFuncHeader, true},
		{"computed property", "var isEmpty: Bool {", KindComputedProperty, true},
		{"modified computed property", "    public static var shared: Client {", KindComputedProperty, true},
		{"function assignment", "handler = function(event) {", KindFuncAssignment, true},
		{"const function assignment", "const handler = function(event) {", KindFuncAssignment, true},
		{"async function assignment", "let run = async function() {", KindFuncAssignment, true},
		{"namespaced assignment", "app.routes.index = function(req, res) {", KindFuncAssignment, true},
		{"function declaration", "function render(props) {", KindFuncDeclaration, true},
		{"async function declaration", "async function fetchAll() {", KindFuncDeclaration, true},
		{"handler registration", "ipcMain.handle('load-file', async (event, path) => {", KindHandlerCall, true},
		{"handler registration identifier", "Bus.on(messageName, (payload) => {", KindHandlerCall, true},
		{"objc instance method", "- (void)viewDidLoad {", KindMethod, true},
		{"objc class method with args", "+ (instancetype)sharedManagerWithConfig:(Config *)config {", KindMethod, true},

		{"call site", "fetchItems()", "", false},
		{"closing brace", "}", "", false},
		{"stored property", "var count = 0", "", false},
		{"plain assignment", "x = compute(y)", "", false},
		{"arrow without registration", "const f = (a) => {", "", false},
		{"objc message send", "[self reloadData];", "", false},
		{"empty line", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := MatchCandidate(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestMatchesSplitSignature(t *testing.T) {
	t.Parallel()

	assert.True(t, MatchesSplitSignature("- (NSString *)descriptionForItem:(Item *)item"))
	assert.True(t, MatchesSplitSignature("+ (void)reset"))
	assert.False(t, MatchesSplitSignature("- (void)viewDidLoad {"))
	assert.False(t, MatchesSplitSignature("let x = -(a)olnly looks close;"))
	assert.False(t, MatchesSplitSignature("plain code"))
}
