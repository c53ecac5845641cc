// Package chroma highlights cadence templates for terminal output.
package chroma

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wrap"
)

// DefaultStyle is used when no style is requested
const DefaultStyle = "solarized-dark"

func rule(pattern string, token chroma.TokenType) chroma.Rule {
	return chroma.Rule{Pattern: pattern, Type: token}
}

// template placeholders are matched before anything else so they stand out in unresolved code
var placeholderRules = []chroma.Rule{
	rule(`\{\{ import "[^"]*" \}\}`, chroma.CommentPreproc),
}

var keywordRules = []chroma.Rule{
	rule(`\b(import|from|transaction|prepare|execute|pre|post)\b`, chroma.KeywordNamespace),
	rule(`\b(contract|struct|resource|interface|event|enum|attachment|entitlement)\b`, chroma.KeywordDeclaration),
	rule(`\b(fun|let|var|init)\b`, chroma.KeywordDeclaration),
	rule(`\b(if|else|switch|case|default|while|for|in|break|continue|return)\b`, chroma.Keyword),
	rule(`\b(access|auth|view|all|self|mapping|include)\b`, chroma.KeywordReserved),
	rule(`\b(create|destroy|emit|attach|to|remove|as)\b`, chroma.Keyword),
}

var typeRules = []chroma.Rule{
	rule(`\b(U?Int(8|16|32|64|128|256)?|Word(8|16|32|64)|U?Fix64)\b`, chroma.KeywordType),
	rule(`\b(String|Character|Bool|Address|Void|AnyStruct|AnyResource|Never|Type|Capability|Account)\b`, chroma.KeywordType),
	rule(`\b(StoragePath|PublicPath|PrivatePath|CapabilityPath)\b`, chroma.KeywordType),
	rule(`\b(FungibleToken|ArenaToken|Vault|Receiver|Balance|Provider|Administrator|Withdraw)\b`, chroma.NameClass),
	rule(`\b(storage|capabilities|borrow|withdraw|deposit|balance|save|load|issue|publish)\b`, chroma.NameBuiltin),
}

var literalRules = []chroma.Rule{
	rule(`\b(true|false|nil)\b`, chroma.KeywordConstant),
	rule(`\b[0-9]([_0-9]*[0-9])?\.[0-9]([_0-9]*[0-9])?\b`, chroma.LiteralNumberFloat),
	rule(`\b0x[0-9A-Fa-f]([_0-9A-Fa-f]*[0-9A-Fa-f])?\b`, chroma.LiteralNumberHex),
	rule(`\b[0-9]([_0-9]*[0-9])?\b`, chroma.LiteralNumberInteger),
	rule(`"(?:[^"\\]|\\.)*"`, chroma.LiteralString),
	rule(`/(storage|public|private)(/[a-zA-Z_][a-zA-Z0-9_]*)?`, chroma.LiteralString),
}

var commentRules = []chroma.Rule{
	rule(`///.*?$`, chroma.CommentSpecial),
	rule(`//.*?$`, chroma.CommentSingle),
	{Pattern: `/\*`, Type: chroma.CommentMultiline, Mutator: chroma.Push("comment")},
}

var operatorRules = []chroma.Rule{
	rule(`<-!|<->|<-`, chroma.Operator),
	rule(`\?\?|\?\.|&&|\|\|`, chroma.Operator),
	rule(`[=!<>]=?|[+\-*/%?!&@]`, chroma.Operator),
	rule(`[(){}\[\],.:;]`, chroma.Punctuation),
}

var nameRules = []chroma.Rule{
	rule(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`, chroma.NameFunction),
	rule(`\b[A-Z][a-zA-Z0-9_]*\b`, chroma.NameClass),
	rule(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`, chroma.Name),
	rule(`\s+`, chroma.Text),
}

func rootRules() []chroma.Rule {
	var root []chroma.Rule
	for _, group := range [][]chroma.Rule{placeholderRules, commentRules, keywordRules, typeRules, literalRules, operatorRules, nameRules} {
		root = append(root, group...)
	}
	return root
}

// NewCadenceLexer creates a lexer for cadence source, including unresolved import placeholders
func NewCadenceLexer() chroma.Lexer {
	return chroma.MustNewLexer(
		&chroma.Config{
			Name:      "Cadence",
			Aliases:   []string{"cadence", "cdc"},
			Filenames: []string{"*.cdc"},
			MimeTypes: []string{"text/x-cadence"},
		},
		func() chroma.Rules {
			return chroma.Rules{
				"root": rootRules(),
				"comment": {
					rule(`[^*/]+`, chroma.CommentMultiline),
					{Pattern: `/\*`, Type: chroma.CommentMultiline, Mutator: chroma.Push("comment")},
					{Pattern: `\*/`, Type: chroma.CommentMultiline, Mutator: chroma.Pop(1)},
					rule(`[*/]`, chroma.CommentMultiline),
				},
			}
		},
	)
}

type options struct {
	style string
	width int
}

// Option configures Highlight
type Option func(*options)

// WithStyle selects a chroma style such as "monokai" or "github". Unknown styles fall back to the chroma default.
func WithStyle(style string) Option {
	return func(o *options) {
		if style != "" {
			o.style = style
		}
	}
}

// WithWidth wraps highlighted output at width visible characters, 0 disables wrapping
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
	}
}

// Highlight returns code with ANSI syntax highlighting.
// The code is returned unchanged when tokenising or formatting fails.
func Highlight(code string, opts ...Option) string {
	o := options{style: DefaultStyle}
	for _, opt := range opts {
		opt(&o)
	}

	style := styles.Get(o.style)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := NewCadenceLexer().Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	// wrap after highlighting, reflow skips ANSI sequences when counting
	if o.width > 0 {
		return wrap.String(buf.String(), o.width)
	}
	return buf.String()
}
