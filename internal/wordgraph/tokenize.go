package wordgraph

import (
	"strings"
	"unicode"

	"github.com/linkgrammar-go/lgcore/internal/dict"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxSplits bounds the per-token split counter: once a token has
// produced this many alternatives, further splitting halts for it.
const MaxSplits = 32

// Options configures the splitting contracts that are sensitive to
// caller policy rather than dictionary content.
type Options struct {
	// SpellGuess enables contract 7 (run-on splitting) for unknown
	// tokens containing no digits.
	SpellGuess bool
}

type part struct {
	text      string
	mtype     MorphemeType
	status    Status
	regexName string
}

type candidate struct {
	parts []part
}

var lowerer = cases.Lower(language.Und)

// Tokenize runs the splitting contracts in order over the
// whitespace-separated tokens of text and splices the resulting subword
// chains into g between its source and sink.
func Tokenize(d dict.Dictionary, g *Graph, text string, opts Options) error {
	raw := strings.Fields(text)
	if len(raw) == 0 {
		return GraphError{Kind: "InputInvalid", Message: "empty sentence"}
	}

	frontier := []NodeID{g.Source}
	g.RemoveEdge(g.Source, g.Sink)

	for i, tok := range raw {
		cands := splitToken(d, tok, i == 0, opts)
		if len(cands) == 0 {
			cands = []candidate{{parts: []part{{text: tok, mtype: Unknown}}}}
		}
		padToEqualWidth(cands)

		var newFrontier []NodeID
		for _, c := range cands {
			head, tail := g.addChain(c)
			for _, f := range frontier {
				g.addEdge(f, head)
			}
			newFrontier = append(newFrontier, tail)
		}
		frontier = newFrontier
	}

	for _, f := range frontier {
		g.addEdge(f, g.Sink)
	}
	return nil
}

// addChain materializes one alternative's subword chain, wiring an
// AlternativeID shared by every node in the chain and returning its head
// and tail node IDs.
func (g *Graph) addChain(c candidate) (head, tail NodeID) {
	var altID NodeID
	for i, p := range c.parts {
		status := p.status
		if len(c.parts) > 1 {
			status |= HasAlt
		}
		id := g.AddNode(Gword{
			Subword:      g.Pool.Intern(p.text),
			MorphemeType: p.mtype,
			Status:       status,
			RegexName:    p.regexName,
		})
		n, _ := g.Node(id)
		if i == 0 {
			altID = id
			head = id
		}
		n.AlternativeID = altID
		n.UnsplitWord = altID
		if i > 0 {
			g.addEdge(tail, id)
		}
		tail = id
	}
	return head, tail
}

// splitToken runs contracts 1-8 in order against one raw token and
// returns every accepted alternative, subject to redundancy prevention
// and MaxSplits.
func splitToken(d dict.Dictionary, tok string, atSentenceStart bool, opts Options) []candidate {
	var cands []candidate
	seenFirst := make(map[string]bool)

	accept := func(c candidate) bool {
		if len(cands) >= MaxSplits {
			return false
		}
		first := c.parts[0].text
		if seenFirst[first] {
			return false
		}
		for seen, unknown := range seenFirst {
			if unknown && strings.HasPrefix(first, seen) {
				return false
			}
		}
		cands = append(cands, c)
		seenFirst[first] = c.parts[0].mtype == Unknown
		return true
	}

	// 1. dictionary lookup of the literal token.
	if len(d.Lookup(tok)) > 0 {
		accept(candidate{parts: []part{{text: tok, mtype: Word, status: InDict}}})
	}

	// 2. repeated right-stripping of punctuation.
	rpunc := affixSet(d.AffixClass(dict.RPUNC))
	stem := tok
	var stripped []string
	for len(stem) > 0 {
		r := []rune(stem)
		last := r[len(r)-1]
		if !rpunc[string(last)] {
			break
		}
		stripped = append([]string{string(last)}, stripped...)
		stem = string(r[:len(r)-1])
		if stem == "" {
			break
		}
		if len(d.Lookup(stem)) > 0 {
			parts := []part{{text: stem, mtype: Word, status: InDict}}
			for _, s := range stripped {
				parts = append(parts, part{text: s, mtype: Suffix})
			}
			accept(candidate{parts: parts})
			break
		}
	}

	// 3. left-stripping of quote/bracket punctuation.
	lpunc := affixSet(d.AffixClass(dict.LPUNC))
	if len(tok) > 0 {
		r := []rune(tok)
		first := string(r[0])
		if lpunc[first] {
			rest := string(r[1:])
			if len(d.Lookup(rest)) > 0 {
				accept(candidate{parts: []part{
					{text: first, mtype: Prefix},
					{text: rest, mtype: Word, status: InDict},
				}})
			}
		}
	}

	// 4. affix splits: prefix/stem and stem/suffix, driven by the
	// dictionary's PRE and SUF classes. Multi-prefix splitting for
	// languages like Hebrew is out of scope.
	for _, suf := range d.AffixClass(dict.SUF) {
		if strings.HasSuffix(tok, suf) && len(tok) > len(suf) {
			root := strings.TrimSuffix(tok, suf)
			if len(d.Lookup(root)) > 0 {
				accept(candidate{parts: []part{
					{text: root, mtype: Stem, status: InDict},
					{text: suf, mtype: Suffix},
				}})
			}
		}
	}
	for _, pre := range d.AffixClass(dict.PRE) {
		if strings.HasPrefix(tok, pre) && len(tok) > len(pre) {
			root := strings.TrimPrefix(tok, pre)
			if len(d.Lookup(root)) > 0 {
				accept(candidate{parts: []part{
					{text: pre, mtype: Prefix},
					{text: root, mtype: Stem, status: InDict},
				}})
			}
		}
	}

	// 5. capitalization handling.
	if atSentenceStart && len(tok) > 0 && unicode.IsUpper([]rune(tok)[0]) {
		lower := lowerer.String(tok)
		if lower != tok && len(d.Lookup(lower)) > 0 {
			accept(candidate{parts: []part{{text: lower, mtype: Word, status: InDict | FirstUpper}}})
		}
	}

	// 6. regex classification.
	if class, ok := d.RegexMatch(tok); ok && len(d.Lookup(class)) > 0 {
		accept(candidate{parts: []part{{text: tok, mtype: Word, status: RegexMatched, regexName: class}}})
	}

	// 7. spell-guess: run-on split into two dictionary words.
	if opts.SpellGuess && len(cands) == 0 && !containsDigit(tok) {
		r := []rune(tok)
		for i := 1; i < len(r); i++ {
			left, right := string(r[:i]), string(r[i:])
			if len(d.Lookup(left)) > 0 && len(d.Lookup(right)) > 0 {
				accept(candidate{parts: []part{
					{text: left, mtype: Word, status: InDict | SpellGuess | RunOn},
					{text: right, mtype: Word, status: InDict | SpellGuess | RunOn},
				}})
				break
			}
		}
	}

	// 8. fallback to the dictionary's unknown-word entry.
	if len(cands) == 0 && d.UseUnknownWord() {
		accept(candidate{parts: []part{{text: tok, mtype: Unknown}}})
	}

	return cands
}

// padToEqualWidth inserts EMPTY_WORD subwords on the end of shorter
// alternatives so that every concurrent alternative of one token spans
// the same number of word-array positions once flattened.
func padToEqualWidth(cands []candidate) {
	maxLen := 0
	for _, c := range cands {
		if len(c.parts) > maxLen {
			maxLen = len(c.parts)
		}
	}
	for i := range cands {
		for len(cands[i].parts) < maxLen {
			cands[i].parts = append(cands[i].parts, part{text: dict.EmptyWord, mtype: Empty})
		}
	}
}

func affixSet(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
