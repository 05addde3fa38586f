// Package balance decides whether the round and square brackets in a
// line of text are properly nested and closed.
//
// Only '(' ')' '[' ']' are significant.  Every other byte, including
// bytes that are not valid UTF-8, is skipped.
package balance

// Verdict is the outcome of checking one line.
type Verdict int

const (
	Unbalanced Verdict = iota
	Balanced
)

// String returns "balanced" or "unbalanced".
func (v Verdict) String() string {
	if v == Balanced {
		return "balanced"
	}
	return "unbalanced"
}

// Token returns the output token for v: "yes" or "no".
func (v Verdict) Token() string {
	if v == Balanced {
		return "yes"
	}
	return "no"
}

// Result carries a verdict plus the position that decided it.
type Result struct {
	Verdict Verdict

	// Offset is the byte offset of the first closer that had no
	// matching opener, or -1 if there was none.
	Offset int

	// Unclosed is the number of openers still pending when the scan
	// stopped.
	Unclosed int
}

// ── Bracket pairs ────────────────────────────────────────────────────

// openerFor maps each closer to the opener it consumes.
var openerFor = map[byte]byte{ //nolint:gochecknoglobals
	')': '(',
	']': '[',
}

// IsOpener reports whether b opens a bracket pair.
func IsOpener(b byte) bool { return b == '(' || b == '[' }

// IsCloser reports whether b closes a bracket pair.
func IsCloser(b byte) bool {
	_, ok := openerFor[b]
	return ok
}

// OpenerFor returns the opener matched by closer.  ok is false when
// closer is not a closing bracket.
func OpenerFor(closer byte) (opener byte, ok bool) {
	opener, ok = openerFor[closer]
	return opener, ok
}

// ── Scan ─────────────────────────────────────────────────────────────

// Check reports whether line is balanced.
func Check(line string) Verdict {
	return Scan(line).Verdict
}

// Scan checks line and reports where it went wrong, if anywhere.  The
// scan stops at the first closer that does not match the most recent
// pending opener.
func Scan(line string) Result {
	var pending stack[byte]

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case IsOpener(c):
			pending.push(c)
		case IsCloser(c):
			want, _ := OpenerFor(c)
			if top, ok := pending.peek(); !ok || top != want {
				return Result{Verdict: Unbalanced, Offset: i, Unclosed: pending.len()}
			}
			pending.pop()
		}
	}

	if pending.len() > 0 {
		return Result{Verdict: Unbalanced, Offset: -1, Unclosed: pending.len()}
	}
	return Result{Verdict: Balanced, Offset: -1}
}
