package versions

import "time"

// RootCode is the sample every session starts from.
const RootCode = `def fibonacci(n):
    if n <= 1:
        return n
    return fibonacci(n-1) + fibonacci(n-2)`

// RootDescription describes the root version.
const RootDescription = "First version: recursive implementation"

// DefaultTimestampLayout formats CreatedAt when Options leave it empty.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// defaultDescriptionPrefix starts the description generated for saves
// without one; the save time follows it.
const defaultDescriptionPrefix = "Version from "

// Options configures a Session. The zero value is usable.
type Options struct {
	// Clock returns the current time; time.Now when nil.
	Clock func() time.Time
	// TimestampLayout is the time.Format layout for CreatedAt.
	TimestampLayout string
}

// Draft holds the editable values of the input form.
type Draft struct {
	Code        string
	Language    Language
	Description string
}

// View is everything the presentation layer reads to render one frame.
type View struct {
	Current     Node
	HasPrevious bool
	HasNext     bool
	Pending     Draft
	Total       int
}

// Session is the explicitly owned state of one navigator: the chain, the
// node on display and the pending draft. A Session is driven by a single
// event loop and is not safe for concurrent use.
type Session struct {
	chain   *Chain
	current NodeID
	pending Draft

	clock  func() time.Time
	layout string
}

// NewSession creates an initialized session.
func NewSession(opts Options) *Session {
	s := &Session{
		clock:  opts.Clock,
		layout: opts.TimestampLayout,
	}
	s.Initialize()
	return s
}

// Initialize discards any history and starts over from the root sample.
// A zero Session is usable after Initialize and reads the wall clock.
func (s *Session) Initialize() {
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.layout == "" {
		s.layout = DefaultTimestampLayout
	}
	s.chain = newChain(RootCode, Python, RootDescription, s.clock(), s.layout)
	s.current = 0
	root := s.chain.Root()
	s.pending = Draft{Code: root.Code, Language: root.Language}
}

// Chain exposes the arena for read-only listing.
func (s *Session) Chain() *Chain {
	return s.chain
}

// Current returns the node on display.
func (s *Session) Current() Node {
	return s.chain.nodes[s.current]
}

// HasPrevious reports whether GoToPrevious would move.
func (s *Session) HasPrevious() bool {
	return s.Current().HasPrevious()
}

// HasNext reports whether GoToNext would move.
func (s *Session) HasNext() bool {
	return s.Current().HasNext()
}

// Pending returns the draft fields.
func (s *Session) Pending() Draft {
	return s.pending
}

// View returns a snapshot of everything needed to render the session.
func (s *Session) View() View {
	cur := s.Current()
	return View{
		Current:     cur,
		HasPrevious: cur.HasPrevious(),
		HasNext:     cur.HasNext(),
		Pending:     s.pending,
		Total:       s.chain.Len(),
	}
}

// SetPendingCode replaces the draft code. Any string is accepted.
func (s *Session) SetPendingCode(code string) {
	s.pending.Code = code
}

// SetPendingLanguage stores lang as is. Callers constrain input to the
// supported set; see ParseLanguage.
func (s *Session) SetPendingLanguage(lang Language) {
	s.pending.Language = lang
}

// SetPendingDescription replaces the draft description. An empty draft is
// defaulted at save time.
func (s *Session) SetPendingDescription(description string) {
	s.pending.Description = description
}

// GoToPrevious moves to the previous version. At the root it does nothing
// and returns false. The pending description is left untouched.
func (s *Session) GoToPrevious() bool {
	prev := s.Current().PrevID
	if !prev.Valid() {
		return false
	}
	s.moveTo(prev)
	return true
}

// GoToNext moves to the next version. At the end of the chain it does
// nothing and returns false. The pending description is left untouched.
func (s *Session) GoToNext() bool {
	next := s.Current().NextID
	if !next.Valid() {
		return false
	}
	s.moveTo(next)
	return true
}

// ResetToFirst moves to the first version ever created.
func (s *Session) ResetToFirst() {
	s.moveTo(s.chain.Root().ID)
}

func (s *Session) moveTo(id NodeID) {
	s.current = id
	n := s.chain.nodes[id]
	s.pending.Code = n.Code
	s.pending.Language = n.Language
}

// SaveNewVersion appends a version after the current node and moves to it.
// An empty description is replaced with one naming the save time. If the
// current node already had a next version, that link is replaced; the older
// node remains in Chain().All() but is skipped by forward navigation.
// Only the pending description is cleared.
func (s *Session) SaveNewVersion(code string, lang Language, description string) Node {
	now := s.clock()
	if description == "" {
		description = defaultDescriptionPrefix + now.Format(s.layout)
	}

	id := s.chain.append(s.current, code, lang, description, now, s.layout)
	s.current = id
	s.pending.Description = ""
	return s.chain.nodes[id]
}

// SavePending saves the pending draft as a new version.
func (s *Session) SavePending() Node {
	return s.SaveNewVersion(s.pending.Code, s.pending.Language, s.pending.Description)
}
