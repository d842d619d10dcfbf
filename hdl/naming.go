package hdl

// NameFrame is one frame of the naming collaborator's answer: an inferred
// name together with the source location it was inferred from.
type NameFrame struct {
	// The inferred name.  May be empty when nothing could be inferred.
	Name string

	// The source location the name was inferred from.
	File string
	Line int
}

// NameHint is the injected naming/diagnostics collaborator.  Given the
// optional explicit name a signal was created with, it returns the ordered
// name frames describing the creating call context.  It is used purely for
// human-readable default naming; when nil, signals fall back to a single
// frame holding just the explicit name.
var NameHint func(explicit string) []NameFrame

// nameFrames resolves the backtrace for a new signal.
func nameFrames(explicit string) []NameFrame {
	if NameHint != nil {
		return NameHint(explicit)
	}

	return []NameFrame{{Name: explicit}}
}

// EffectiveName returns the name a human should see for the signal: the name
// override if set, otherwise the innermost inferred name, otherwise
// "anonymous".
func (s *Signal) EffectiveName() string {
	if s.NameOverride != "" {
		return s.NameOverride
	}

	if len(s.Backtrace) > 0 {
		if name := s.Backtrace[len(s.Backtrace)-1].Name; name != "" {
			return name
		}
	}

	return "anonymous"
}
