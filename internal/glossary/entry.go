package glossary

// Entry is a single enforced source→target term substitution.
// Both fields are normalized at load time and never change afterwards.
type Entry struct {
	Source string
	Target string
}
