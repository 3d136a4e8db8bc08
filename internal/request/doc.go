// Package request turns a relevance-filtered glossary into a
// provider-compliant request augmentation. The provider caps the number
// of glossary entries per request, so the compiler truncates
// deterministically, first-N in insertion order.
package request
