// Package glossary loads custom terminology glossaries from tabular
// sources and filters them down to the entries that are relevant for a
// given text. A Store is read-only once loaded, so it can be reused
// across translation calls for the same language pair.
package glossary
