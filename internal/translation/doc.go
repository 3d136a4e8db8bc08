// Package translation is the public entry point of the glossary
// compilation pipeline. It validates the formality option, runs the
// language-pair validator, the relevance filter and the request
// compiler, and returns the compiled request together with any
// non-fatal diagnostics. Glossary usage is optional by design: a
// translation is never blocked because its glossary cannot be used.
package translation
