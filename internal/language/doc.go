// Package language models ISO-639-1 language pairs and validates them
// against the provider's glossary support matrix. Glossary support is
// directional and pair-specific, so the matrix enumerates ordered pairs.
package language
