// Package deepl is the transport collaborator: it sends compiled
// requests to the DeepL web JSONRPC endpoint and parses the responses.
// Calls are spaced out and guarded by a circuit breaker; no retrying
// happens here.
package deepl
