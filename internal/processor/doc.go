// Package processor contains the orchestration logic of the deepling
// CLI. It loads the glossary, compiles each request through the
// translation facade, consults the cache, and hands compiled requests
// to the provider transport. This package serves as the main
// coordinator between all other components.
package processor
