// Package mock provides test doubles for the ai package interfaces.
//
// The mocks default to deterministic behavior so tests are reproducible
// without external AI services: the embedder hashes text into stable
// vectors (identical texts embed to identical vectors) and the generator
// echoes the question. Behavior can be overridden per test via the
// exported function fields.
package mock
