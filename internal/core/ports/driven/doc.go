// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PageSource: One page-walking strategy over the remote playlist,
//     bundling the page call with its inclusion predicate
//   - Translator: Bilingual keyword translation
//
// # Optional Interfaces
//
// These belong to the surrounding request layer and can be absent:
//
//   - TokenProvider: Access tokens for the authenticated fetch path
//   - SessionStore: Per-session credentials and active-playlist marker
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
