// Package resrel is the Go client for the (RE)Sources Relationnelles
// platform API.
//
// Client is the single chokepoint for outgoing HTTP calls: it attaches
// the bearer token and default headers, parses JSON responses, and turns
// every failure into a typed *APIError. The per-collection API types
// (AuthAPI, ResourcesAPI, FavoritesAPI, ...) are stateless translations
// from method calls to Client calls. Session owns the authentication
// lifecycle: it keeps the stored token and the in-memory user consistent
// and exposes Login/Logout/Register/CheckAuth operations that report
// failures through a Result value instead of returning raw errors.
//
// Classify maps any error into one of six fixed categories so callers can
// render failures uniformly without inspecting status codes.
package resrel
