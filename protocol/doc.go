// Package protocol defines the core types of the KurrentDB client:
// connection settings and their connection-string grammar, cluster endpoints
// and member states, node preference and selection policy, and the closed
// error taxonomy which all client operations surface.
//
// By convention types in this package provide a Validate() error method,
// and validation errors capture a nesting context (see ValidationError).
package protocol
