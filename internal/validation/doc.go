// Package validation holds the field checks used by the request workflows
// and the Chain type that runs them in a fixed order.
package validation
