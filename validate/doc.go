// Package validate implements the relationship validators (C8):
// dialect-specific rules checking a relationship edge's resolved target
// symbol against the kind the relationship requires, e.g. a `satisfy`
// target must be a Requirement. A no-op validator covers unknown file
// extensions.
package validate
