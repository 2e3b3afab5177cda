// Package validate defines the row-level validation error type shared by
// the entity validators and the sink message format for rejected rows.
package validate
