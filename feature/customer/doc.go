// Package customer reconciles customer batches against a phone-keyed store
// with unique secondary indexes over customer IDs and emails.
package customer
