// Package flatfile provides the delimited-file layer for the reconciler:
// reading input batches, writing persisted entity state, and the append-only
// error sink.
//
// # Layout
//
// Every entity type has fixed relative paths inside one processing folder:
// an origin snapshot under InputFolder/, per-action batch files (.new, .edit,
// .delete), and one output file under OutputFolder/. The error sink at
// OutputFolder/error.output.txt receives one line per rejected row or fatal
// condition and is appended to, never truncated.
//
// # Contracts
//
// Table is the read/write contract the reconciliation services depend on;
// Dir implements it over the local filesystem. A missing or unreadable input
// file is a structural error that aborts the whole operation, unlike row-level
// validation failures which only skip the offending row.
package flatfile
