// Package formats holds the text and binary codecs at the pipeline
// boundary: the console path-log and VMF map parsers on the way in, and
// the SMD, QC and VTF writers on the way out.
//
// The writers are pure formatters over already-validated data; parameter
// checking belongs to the caller.
package formats
