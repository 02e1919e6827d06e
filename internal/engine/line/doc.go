// Package line provides the growable byte buffer that backs a single
// line of a document.
//
// A Line owns its bytes, including the trailing newline when the line is
// not the last one in its document. Capacity always grows by doubling and
// is kept a power of two strictly larger than the content, so appending a
// byte is amortized O(1).
//
// Columns are byte offsets; no Unicode decoding happens here.
//
// Each Line carries its own capacity limit, set when it is created.
// Growth past the limit returns ErrOutOfMemory and leaves the line
// unchanged, letting the caller abandon the edit in progress.
package line
