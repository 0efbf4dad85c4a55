// Package editor implements the kilo editing session on top of the buffer and
// keys packages.
//
// Model owns the document, cursor, viewport and status line. Update applies one
// decoded key, View renders one full terminal frame, and Program runs the
// read/dispatch/render loop against an injected reader and writer.
package editor
