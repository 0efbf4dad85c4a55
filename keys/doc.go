// Package keys decodes raw terminal input bytes into logical key events.
//
// Escape sequences are recognized by an explicit state machine that reads one
// byte at a time. A read that returns io.EOF while a sequence is pending is a
// read timeout and collapses the pending bytes into a plain Escape key.
package keys
