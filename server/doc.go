// Package server exposes the dashboard pipeline and the LLM document
// features over HTTP.
//
// Documents are uploaded once, kept in an in-memory registry for the life
// of the process, and referenced by id in later requests. The only thing
// persisted to disk besides the uploaded file itself is the generated
// dashboard report; there is no database.
package server
