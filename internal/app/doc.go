// Package app contains the host program logic of the argbox command. It
// loads argument manifests, answers help requests and resolves a command
// line, decoupled from the process entrypoint so it can be tested with
// in-memory writers.
package app
