// Package cli is responsible for parsing the argbox command's own arguments,
// validating user input, and handling process-level concerns like exit
// codes. The command's options are declared and resolved with argbox itself.
package cli
