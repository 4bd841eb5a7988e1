// Package history records runs of the tiny command line tool in a local
// SQLite database. Each run stores the command, the input path, the token
// count and whether the program was accepted.
package history
