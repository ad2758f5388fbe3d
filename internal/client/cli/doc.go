// Package cli implements the interactive terminal client: a read–eval–print
// loop dispatching to the login, data-grid, entry-form, summary, dashboard,
// Q&A and user-management flows. All state lives in the services layer; this
// package only does prompting, parsing and printing.
package cli
