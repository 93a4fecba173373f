// Package commands defines the physiquist CLI.
//
// Commands
//
//   - formulas   List the formula catalog
//   - formula    Show the variables, units and targets of one formula
//   - units      List the units of a quantity kind
//   - solve      Solve a formula for one variable
//   - batch      Solve every request of an xlsx workbook
//   - report     Write a PDF report of one calculation
//   - token      Mint a bearer token for the HTTP API
//   - hash-key   Hash an API key for PHYSIQUIST_API_KEY_HASH
//
// Values are given as symbol=value[unit], e.g. m=2kg, θ=30deg or "R=4 kΩ".
package commands
