// Package report joins the Numbeo catalog with a city's price observations
// and renders the result as a fixed-width text table.
//
// Everything here is pure: no I/O, and the same inputs always produce
// byte-identical output.
package report
