// Package report turns a search Result into what an operator reads: the step
// count of a successful route, or, for a failed search, a hint about which
// obstacle to remove and the smallest set of obstacles whose removal would
// open a route.
//
// Render draws the grid with the route overlaid, optionally colored with
// lipgloss styles.
package report
