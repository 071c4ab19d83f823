// Package tui implements the interactive terminal interface: a dashboard
// with progress charts and projections, a data entry form, and a history
// table over the persisted flight records.
package tui
