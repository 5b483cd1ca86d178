// Package listable provides the sizing and positioning resolution core
// for list content laid out inside a scrollable container.
//
// Users import this single package for the complete public API: sizing
// policies resolved through a measurement oracle, width policies
// resolved to horizontal placements, and scroll-position visibility
// reporting.
package listable
