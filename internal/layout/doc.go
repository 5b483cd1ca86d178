// Package layout implements the sizing and positioning resolution core
// for list content laid out inside a scrollable container.
//
// It resolves a declared [Sizing] policy to a concrete measured size via
// an injected [Measurer] oracle, and a declared [Width] policy to a
// concrete horizontal [Position]. Both are pure value computations over
// min/max constraints with default-resolution semantics. Types are
// re-exported through the root listable package for public consumption.
package layout
