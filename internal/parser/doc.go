// Package parser turns extracted document text into candidate records.
//
// Parsing is a cascade of independent strategies tried in a fixed precedence
// order; the first strategy returning at least one record wins and later
// strategies never run. Every strategy is a pure function over the line
// sequence: deterministic, order-preserving and stateless.
package parser
