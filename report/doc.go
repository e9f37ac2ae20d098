// Package report renders synthesizer output as plain text: the final
// value, the ordered factor breakdown and the consumed error budget.
// Rendering is pure string building — no I/O, no state.
package report
