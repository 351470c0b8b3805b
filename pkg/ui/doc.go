// Package ui handles console output: the banner, colored status lines,
// numbered pipeline steps and the results summary.
//
// ANSI colors are enabled only when stdout is a terminal and NO_COLOR is
// unset; SetColorEnabled overrides the detection. Quiet mode suppresses
// everything except errors and the final report path.
package ui
