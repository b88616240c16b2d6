// Package ldbstore implements a bandit.ResultStore that keeps aggregated
// experiment results on disk in a LevelDB database.
//
// Results survive the process, so finished experiments can be listed and
// re-plotted without being rerun.
package ldbstore
