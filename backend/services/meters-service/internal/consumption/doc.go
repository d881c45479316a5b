// Package consumption derives consumption figures from meter readings: interval
// deltas and statistics, monthly buckets, gap-filled timelines, season bands for
// chart backgrounds, trailing period filters and benchmark matching.
//
// Every function is pure and works on already fetched slices. Inputs are never
// mutated and results are plain values.
package consumption
