// Package analysis implements the ten independent reporting steps over the
// match and delivery datasets: seasonal match counts, venue and winner
// rankings, toss impact, batting and bowling leaders, award tallies, per-over
// scoring rates and season scoring trends. Each step derives its own
// aggregate view and is isolated from the others; one step failing or
// skipping never stops the rest of the run.
package analysis
