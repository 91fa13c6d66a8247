// Package dataprocessing loads the match and delivery datasets into typed
// in-memory tables, normalizes the match table (column rename, date parsing,
// season derivation) and produces the diagnostic dataset summaries printed
// before analysis. Tables are treated as read-only once preprocessing has
// completed.
package dataprocessing
