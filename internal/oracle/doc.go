// Package oracle builds the disk instance's vertex-split graph explicitly
// and computes its maximum flow with a textbook Ford-Fulkerson (BFS
// augmenting paths, i.e. Edmonds-Karp). It exists solely as an
// independent reference used by package resilience's property-based
// tests: where the implicit engine never materialises an edge, this one
// always does, so the two can be cross-checked against each other on the
// same instance.
package oracle
