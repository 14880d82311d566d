// Package retrieval finds the indexed chunks nearest to a query.
//
// The engine embeds the query, scores every chunk by squared Euclidean
// distance, keeps a widened nearest set, filters it by the score
// threshold, and returns at most maxDocs results sorted closest first.
package retrieval
