// Package matcher maps each item of a source list to its best matching item
// in a target list.
//
// An item found verbatim in the target list is an exact match and is never
// scored. Every other item is scored against the whole target list with a
// normalized Levenshtein similarity rounded to two decimals. All candidates
// whose score lies within the threshold below the best score are winners; the
// winner with the highest target index becomes the match and the rest are
// reported as alternatives, which marks the record ambiguous.
//
// Results are produced lazily, one record per source item and in source
// order, either sequentially or by a bounded pool of workers feeding a
// reorder buffer.
package matcher
