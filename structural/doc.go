// Package structural clones and compares generic JSON trees
// (map[string]any / []any / scalars) with an explicit recursion bound.
//
// Equal accepts a KeyComparer hook so callers can override the comparison of
// individual object keys, which is how asset identity fields are skipped and
// asset references are followed when merging Lottie documents.
package structural
