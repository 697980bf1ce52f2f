// Package result defines the record the search engines emit to callers:
// the winning tree, its probability, a frontier-insertion diagnostic, and
// the search's wall-clock elapsed time.
package result
