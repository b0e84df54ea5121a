// Package partition splits the column index space of an output matrix into
// contiguous, disjoint half-open ranges, one per concurrent worker plus one
// for the calling goroutine.
//
// 🚀 What does it guarantee?
//
//	Split(cols, workers) returns exactly workers+1 ranges that
//	  • are in ascending order,
//	  • never overlap,
//	  • cover [0, cols) with no gaps,
//	  • differ in length by at most one column.
//
// ⚙️ Usage:
//
//	ranges, err := partition.Split(1000, 2)
//	// ranges = [0,334) [334,667) [667,1000)
//
// When cols < workers+1 the trailing ranges are empty (Start == End); they
// are still valid members of the partition.
//
// Verify re-checks the disjointness + coverage invariant on any slice of
// ranges and is used by package parallel before launching workers.
package partition
