// Package sortable provides wrapper types for primitive types that carry
// their own ordering through a LessThan method.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/seqkit/compare.Comparable]
// with LessThan. Ready-made implementations exist for [Int], [Float], [Byte],
// [String] and [HumanString].
//
// Sortable values plug into the rest of seqkit in two ways:
//
//   - [Compare] turns any Sortable type into a three-way comparator for the
//     Func variants (multiset.UnionFunc, search.BinarySearchFunc, ...).
//   - [github.com/amp-labs/seqkit/compare.Natural] recognizes LessThan, so
//     helpers that fall back to natural ordering order Sortable values
//     correctly without a comparator.
//
// # Usage
//
//	versions := []sortable.HumanString{"v10", "v2", "v1"}
//	merged, _ := multiset.UnionFunc(sortable.Compare[sortable.HumanString], versions, []sortable.HumanString{"v3"})
//	// merged: v1, v2, v3, v10
//
// # Creating Custom Sortable Types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
package sortable
