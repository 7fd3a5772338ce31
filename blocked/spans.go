// SPDX-License-Identifier: MIT

package blocked

// Span is the half-open index range [Start, End).
type Span struct {
	Start, End int
}

// Len returns End - Start.
func (s Span) Len() int { return s.End - s.Start }

// Spans partitions [0, n) into consecutive spans of length size; the last span
// is clipped to n. The spans are ordered, non-empty and disjoint, and their union
// is exactly [0, n). A size >= n yields the single span [0, n).
// Non-positive n or size yields nil.
//
// Complexity: O(n/size).
func Spans(n, size int) []Span {
	if n <= 0 || size <= 0 {
		return nil
	}
	if size >= n {
		return []Span{{Start: 0, End: n}}
	}
	count := n / size
	if n%size != 0 {
		count++
	}
	out := make([]Span, 0, count)
	var end int
	for start := 0; start < n; start = end {
		end = n
		if n-start > size {
			end = start + size
		}
		out = append(out, Span{Start: start, End: end})
	}

	return out
}
