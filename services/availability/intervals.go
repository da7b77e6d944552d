package availability

import "sort"

// interval is a half-open [Start, End) span in minutes from midnight.
type interval struct {
	Start int
	End   int
}

func (iv interval) empty() bool {
	return iv.End <= iv.Start
}

// union sorts the intervals and merges every overlapping or touching pair,
// returning the minimal set of disjoint intervals covering the same minutes.
func union(ivs []interval) []interval {
	var in []interval
	for _, iv := range ivs {
		if !iv.empty() {
			in = append(in, iv)
		}
	}
	if len(in) == 0 {
		return nil
	}
	sort.Slice(in, func(i, j int) bool {
		if in[i].Start == in[j].Start {
			return in[i].End < in[j].End
		}
		return in[i].Start < in[j].Start
	})

	merged := []interval{in[0]}
	for _, iv := range in[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// subtract removes cut from each interval, splitting where the cut lands in
// the middle. Input intervals must be disjoint; output stays disjoint and
// ordered.
func subtract(ivs []interval, cut interval) []interval {
	if cut.empty() {
		return ivs
	}
	var out []interval
	for _, iv := range ivs {
		if cut.End <= iv.Start || cut.Start >= iv.End {
			out = append(out, iv)
			continue
		}
		if cut.Start > iv.Start {
			out = append(out, interval{Start: iv.Start, End: cut.Start})
		}
		if cut.End < iv.End {
			out = append(out, interval{Start: cut.End, End: iv.End})
		}
	}
	return out
}

// subtractAll applies every cut in turn.
func subtractAll(ivs []interval, cuts []interval) []interval {
	out := ivs
	for _, cut := range cuts {
		out = subtract(out, cut)
	}
	return out
}

// covered reports whether candidate is fully contained in one of the disjoint
// intervals. Partial overlap does not count.
func covered(ivs []interval, candidate interval) bool {
	if candidate.empty() {
		return false
	}
	for _, iv := range ivs {
		if candidate.Start >= iv.Start && candidate.End <= iv.End {
			return true
		}
	}
	return false
}
