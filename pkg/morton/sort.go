package morton

import "sort"

// byDistance implements sort.Interface so SortByDistance can use the
// reflection-free sort.Stable.
type byDistance struct {
	codes []Code
	keys  []Code
}

func (bd *byDistance) Len() int {
	return len(bd.codes)
}

func (bd *byDistance) Less(i, j int) bool {
	return bd.keys[i] < bd.keys[j]
}

func (bd *byDistance) Swap(i, j int) {
	bd.codes[i], bd.codes[j] = bd.codes[j], bd.codes[i]
	bd.keys[i], bd.keys[j] = bd.keys[j], bd.keys[i]
}

// SortByDistance orders codes in place by their Distance to ref, closest
// first. Codes at equal distance keep their relative order.
func SortByDistance(codes []Code, ref Code) {
	bd := byDistance{
		codes: codes,
		keys:  make([]Code, len(codes)),
	}
	for i, c := range codes {
		bd.keys[i] = Distance(c, ref)
	}
	sort.Stable(&bd)
}
