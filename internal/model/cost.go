package model

import (
	"math"
	"strconv"
)

// Cost is the non-negative distance between an original text and its
// formatted counterpart.
type Cost uint64

// RejectCost marks a file the formatter could not handle. Any sum that
// includes it saturates to it.
const RejectCost Cost = math.MaxUint64

// IsReject reports whether c is the reject sentinel.
func (c Cost) IsReject() bool {
	return c == RejectCost
}

// Add returns c+o, saturating at RejectCost.
func (c Cost) Add(o Cost) Cost {
	if c == RejectCost || o == RejectCost {
		return RejectCost
	}

	if c > RejectCost-o {
		return RejectCost
	}

	return c + o
}

func (c Cost) String() string {
	if c == RejectCost {
		return "rejected"
	}

	return strconv.FormatUint(uint64(c), 10)
}

// Aggregate sums per-file costs, saturating at RejectCost.
func Aggregate(costs []Cost) Cost {
	total := Cost(0)
	for _, c := range costs {
		total = total.Add(c)
		if total == RejectCost {
			return RejectCost
		}
	}

	return total
}

// Score is the aggregate result of formatting a whole corpus with one
// configuration.
//
// Total is the saturated aggregate. Ordering does not use Total directly: a
// score with fewer rejected files is better, and among equal reject counts the
// lower sum over accepted files wins. Without rejections this is the order of
// Total. A file rejected under every configuration therefore adds the same
// penalty everywhere and the remaining files still decide.
type Score struct {
	Total    Cost
	Accepted Cost
	Rejected int
	Files    []Cost
	Unknown  bool
}

// NewScore builds a Score from per-file costs given in corpus order.
func NewScore(files []Cost) Score {
	s := Score{Files: append([]Cost(nil), files...)}

	for _, c := range files {
		if c.IsReject() {
			s.Rejected++
			continue
		}

		s.Accepted = s.Accepted.Add(c)
	}

	s.Total = Aggregate(files)

	return s
}

// UnknownScore is the score of a configuration that was never evaluated.
// It compares worse than every evaluated score.
func UnknownScore() Score {
	return Score{Total: RejectCost, Accepted: RejectCost, Unknown: true}
}

// Compare returns -1 if s is better than o, 1 if worse and 0 if equivalent.
func (s Score) Compare(o Score) int {
	switch {
	case s.Unknown && o.Unknown:
		return 0
	case s.Unknown:
		return 1
	case o.Unknown:
		return -1
	}

	switch {
	case s.Rejected < o.Rejected:
		return -1
	case s.Rejected > o.Rejected:
		return 1
	case s.Accepted < o.Accepted:
		return -1
	case s.Accepted > o.Accepted:
		return 1
	}

	return 0
}

// Better reports whether s is strictly better than o.
func (s Score) Better(o Score) bool {
	return s.Compare(o) < 0
}

func (s Score) String() string {
	if s.Unknown {
		return "unknown"
	}

	if s.Rejected > 0 {
		return s.Total.String() + " (" + strconv.Itoa(s.Rejected) + " rejected, " + s.Accepted.String() + " accepted)"
	}

	return s.Total.String()
}
