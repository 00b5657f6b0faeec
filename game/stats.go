package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/shape"
)

// Stats counts what happened during a session. It is informational; the score
// does not depend on it.
type Stats struct {
	// Lines is the total number of cleared rows.
	Lines int
	// Locked is the number of pieces committed to the board.
	Locked int

	dealt  *intmap.Map[shape.Kind, int]
	clears *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		dealt:  intmap.New[shape.Kind, int](shape.Count),
		clears: intmap.New[int, int](4),
	}
}

func (st *Stats) recordDeal(k shape.Kind) {
	n, _ := st.dealt.Get(k)
	st.dealt.Put(k, n+1)
}

func (st *Stats) recordLock(lines int) {
	st.Locked++
	if lines == 0 {
		return
	}
	st.Lines += lines
	n, _ := st.clears.Get(lines)
	st.clears.Put(lines, n+1)
}

// Dealt returns how many pieces of kind k have left the queue.
func (st *Stats) Dealt(k shape.Kind) int {
	n, _ := st.dealt.Get(k)
	return n
}

// TotalDealt returns how many pieces have left the queue.
func (st *Stats) TotalDealt() int {
	total := 0
	st.dealt.ForEach(func(_ shape.Kind, n int) bool {
		total += n
		return true
	})
	return total
}

// Clears returns how many locks cleared exactly rows rows at once.
func (st *Stats) Clears(rows int) int {
	n, _ := st.clears.Get(rows)
	return n
}
