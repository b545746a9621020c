package seq

import (
	"fmt"
	"math"
)

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}

// intLen narrows a cached uint64 tree size to the facade's int length.
// A size beyond the int range (conceivable on 32-bit platforms) cannot be
// represented at this surface; it trips the assertion instead of wrapping.
func intLen(n uint64) int {
	assertThat(n <= uint64(math.MaxInt), "sequence length %d exceeds the int range", n)
	return int(n)
}
