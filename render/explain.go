package render

import (
	"fmt"
	"io"
)

const explanation = `LONGEST DEFENSIBLE SEGMENT

The challenge
  Each wall segment has a strength. A segment holds when its strength is
  at least the threat level K. Find the longest run of adjacent segments
  that all hold.

Approach: sliding window
  One left-to-right pass. The window opens at windowStart and grows while
  segments hold. A segment below K is a breach: the window closes there,
  its length i - windowStart is compared with the best so far, and the
  next window opens at i + 1. After the pass the trailing window, which
  never met a breach, gets the same comparison.

  Best is replaced only by a strictly longer window, so among runs of
  equal length the earliest one is reported.

Complexity
  Time   O(n)
  Space  O(1) beyond the input

Core loop
  best, bestStart, windowStart := 0, -1, 0
  for i, s := range strengths {
      if s < k {
          if i-windowStart > best {
              best, bestStart = i-windowStart, windowStart
          }
          windowStart = i + 1
      }
  }
  if len(strengths)-windowStart > best {
      best, bestStart = len(strengths)-windowStart, windowStart
  }
`

// Explain writes the explanation view.
func Explain(w io.Writer) error {
	_, err := fmt.Fprint(w, explanation)
	return err
}
