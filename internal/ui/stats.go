package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/comicrev/internal/util"
)

type Stats struct {
	Issues atomic.Int64
	Failed atomic.Int64
	Bytes  atomic.Int64
	Start  time.Time
}

func NewStats() *Stats {
	return &Stats{Start: time.Now()}
}

func (s *Stats) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Summary:")
	_, _ = fmt.Fprintf(w, "Issues: %d\n", s.Issues.Load())
	_, _ = fmt.Fprintf(w, "Failed: %d\n", s.Failed.Load())
	if b := s.Bytes.Load(); b > 0 {
		_, _ = fmt.Fprintf(w, "Data:   %s\n", util.Human(b))
	}
	_, _ = fmt.Fprintf(w, "Time:   %s\n", time.Since(s.Start).Round(time.Second))
}
