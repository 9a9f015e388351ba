// Package selection narrows an ordered listing by 1-based position.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Filter applies rng ("5-12") or, when rng is empty, list ("1,3,5").
// With neither set the whole listing is returned.
func Filter[T any](all []T, rng, list string) ([]T, error) {
	if rng != "" {
		out := Range(all, rng)
		if out == nil {
			return nil, fmt.Errorf("invalid range %q for %d entries", rng, len(all))
		}
		return out, nil
	}
	if list != "" {
		out := List(all, list)
		if len(out) == 0 {
			return nil, fmt.Errorf("list %q selects nothing from %d entries", list, len(all))
		}
		return out, nil
	}
	return all, nil
}

func Range[T any](all []T, rng string) []T {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}
	start, err1 := atoi(parts[0])
	end, err2 := atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > len(all) {
		return nil
	}
	return all[start-1 : end]
}

func List[T any](all []T, list string) []T {
	out := []T{}
	for n := range strings.SplitSeq(list, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		idx, err := atoi(n)
		if err != nil {
			continue
		}
		if idx > 0 && idx <= len(all) {
			out = append(out, all[idx-1])
		}
	}
	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
