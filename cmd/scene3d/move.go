package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/scene3d/internal/shape"
)

// parseMove parses "idx:dx,dy,dz".
func parseMove(s string) (int, shape.Vec3, error) {
	idxStr, rest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, shape.Vec3{}, fmt.Errorf("bad move %q: want idx:dx,dy,dz", s)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil {
		return 0, shape.Vec3{}, fmt.Errorf("bad move index %q: %w", idxStr, err)
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 3 {
		return 0, shape.Vec3{}, fmt.Errorf("bad move %q: want three components", s)
	}
	var d shape.Vec3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, shape.Vec3{}, fmt.Errorf("bad move component %q: %w", p, err)
		}
		d[i] = v
	}
	return idx, d, nil
}
