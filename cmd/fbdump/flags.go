package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bloeys/gglm/gglm"
)

// parseInts parses a comma separated list of int32s. An empty string gives nil.
func parseInts(s string) ([]int32, error) {

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]int32, 0, len(parts))
	for _, p := range parts {

		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}

		out = append(out, int32(v))
	}

	return out, nil
}

// parseColor parses one to four comma separated floats. Missing components are zero.
func parseColor(s string) (gglm.Vec4, error) {

	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) > 4 {
		return gglm.Vec4{}, fmt.Errorf("colour '%s' has more than 4 components", s)
	}

	var c gglm.Vec4
	for i, p := range parts {

		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return gglm.Vec4{}, fmt.Errorf("invalid colour '%s': %w", s, err)
		}

		c.Data[i] = float32(v)
	}

	return c, nil
}
