package gx

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

func split(s string) []string {
	x := strings.Split(s, ",")
	for i, str := range x {
		x[i] = strings.TrimSpace(str)
	}
	return x
}

// setting returns the value of a recognized slicer comment. The value is
// everything after the first '=', trimmed.
func setting(line string, keys ...string) (key, value string, ok bool) {
	if len(line) < 2 || line[0] != ';' {
		return "", "", false
	}
	for _, k := range keys {
		if strings.HasPrefix(line, k) {
			return k, strings.TrimSpace(line[len(k):]), true
		}
	}
	return "", "", false
}

// convertEstimatedTime converts "1d 2h 8m 58s" to seconds.
func convertEstimatedTime(s string) (int, error) {
	units := map[byte]int{'d': 86400, 'h': 3600, 'm': 60, 's': 1}
	total := 0
	for _, part := range strings.Fields(s) {
		mul, ok := units[part[len(part)-1]]
		if !ok {
			return 0, ErrValueSyntax
		}
		n, err := parseInt(part[:len(part)-1])
		if err != nil {
			return 0, err
		}
		total += n * mul
		if total > math.MaxInt32 || total < math.MinInt32 {
			return 0, ErrIntegerRange
		}
	}
	return total, nil
}

func parseInt(s string) (int, error) {
	v, err := ParseInt([]byte(s))
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, ErrIntegerRange
	}
	return int(v), nil
}

// parseFloat parses s, scales it and truncates the result toward zero.
func parseFloat(s string, scale float64) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrIntegerRange
		}
		return 0, ErrValueSyntax
	}
	f *= scale
	if math.IsNaN(f) || f >= math.MaxInt32+1 || f <= math.MinInt32-1 {
		return 0, ErrIntegerRange
	}
	return int(f), nil
}

// ParseInt parses a base 10 integer with an optional leading sign.
func ParseInt(b []byte) (int64, error) {
	if v, ok, overflow := _parseInt(b); !ok {
		if overflow {
			return 0, ErrIntegerRange
		}
		return 0, ErrValueSyntax
	} else {
		return v, nil
	}
}

// About 2x faster then strconv.ParseInt because it only supports base 10
func _parseInt(bytes []byte) (v int64, ok bool, overflow bool) {
	if len(bytes) == 0 {
		return 0, false, false
	}

	var neg bool = false
	if bytes[0] == '-' || bytes[0] == '+' {
		neg = bytes[0] == '-'
		bytes = bytes[1:]
		if len(bytes) == 0 {
			return 0, false, false
		}
	}

	var n uint64 = 0
	for _, c := range bytes {
		if c < '0' || c > '9' {
			return 0, false, false
		}
		if n > maxUint64/10 {
			return 0, false, true
		}
		n *= 10
		n1 := n + uint64(c-'0')
		if n1 < n {
			return 0, false, true
		}
		n = n1
	}

	if n > maxInt64 {
		if neg && n == absMinInt64 {
			return -absMinInt64, true, false
		}
		return 0, false, true
	}

	if neg {
		return -int64(n), true, false
	} else {
		return int64(n), true, false
	}
}
