package input

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	lineRe = regexp.MustCompile(`^Valve\s+(\w+)\s+has\s+flow\s+rate=(\d+);\s+tunnels?\s+leads?\s+to\s+valves?\s*(.*)$`)
	nameRe = regexp.MustCompile(`^\w+$`)
)

// ParseText reads the line-oriented valve format.
//
// Errors:
//   - ErrSyntax (with line number) for a line that does not match, a rate
//     beyond uint32, or a malformed tunnel list.
//   - core.ErrDuplicateValve, core.ErrUnknownValve for bad references.
//   - any read error from r.
func ParseText(r io.Reader) (*Network, error) {
	var decls []declaration
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		d, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("input: line %d: %w", lineNo, err)
		}
		d.line = lineNo
		decls = append(decls, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return assemble(decls)
}

func parseLine(line string) (declaration, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return declaration{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	rate, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return declaration{}, fmt.Errorf("%w: rate %q", ErrSyntax, m[2])
	}

	d := declaration{name: m[1], rate: uint32(rate)}
	if list := strings.TrimSpace(m[3]); list != "" {
		for _, t := range strings.Split(list, ",") {
			t = strings.TrimSpace(t)
			if !nameRe.MatchString(t) {
				return declaration{}, fmt.Errorf("%w: tunnel %q", ErrSyntax, t)
			}
			d.tunnels = append(d.tunnels, t)
		}
	}

	return d, nil
}
