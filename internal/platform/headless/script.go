// Package headless runs games without a terminal: a scripted input
// sequence is replayed tick by tick and the final state reported.
package headless

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// ErrBadScript is returned for malformed input scripts.
var ErrBadScript = errors.New("headless: malformed script")

// Segment holds a set of actions for a number of consecutive ticks.
type Segment struct {
	Ticks   int
	Actions []core.Action
}

// Script is a sequence of input segments.
type Script []Segment

// ParseScript reads one segment per line:
//
//	<ticks> <Action>[+<Action>...]
//
// The action list may be "-" for an idle segment. Blank lines and lines
// starting with # are skipped.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w: line %d: want \"<ticks> <actions>\"", ErrBadScript, lineNo)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: line %d: bad tick count %q", ErrBadScript, lineNo, fields[0])
		}

		seg := Segment{Ticks: n}
		if len(fields) == 2 && fields[1] != "-" {
			for _, name := range strings.Split(fields[1], "+") {
				a, ok := core.ParseAction(name)
				if !ok {
					return nil, fmt.Errorf("%w: line %d: unknown action %q", ErrBadScript, lineNo, name)
				}
				seg.Actions = append(seg.Actions, a)
			}
		}
		s = append(s, seg)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("headless: reading script: %w", err)
	}
	return s, nil
}

// Len returns the total number of ticks the script covers.
func (s Script) Len() int {
	n := 0
	for _, seg := range s {
		n += seg.Ticks
	}
	return n
}

// Frames expands the script into one input frame per tick.
func (s Script) Frames() []core.InputFrame {
	frames := make([]core.InputFrame, 0, s.Len())
	for _, seg := range s {
		for i := 0; i < seg.Ticks; i++ {
			frames = append(frames, core.FrameOf(seg.Actions...))
		}
	}
	return frames
}
