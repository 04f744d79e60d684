package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/World-hackr/Advance-stacked-encoding/internal/session"
)

// replayStrokes feeds a recorded pointer-event script to one waveform's
// editing surface. One event per line:
//
//	offset <value>
//	press <index> <value>
//	move <index> <value>
//	release
//	undo
//	reset
//
// Blank lines and lines starting with # are skipped. Indices off the canvas
// are ignored by the session, same as stray pointer motion.
func replayStrokes(sess *session.Session, id string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "offset":
			v, err := parseStrokeValue(fields, lineNo)
			if err != nil {
				return err
			}
			slot := sess.Slot(id)
			if slot == nil {
				return fmt.Errorf("line %d: no waveform %q", lineNo, id)
			}
			slot.Env.SetOffset(v)
		case "press", "move":
			idx, v, err := parseStrokePoint(fields, lineNo)
			if err != nil {
				return err
			}
			if fields[0] == "press" {
				sess.Press(id, idx, v)
			} else {
				sess.Move(id, idx, v)
			}
		case "release":
			sess.Release(id)
		case "undo":
			sess.Undo(id)
		case "reset":
			sess.ResetEnvelope(id)
		default:
			return fmt.Errorf("line %d: unknown stroke event %q", lineNo, fields[0])
		}
	}
	return scanner.Err()
}

func replayStrokeFile(sess *session.Session, id, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening stroke script: %w", err)
	}
	defer f.Close()
	if err := replayStrokes(sess, id, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func parseStrokeValue(fields []string, lineNo int) (float64, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("line %d: want %q", lineNo, fields[0]+" <value>")
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: bad value %q", lineNo, fields[1])
	}
	return v, nil
}

func parseStrokePoint(fields []string, lineNo int) (int, float64, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("line %d: want %q", lineNo, fields[0]+" <index> <value>")
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: bad index %q", lineNo, fields[1])
	}
	v, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: bad value %q", lineNo, fields[2])
	}
	return idx, v, nil
}
