// internal/defs/waves.go
package defs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedWave is wrapped by every wave parsing error.
var ErrMalformedWave = errors.New("malformed wave instruction")

// LoadWaves reads a wave file. Lines are kept in file order.
func LoadWaves(path string) ([]WaveInstruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wave file: %w", err)
	}
	defer f.Close()

	waves, err := ParseWaves(f)
	if err != nil {
		return nil, fmt.Errorf("wave file %s: %w", path, err)
	}
	return waves, nil
}

// ParseWaves reads one instruction per line:
//
//	waveNumber,delay,delayTicks
//	waveNumber,spawn,count,unitType,delayTicksBetweenSpawns
//
// Blank lines and lines starting with '#' are ignored.
func ParseWaves(r io.Reader) ([]WaveInstruction, error) {
	var waves []WaveInstruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := ParseWaveLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		waves = append(waves, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read waves: %w", err)
	}
	if len(waves) == 0 {
		return nil, fmt.Errorf("%w: no instructions", ErrMalformedWave)
	}
	return waves, nil
}

// ParseWaveLine parses a single comma separated instruction.
func ParseWaveLine(line string) (WaveInstruction, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(fields[i]), `"`)
	}
	if len(fields) < 3 {
		return WaveInstruction{}, fmt.Errorf("%w: %q", ErrMalformedWave, line)
	}

	number, err := parseNonNegative(fields[0], "wave number")
	if err != nil {
		return WaveInstruction{}, err
	}

	switch WaveAction(fields[1]) {
	case ActionDelay:
		if len(fields) != 3 {
			return WaveInstruction{}, fmt.Errorf("%w: delay takes 3 fields, got %d", ErrMalformedWave, len(fields))
		}
		delay, err := parseNonNegative(fields[2], "delay")
		if err != nil {
			return WaveInstruction{}, err
		}
		return WaveInstruction{WaveNumber: number, Action: ActionDelay, Delay: delay}, nil

	case ActionSpawn:
		if len(fields) != 5 {
			return WaveInstruction{}, fmt.Errorf("%w: spawn takes 5 fields, got %d", ErrMalformedWave, len(fields))
		}
		count, err := parseNonNegative(fields[2], "spawn count")
		if err != nil {
			return WaveInstruction{}, err
		}
		if fields[3] == "" {
			return WaveInstruction{}, fmt.Errorf("%w: empty unit type", ErrMalformedWave)
		}
		delay, err := parseNonNegative(fields[4], "spawn delay")
		if err != nil {
			return WaveInstruction{}, err
		}
		return WaveInstruction{
			WaveNumber: number,
			Action:     ActionSpawn,
			Count:      count,
			EnemyKind:  EnemyKind(fields[3]),
			Delay:      delay,
		}, nil

	default:
		return WaveInstruction{}, fmt.Errorf("%w: unknown action %q", ErrMalformedWave, fields[1])
	}
}

func parseNonNegative(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", ErrMalformedWave, what, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %s %d", ErrMalformedWave, what, n)
	}
	return n, nil
}
