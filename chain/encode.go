package chain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keychain/cost"
	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/paths"
)

// Encode returns one operator press string of minimal length that types
// code through depth directional keypads. Its length equals
// MinimumPresses(code, depth). Depths above the configured maximum return
// ErrEncodeTooDeep.
func (s *Solver) Encode(code string, depth int) (string, error) {
	if depth < 1 {
		return "", fmt.Errorf("%w: chain depth %d", cost.ErrInvalidLevel, depth)
	}
	if depth > s.maxEncode {
		return "", fmt.Errorf("%w: %d > %d", ErrEncodeTooDeep, depth, s.maxEncode)
	}

	var b strings.Builder
	prev := keypad.Activate
	for _, next := range code {
		seq, _, err := s.cheapest(prev, next, depth)
		if err != nil {
			return "", fmt.Errorf("chain: code %q: %w", code, err)
		}
		sub, err := s.expand(seq, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(sub)
		prev = next
	}
	return b.String(), nil
}

// expand rewrites seq, typed on the first of depth keypads, into the
// operator presses that produce it.
func (s *Solver) expand(seq paths.Sequence, depth int) (string, error) {
	if depth == 1 {
		return string(seq), nil
	}
	var b strings.Builder
	prev := keypad.Activate
	for _, next := range seq {
		best, _, err := s.resolver.Best(prev, next, depth-2)
		if err != nil {
			return "", err
		}
		sub, err := s.expand(best, depth-1)
		if err != nil {
			return "", err
		}
		b.WriteString(sub)
		prev = next
	}
	return b.String(), nil
}

// Simulate plays operator presses down a chain of depth directional
// keypads and returns what the last robot types on the target keypad.
// Every arm starts on 'A'; any arm leaving its keypad or hovering over a
// gap fails with paths.ErrOffGrid or paths.ErrGapStep.
func (s *Solver) Simulate(presses string, depth int) (string, error) {
	if depth < 1 {
		return "", fmt.Errorf("%w: chain depth %d", cost.ErrInvalidLevel, depth)
	}
	ctrl := s.resolver.Keypad()
	for level := depth; level > 1; level-- {
		_, pressed, err := paths.Replay(ctrl, keypad.Activate, presses)
		if err != nil {
			return "", fmt.Errorf("chain: keypad %d: %w", level-1, err)
		}
		presses = string(pressed)
	}
	_, typed, err := paths.Replay(s.target, keypad.Activate, presses)
	if err != nil {
		return "", fmt.Errorf("chain: %s keypad: %w", s.target.Name(), err)
	}
	return string(typed), nil
}
