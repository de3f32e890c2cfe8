// Package generator validates raw password options and assembles a
// constrained random password from them.
package generator

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars    = "!#$%&()*+,-./:;<=>?@[]^_{|}~"
)

var (
	ErrLengthMissing     = errors.New("length missing")
	ErrLengthNotInteger  = errors.New("length not an integer")
	ErrOptionNotBoolean  = errors.New("options values must be boolean")
	ErrUnsupportedOption = errors.New("only numbers, uppercase, symbols options allowed")
	ErrLengthTooSmall    = errors.New("length too small for requested options")
)

// RawOptions is the untyped string-to-string input received from the
// boundary. Only "length", "numbers", "uppercase" and "symbols" carry
// meaning; anything else is validated but never used.
type RawOptions map[string]string

// classAlphabets maps each optional class name to its alphabet. The
// lowercase class is implicit and never a user-supplied key.
var classAlphabets = map[string]string{
	"numbers":   numberChars,
	"uppercase": uppercaseChars,
	"symbols":   symbolChars,
}

// classOrder fixes the draw order of the optional classes so the
// mandatory draws are deterministic; the final shuffle erases it.
var classOrder = []string{"numbers", "uppercase", "symbols"}

type request struct {
	length    int
	alphabets []string // lowercase first, then requested classes
}

// Generate validates opts through an ordered chain of checks and, on
// success, returns a random password of the requested length holding at
// least one character from each requested class. The first failing
// check short-circuits with its sentinel error; later checks are never
// reached.
func Generate(opts RawOptions) (string, error) {
	req, err := parse(opts)
	if err != nil {
		return "", err
	}
	return assemble(req), nil
}

func parse(opts RawOptions) (request, error) {
	raw, ok := opts["length"]
	if !ok {
		return request{}, ErrLengthMissing
	}

	digits := strings.TrimSpace(raw)
	if !allDigits(digits) {
		return request{}, ErrLengthNotInteger
	}
	length, err := strconv.Atoi(digits)
	if err != nil {
		// All-digit input can still overflow int.
		return request{}, ErrLengthNotInteger
	}

	for key, value := range opts {
		if key == "length" {
			continue
		}
		if v := strings.TrimSpace(value); v != "true" && v != "false" {
			return request{}, ErrOptionNotBoolean
		}
	}

	requested := make(map[string]bool)
	for key, value := range opts {
		if key == "length" || strings.TrimSpace(value) != "true" {
			continue
		}
		if _, known := classAlphabets[key]; !known {
			return request{}, ErrUnsupportedOption
		}
		requested[key] = true
	}

	alphabets := []string{lowercaseChars}
	for _, name := range classOrder {
		if requested[name] {
			alphabets = append(alphabets, classAlphabets[name])
		}
	}

	if length < len(alphabets) {
		return request{}, ErrLengthTooSmall
	}

	return request{length: length, alphabets: alphabets}, nil
}

func assemble(req request) string {
	result := make([]byte, 0, req.length)

	// Guarantee at least one character from each included class.
	for _, alphabet := range req.alphabets {
		result = append(result, randChar(alphabet))
	}

	// Fill the remaining positions: pick a class uniformly, then a
	// character uniformly from that class's alphabet.
	for i := len(req.alphabets); i < req.length; i++ {
		result = append(result, randChar(req.alphabets[rand.IntN(len(req.alphabets))]))
	}

	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	return string(result)
}

// randChar picks a uniformly random character from the alphabet.
func randChar(alphabet string) byte {
	return alphabet[rand.IntN(len(alphabet))]
}

// allDigits reports whether s is one or more decimal digits. A sign or
// decimal point disqualifies the whole value.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
