// Package deckfile reads and writes the two-deck Combat input format:
//
//	Player 1:
//	9
//	2
//
//	Player 2:
//	5
//	8
package deckfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signalnine/crabcombat/engine"
)

var (
	ErrMalformedCard = errors.New("card must be a positive integer")
	ErrMissingLabel  = errors.New("expected a player label ending in ':'")
	ErrMissingDeck   = errors.New("input ended before both decks were read")
	ErrTrailingInput = errors.New("unexpected input after the second deck")
)

// ParseError identifies the input line that could not be parsed.
type ParseError struct {
	Line int // 1-based; the line after the last one when input ended early
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

type parser struct {
	scanner *bufio.Scanner
	line    int
	text    string
	done    bool
}

func (p *parser) next() bool {
	if p.done {
		return false
	}
	if !p.scanner.Scan() {
		p.done = true
		p.line++
		p.text = ""
		return false
	}
	p.line++
	p.text = strings.TrimSpace(p.scanner.Text())
	return true
}

func (p *parser) fail(err error) error {
	return &ParseError{Line: p.line, Text: p.text, Err: err}
}

// readDeck reads a label line and the card lines below it, stopping at a
// blank line or end of input.
func (p *parser) readDeck() (*engine.Deck, error) {
	if !p.next() {
		return nil, p.fail(ErrMissingDeck)
	}
	if p.text == "" || !strings.HasSuffix(p.text, ":") {
		return nil, p.fail(ErrMissingLabel)
	}

	deck := engine.NewDeck()
	for p.next() && p.text != "" {
		n, err := strconv.Atoi(p.text)
		if err != nil || n <= 0 {
			return nil, p.fail(ErrMalformedCard)
		}
		deck.Push(engine.Card(n))
	}
	return deck, nil
}

// Parse reads both decks from r.
func Parse(r io.Reader) (engine.Decks, error) {
	p := &parser{scanner: bufio.NewScanner(r)}

	var decks engine.Decks
	for _, player := range engine.Players {
		deck, err := p.readDeck()
		if err != nil {
			return engine.Decks{}, err
		}
		decks[player] = deck
	}

	// Only blank lines may follow the second deck.
	for p.next() {
		if p.text != "" {
			return engine.Decks{}, p.fail(ErrTrailingInput)
		}
	}
	if err := p.scanner.Err(); err != nil {
		return engine.Decks{}, fmt.Errorf("read decks: %w", err)
	}
	return decks, nil
}

// ParseString parses decks from an in-memory string.
func ParseString(s string) (engine.Decks, error) {
	return Parse(strings.NewReader(s))
}
