package api

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

// Terminal is the line based console the human plays on. It reads
// targets for the human player, reports rejected shots and renders the
// game as the engine reports it.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
}

var (
	_ mb.CoordinateReader  = (*Terminal)(nil)
	_ mb.ShotErrorReporter = (*Terminal)(nil)
	_ mb.Observer          = (*Terminal)(nil)
)

// Lines longer than this are consumed and rejected as a whole
const maxLineLength int = 1024

type Option func(*Terminal) error

func NewTerminal(optFuncs ...Option) (*Terminal, error) {
	printer, err := newPrinter(DefaultLocale)
	if err != nil {
		return nil, err
	}

	terminal := Terminal{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		printer: printer,
	}
	for _, opt := range optFuncs {
		if err := opt(&terminal); err != nil {
			return nil, err
		}
	}
	return &terminal, nil
}

func WithInput(r io.Reader) Option {
	return func(t *Terminal) error {
		t.in = bufio.NewReader(r)
		return nil
	}
}

func WithOutput(w io.Writer) Option {
	return func(t *Terminal) error {
		t.out = w
		return nil
	}
}

func WithLocale(locale string) Option {
	return func(t *Terminal) error {
		printer, err := newPrinter(locale)
		if err != nil {
			return err
		}
		t.printer = printer
		return nil
	}
}

func (t *Terminal) say(key string, args ...any) {
	fmt.Fprintln(t.out, t.printer.Sprintf(key, args...))
}

func (t *Terminal) Greet() {
	t.say(keyGreeting)
}

// ReadCoordinates prompts until the line holds exactly two numbers and
// converts them from 1-indexed to a 0-indexed dot. Whether the dot is
// on the board is left to the board.
func (t *Terminal) ReadCoordinates() (mb.Dot, error) {
	for {
		fmt.Fprint(t.out, t.printer.Sprintf(keyPrompt))

		line, overlong, err := t.readLine()
		if err != nil {
			fmt.Fprintln(t.out)
			return mb.Dot{}, cerr.ErrInputClosed(err)
		}
		if overlong {
			t.say(keyWrongTokenCount)
			continue
		}

		dot, err := parseCoordinates(line)
		if err == nil {
			return dot, nil
		}

		var tokenErr wrongTokenCountErr
		if errors.As(err, &tokenErr) {
			t.say(keyWrongTokenCount)
		} else {
			t.say(keyNonNumeric)
		}
	}
}

// readLine returns the next line without its terminator. A line longer
// than maxLineLength is drained up to its newline and reported as
// overlong so the next read starts on a fresh line.
func (t *Terminal) readLine() (string, bool, error) {
	var line []byte
	seen, overlong := false, false

	for {
		chunk, err := t.in.ReadSlice('\n')
		if len(chunk) > 0 {
			seen = true
		}
		if !overlong {
			if len(line)+len(chunk) > maxLineLength {
				overlong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && seen:
		default:
			return "", false, err
		}
		return strings.TrimRight(string(line), "\r\n"), overlong, nil
	}
}

type wrongTokenCountErr struct {
	error
}

func parseCoordinates(line string) (mb.Dot, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return mb.Dot{}, wrongTokenCountErr{cerr.ErrWrongTokenCount(len(tokens))}
	}

	coords := [2]int{}
	for i, token := range tokens {
		if !isDigits(token) {
			return mb.Dot{}, cerr.ErrNonNumericCoordinate(token)
		}
		n, err := strconv.Atoi(token)
		if errors.Is(err, strconv.ErrRange) {
			// too large for an int, the board rejects it as outside
			n = math.MaxInt
		} else if err != nil {
			return mb.Dot{}, cerr.ErrNonNumericCoordinate(token)
		}
		coords[i] = n
	}

	return mb.NewDot(coords[0]-1, coords[1]-1), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (t *Terminal) ReportShotError(err error) {
	switch {
	case mb.IsBoardErr(err, mb.BoardErrOutOfBounds):
		t.say(keyShotOutOfBounds)
	case mb.IsBoardErr(err, mb.BoardErrAlreadyTargeted):
		t.say(keyShotAlreadyTarget)
	default:
		fmt.Fprintln(t.out, err)
	}
}

func (t *Terminal) showBoards(g *mb.Game) {
	fmt.Fprint(t.out, RenderBoards(
		t.printer.Sprintf(keyUserBoard),
		t.printer.Sprintf(keyAIBoard),
		g.UserBoard(),
		g.AIBoard(),
	))
}

func (t *Terminal) TurnStarted(g *mb.Game, side mb.Side) {
	t.showBoards(g)
	if side == mb.SideUser {
		t.say(keyUserMove)
	} else {
		t.say(keyAIMove)
	}
}

func (t *Terminal) ShotFired(side mb.Side, shot mb.Shot) {
	if side == mb.SideAI {
		t.say(keyAICoordinates, shot.Target.X+1, shot.Target.Y+1)
	}

	switch shot.Outcome {
	case mb.ShotHit:
		t.say(keyShotHit)
	case mb.ShotDestroyed:
		t.say(keyShotDestroyed)
	default:
		t.say(keyShotMiss)
	}
}

func (t *Terminal) GameOver(g *mb.Game) {
	if g.State() == mb.UserWon {
		t.say(keyUserWon)
	} else {
		t.say(keyAIWon)
	}
	t.showBoards(g)
}
