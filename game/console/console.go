package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wricardo/battleship-game/game/config"
	"github.com/wricardo/battleship-game/game/coord"
	"github.com/wricardo/battleship-game/game/engine"
	"github.com/wricardo/battleship-game/game/render"
	"github.com/wricardo/battleship-game/game/session"
)

// ErrInputClosed is returned when input ends before the match is over
var ErrInputClosed = errors.New("input closed before the match finished")

// Options configures a console game
type Options struct {
	// Layouts holds preset fleets; players without one place ships by hand
	Layouts map[session.PlayerID]*config.Layout
}

// Game runs a hotseat match over a line-oriented reader and writer
type Game struct {
	in    io.Reader
	out   io.Writer
	match *session.Match
	opts  Options

	lines chan string
	errc  chan error
}

// New creates a console game for the given match
func New(in io.Reader, out io.Writer, m *session.Match, opts Options) *Game {
	return &Game{
		in:    in,
		out:   out,
		match: m,
		opts:  opts,
	}
}

// Run plays the match to the end: fleet placement for both players, then
// alternating turns until one fleet is sunk
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.startReader(ctx)

	for _, p := range session.Players {
		if err := g.placeFleet(ctx, p); err != nil {
			return err
		}
		if err := g.passMove(ctx); err != nil {
			return err
		}
	}

	for {
		won, err := g.playTurn(ctx)
		if err != nil {
			return err
		}
		if won {
			return nil
		}
		if err := g.passMove(ctx); err != nil {
			return err
		}
	}
}

func (g *Game) startReader(ctx context.Context) {
	g.lines = make(chan string)
	g.errc = make(chan error, 1)

	go func() {
		defer close(g.lines)
		scanner := bufio.NewScanner(g.in)
		for scanner.Scan() {
			select {
			case g.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			g.errc <- err
		}
	}()
}

func (g *Game) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-g.lines:
		if !ok {
			select {
			case err := <-g.errc:
				return "", fmt.Errorf("failed to read input: %w", err)
			default:
				return "", ErrInputClosed
			}
		}
		return strings.TrimSpace(line), nil
	}
}

func (g *Game) println(a ...any) {
	fmt.Fprintln(g.out, a...)
}

func (g *Game) printf(format string, a ...any) {
	fmt.Fprintf(g.out, format, a...)
}

func (g *Game) passMove(ctx context.Context) error {
	g.println("Press Enter and pass the move to another player")
	_, err := g.readLine(ctx)
	return err
}

func (g *Game) placeFleet(ctx context.Context, p session.PlayerID) error {
	g.printf("%s, place your ships on the game field\n\n", p)

	if layout, ok := g.opts.Layouts[p]; ok && layout != nil {
		if err := g.match.UseLayout(p, layout); err != nil {
			return err
		}
		g.printf("Fleet placed from layout %q\n\n", layout.Name)
		g.println(render.Grid(g.match.Board(p).VisibleGrid()))
		return nil
	}

	g.println(render.Grid(g.match.Board(p).VisibleGrid()))

	for {
		class, ok := g.match.NextShip(p)
		if !ok {
			return nil
		}
		g.printf("Enter the coordinates of the %s (%d cells):\n\n", class.Name, class.Size)

		for {
			line, err := g.readLine(ctx)
			if err != nil {
				return err
			}

			if err := g.placeShip(p, line); err != nil {
				log.Debug().Err(err).Str("player", p.String()).Str("input", line).Msg("placement rejected")
				g.printf("\n%s\n\n", placementMessage(err, class))
				continue
			}

			g.println()
			g.println(render.Grid(g.match.Board(p).VisibleGrid()))
			break
		}
	}
}

func (g *Game) placeShip(p session.PlayerID, line string) error {
	start, end, err := coord.DecodePair(line)
	if err != nil {
		return err
	}
	_, err = g.match.PlaceNext(p, start, end)
	return err
}

func placementMessage(err error, class engine.ShipClass) string {
	switch {
	case errors.Is(err, engine.ErrOutOfBounds):
		return "Error! The ship does not fit on the game field! Try again:"
	case errors.Is(err, engine.ErrDiagonalOrInvalidShape):
		return "Error! Wrong ship location! Try again:"
	case errors.Is(err, engine.ErrSizeMismatch):
		return fmt.Sprintf("Error! Wrong length of the %s! Try again:", class.Name)
	case errors.Is(err, engine.ErrAdjacentShip):
		return "Error! You placed it too close to another one. Try again:"
	default:
		return "Error! Incorrect input. Try again:"
	}
}

// playTurn lets the current player shoot once and reports whether the shot
// won the match
func (g *Game) playTurn(ctx context.Context) (bool, error) {
	p := g.match.Turn()
	own, opponent := g.match.View(p)

	g.println(render.Turn(opponent, own))
	g.printf("%s, it's your turn:\n\n", p)

	for {
		line, err := g.readLine(ctx)
		if err != nil {
			return false, err
		}

		result, err := g.fire(line)
		if err != nil {
			log.Debug().Err(err).Str("player", p.String()).Str("input", line).Msg("shot rejected")
			g.println("\nError! You entered the wrong coordinates! Try again:")
			g.println()
			continue
		}

		g.println()
		if result.Outcome == engine.ShotHit {
			g.println("You hit a ship!")
		} else {
			g.println("You missed!")
		}
		if result.Sunk != nil {
			g.println("You sank a ship!")
		}
		if result.Won {
			g.println("You sank the last ship. You won. Congratulations!")
		}
		return result.Won, nil
	}
}

func (g *Game) fire(line string) (*session.ShotResult, error) {
	target, err := coord.Decode(line)
	if err != nil {
		return nil, err
	}
	return g.match.Fire(target)
}
