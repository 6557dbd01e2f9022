package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chatpoker/internal/config"
	"chatpoker/pkg/playable/poker/action"
	"chatpoker/pkg/room"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var players = flag.String("players", "", "comma separated names to seat before the first prompt")

const helpText = `commands:
  join <name>            take the next free seat
  leave <seat>           leave the table
  start                  deal a new hand
  fold|check|call        act for the seat on turn
  raise <amount>         raise to amount
  cards                  show the hole cards of the seat on turn
  status                 show the table
  quit`

func main() {
	flag.Parse()
	_ = godotenv.Load()
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), config.Instance().TableOptions())
	defer pitBoss.Close()

	dealer, err := pitBoss.Dealer("console")
	if err != nil {
		logrus.WithError(err).Fatal("could not open the table")
	}

	c := newConsole(dealer, os.Stdout)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		c.interactive = true
		c.painter = painter(term.IsTerminal(int(os.Stdout.Fd())))
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			c.width = width
		}

		fmt.Fprintln(c.out, helpText)
	}

	if *players != "" {
		for _, name := range strings.Split(*players, ",") {
			c.handle(context.Background(), "join "+strings.TrimSpace(name))
		}
	}

	c.run(context.Background(), os.Stdin)
}

// console plays every seat at one table from a single terminal
type console struct {
	dealer      *room.Dealer
	out         io.Writer
	names       map[int64]string
	nextSeat    int64
	interactive bool
	painter     painter
	width       int
}

func newConsole(dealer *room.Dealer, out io.Writer) *console {
	return &console{
		dealer:   dealer,
		out:      out,
		names:    make(map[int64]string),
		nextSeat: 1,
		width:    40,
	}
}

func (c *console) run(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		if c.interactive {
			fmt.Fprint(c.out, c.prompt(ctx))
		}

		if !scanner.Scan() {
			return
		}

		if !c.handle(ctx, scanner.Text()) {
			return
		}
	}
}

func (c *console) prompt(ctx context.Context) string {
	status, err := c.dealer.Status(ctx)
	if err != nil || status.CurrentActor == "" {
		return "> "
	}

	return c.painter.paint(actorStyle, status.CurrentActor) + "> "
}

// handle runs a single command and returns false when the player quits
func (c *console) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var out *room.Outcome
	var err error

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(c.out, helpText)
		return true
	case "join":
		name := strings.Join(args, " ")
		if name == "" {
			name = fmt.Sprintf("seat %d", c.nextSeat)
		}

		id := c.nextSeat
		out, err = c.dealer.Join(ctx, id, name)
		if err == nil {
			c.names[id] = name
			c.nextSeat++
		}
	case "leave":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: leave <seat>")
			return true
		}

		id, perr := strconv.ParseInt(args[0], 10, 64)
		if perr != nil {
			fmt.Fprintln(c.out, "usage: leave <seat>")
			return true
		}

		out, err = c.dealer.Leave(ctx, id)
	case "start":
		out, err = c.dealer.StartHand(ctx)
	case "status":
		status, err := c.dealer.Status(ctx)
		if err != nil {
			c.printError(err)
			return true
		}

		fmt.Fprintln(c.out, status.String())
		return true
	case "cards":
		c.showCards(ctx)
		return true
	default:
		act, aerr := action.FromString(cmd)
		if aerr != nil {
			fmt.Fprintf(c.out, "unknown command: %s (try help)\n", cmd)
			return true
		}

		amount := 0
		if len(args) > 0 {
			if amount, err = strconv.Atoi(args[0]); err != nil {
				fmt.Fprintln(c.out, "the amount must be a number")
				return true
			}
		}

		out, err = c.actForCurrentSeat(ctx, act, amount)
	}

	if err != nil {
		c.printError(err)
		return true
	}

	c.printOutcome(out)
	return true
}

func (c *console) actForCurrentSeat(ctx context.Context, act action.Action, amount int) (*room.Outcome, error) {
	state, err := c.dealer.State(ctx)
	if err != nil {
		return nil, err
	}

	return c.dealer.Act(ctx, state.CurrentActor, act, amount)
}

func (c *console) showCards(ctx context.Context) {
	state, err := c.dealer.State(ctx)
	if err != nil {
		c.printError(err)
		return
	}

	if state.CurrentActor == 0 {
		fmt.Fprintln(c.out, "nobody is on turn")
		return
	}

	cards, err := c.dealer.HoleCards(ctx, state.CurrentActor)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "%s holds %s\n", c.names[state.CurrentActor], c.painter.cards(cards))
}

func (c *console) printError(err error) {
	fmt.Fprintln(c.out, c.painter.paint(errorStyle, "error: "+err.Error()))
}

func (c *console) printOutcome(out *room.Outcome) {
	for _, msg := range out.Logs {
		fmt.Fprintln(c.out, c.painter.renderLogMessage(msg, c.names))
	}

	for _, id := range out.Busted {
		fmt.Fprintf(c.out, "%s is out of chips\n", c.names[id])
		delete(c.names, id)
	}

	if len(out.Results) > 0 || out.Aborted {
		fmt.Fprintln(c.out, c.painter.separator(c.width))
	}

	if out.NextActor != 0 {
		fmt.Fprintf(c.out, "%s to act: %s\n", c.painter.paint(actorStyle, c.names[out.NextActor]), renderActions(out.Actions))
	}
}
