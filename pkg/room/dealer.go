package room

import (
	"context"
	"errors"
	"sync"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable"
	"chatpoker/pkg/playable/poker/action"
	"chatpoker/pkg/playable/poker/texasholdem"

	"github.com/sirupsen/logrus"
)

// ErrDealerClosed is returned when a command reaches a dealer whose shift ended
var ErrDealerClosed = errors.New("the table has closed")

// ErrNotSeated is returned when a spectator tries to play
var ErrNotSeated = errors.New("you do not have a seat at this table")

// maxAutoSteps bounds how many moves the dealer makes on behalf of seats after a command
const maxAutoSteps = 256

// Outcome is what happened at the table because of a command
type Outcome struct {
	Results   []*texasholdem.Result       `json:"results,omitempty"`
	Busted    []int64                     `json:"busted,omitempty"`
	Aborted   bool                        `json:"aborted,omitempty"`
	NextActor int64                       `json:"nextActor,omitempty"`
	Actions   []*texasholdem.ActionOption `json:"actions,omitempty"`
	Status    *texasholdem.Status         `json:"status"`
	Logs      []*playable.LogMessage      `json:"logs"`
}

// Dealer runs a single table
// Every command is executed on the dealer's run loop, one at a time.
type Dealer struct {
	pitBoss *PitBoss
	tableID string
	table   *texasholdem.Table
	logger  logrus.FieldLogger

	clients map[*Client]bool
	lock    sync.RWMutex

	// used is set once a seat or client has joined
	// until then the table stays open even though it is empty
	used bool

	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, table *texasholdem.Table) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		tableID:       table.ID(),
		table:         table,
		logger:        pitBoss.logger.WithField("table", table.ID()),
		clients:       make(map[*Client]bool),
		logMessages:   make([]*playable.LogMessage, 0),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// TableID returns the ID of the table the dealer runs
func (d *Dealer) TableID() string {
	return d.tableID
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn on the run loop and waits for it to finish
// If ctx is done first, fn may still run.
func (d *Dealer) exec(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	wrapped := func() {
		done <- fn()
		d.releaseIfIdle()
	}

	select {
	case d.execInRunLoop <- wrapped:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-d.close:
		select {
		case err := <-done:
			return err
		default:
			return ErrDealerClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// releaseIfIdle lets the table go once it has been used and nobody is seated or watching
// NOTE: must only be called from the run loop
func (d *Dealer) releaseIfIdle() {
	if d.table.SeatCount() > 0 {
		return
	}

	d.lock.RLock()
	nClients := len(d.clients)
	used := d.used
	d.lock.RUnlock()

	if !used || nClients > 0 {
		return
	}

	d.pitBoss.release(d)
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.used = true
	d.lock.Unlock()

	d.enqueue(func() {
		logs := make([]*playable.LogMessage, len(d.logMessages))
		copy(logs, d.logMessages)

		client.Send(&playable.Response{
			Key:  "logs",
			Data: logs,
		})

		d.sendState(client)
	})
}

// enqueue schedules fn on the run loop without waiting for it
// fn is dropped if the shift has ended.
func (d *Dealer) enqueue(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
	}
}

// RemoveClient removes a client
// Returns true if it was the last client. This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	d.enqueue(d.releaseIfIdle)

	return nClients == 0
}

// Join seats a player
func (d *Dealer) Join(ctx context.Context, seatID int64, name string) (*Outcome, error) {
	return d.run(ctx, func() (*Outcome, error) {
		return d.join(seatID, name)
	})
}

// Leave removes a player from the table
// If the hand can no longer continue without them, it is settled.
func (d *Dealer) Leave(ctx context.Context, seatID int64) (*Outcome, error) {
	return d.run(ctx, func() (*Outcome, error) {
		return d.leave(seatID)
	})
}

// StartHand deals a new hand
func (d *Dealer) StartHand(ctx context.Context) (*Outcome, error) {
	return d.run(ctx, d.startHand)
}

// Act performs an action for the seat on turn and moves the hand along
func (d *Dealer) Act(ctx context.Context, seatID int64, act action.Action, amount int) (*Outcome, error) {
	return d.run(ctx, func() (*Outcome, error) {
		return d.act(seatID, act, amount)
	})
}

// NOTE: the following must only be called from the run loop

func (d *Dealer) join(seatID int64, name string) (*Outcome, error) {
	d.lock.Lock()
	d.used = true
	d.lock.Unlock()

	return &Outcome{}, d.table.AddSeat(seatID, name)
}

func (d *Dealer) leave(seatID int64) (*Outcome, error) {
	if err := d.table.RemoveSeat(seatID); err != nil {
		return nil, err
	}

	out := &Outcome{}
	return out, d.progress(out)
}

func (d *Dealer) startHand() (*Outcome, error) {
	if err := d.table.StartHand(); err != nil {
		return nil, err
	}

	out := &Outcome{}
	return out, d.progress(out)
}

func (d *Dealer) act(seatID int64, act action.Action, amount int) (*Outcome, error) {
	if err := d.table.ApplyAction(seatID, act, amount); err != nil {
		return nil, err
	}

	if !d.table.IsRoundComplete() {
		if err := d.table.AdvanceTurn(); err != nil {
			return nil, err
		}
	}

	out := &Outcome{}
	return out, d.progress(out)
}

// State returns the public state of the table
func (d *Dealer) State(ctx context.Context) (*texasholdem.State, error) {
	var state *texasholdem.State
	err := d.exec(ctx, func() error {
		state = d.table.State()
		return nil
	})

	return state, err
}

// SeatState returns the state of the table as seen by one seat
func (d *Dealer) SeatState(ctx context.Context, seatID int64) (*texasholdem.SeatState, error) {
	var state *texasholdem.SeatState
	err := d.exec(ctx, func() error {
		var err error
		state, err = d.table.SeatState(seatID)
		return err
	})

	return state, err
}

// Status returns a short summary of the table
func (d *Dealer) Status(ctx context.Context) (*texasholdem.Status, error) {
	var status *texasholdem.Status
	err := d.exec(ctx, func() error {
		status = d.table.Status()
		return nil
	})

	return status, err
}

// HoleCards returns a seat's private cards
func (d *Dealer) HoleCards(ctx context.Context, seatID int64) (deck.Hand, error) {
	var cards deck.Hand
	err := d.exec(ctx, func() error {
		view, err := d.table.Seat(seatID)
		if err != nil {
			return err
		}

		cards = view.Cards
		return nil
	})

	return cards, err
}

// run executes a command on the run loop, then reports and broadcasts what happened
func (d *Dealer) run(ctx context.Context, fn func() (*Outcome, error)) (*Outcome, error) {
	var out *Outcome
	err := d.exec(ctx, func() error {
		var err error
		out, err = d.command(fn)
		return err
	})

	return out, err
}

// command runs fn and flushes the table log to connected clients
// NOTE: must only be called from the run loop
func (d *Dealer) command(fn func() (*Outcome, error)) (*Outcome, error) {
	out, err := fn()

	logs := d.table.FlushLog()
	if len(logs) > 0 {
		d.addLogMessages(logs)
		d.broadcast(&playable.Response{Key: "logs", Data: logs})
	}

	for _, client := range d.Clients() {
		d.sendState(client)
	}

	if err != nil {
		return nil, err
	}

	out.Logs = logs
	out.Status = d.table.Status()
	if id, ok := d.table.CurrentActor(); ok {
		out.NextActor = id
		out.Actions = d.table.ActionsForSeat(id)
	}

	return out, nil
}

// progress moves the hand along until a seat has to make a decision
// Seats that are all-in are passed over, and a seat facing only all-in
// opponents with nothing to call checks. Once the betting is over the
// hand is settled and busted seats are removed.
// NOTE: must only be called from the run loop
func (d *Dealer) progress(out *Outcome) error {
	t := d.table
	for i := 0; i < maxAutoSteps; i++ {
		if t.Phase() == texasholdem.PhaseWaiting {
			return nil
		}

		if t.CanSettle() {
			return d.settle(out)
		}

		if t.IsRoundComplete() {
			if err := t.AdvanceStreet(); err != nil {
				if errors.Is(err, deck.ErrEndOfDeck) {
					d.abort(out, err)
					return nil
				}

				return err
			}

			continue
		}

		actorID, _ := t.CurrentActor()
		actor, err := t.Seat(actorID)
		if err != nil {
			return err
		}

		var auto action.Action
		switch {
		case actor.Folded:
			if err := t.AdvanceTurn(); err != nil {
				return err
			}

			continue
		case actor.AllIn && actor.CurrentBet == t.CurrentBet():
			auto = action.Check
		case actor.AllIn:
			auto = action.Call
		case actor.CurrentBet == t.CurrentBet() && d.onlyAllInOpponents(actorID):
			auto = action.Check
		default:
			return nil
		}

		if err := t.ApplyAction(actorID, auto, 0); err != nil {
			return err
		}

		if !t.IsRoundComplete() {
			if err := t.AdvanceTurn(); err != nil {
				return err
			}
		}
	}

	d.logger.WithField("phase", t.Phase().String()).Error("hand did not settle")
	return nil
}

// onlyAllInOpponents returns true if every other seat still in the hand is all-in
func (d *Dealer) onlyAllInOpponents(seatID int64) bool {
	for _, seat := range d.table.Seats() {
		if seat.SeatID == seatID || seat.Folded {
			continue
		}

		if !seat.AllIn {
			return false
		}
	}

	return true
}

// settle pays out the hand and removes any seat that ran out of chips
// NOTE: must only be called from the run loop
func (d *Dealer) settle(out *Outcome) error {
	results, err := d.table.SettleHand()
	if err != nil {
		return err
	}

	out.Results = results
	d.broadcast(&playable.Response{Key: "handSummary", Data: d.table.Summary()})

	// removing a seat changes the seat order, so work from a copy
	busted := d.table.BustedSeats()
	for _, id := range busted {
		if err := d.table.RemoveSeat(id); err != nil {
			return err
		}
	}

	if len(busted) > 0 {
		out.Busted = busted
	}

	d.logger.WithFields(logrus.Fields{
		"pots":   len(results),
		"busted": len(busted),
		"seats":  d.table.SeatCount(),
	}).Info("hand complete")

	return nil
}

// abort cancels the hand and returns every bet
// NOTE: must only be called from the run loop
func (d *Dealer) abort(out *Outcome, cause error) {
	d.logger.WithError(cause).Error("aborting hand")
	d.table.Abort()
	out.Aborted = true
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(res *playable.Response) {
	for _, client := range d.Clients() {
		client.Send(res)
	}
}

// sendState sends the table state to a client, including their own cards if they are seated
// NOTE: must only be called from the run loop
func (d *Dealer) sendState(client *Client) {
	if client.seatID != 0 {
		if state, err := d.table.SeatState(client.seatID); err == nil {
			client.Send(&playable.Response{Key: "seat", Data: state})
			return
		}
	}

	client.Send(&playable.Response{Key: "table", Data: d.table.State()})
}

// ReceivedMessage is called when a client sends a message to the server
// This method must return quickly
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	var fn func() (*Outcome, error)

	switch msg.Action {
	case "status":
		d.enqueue(func() {
			c.Send(&playable.Response{Key: "status", Data: d.table.Status(), Context: msg.Context})
		})

		return
	case "join":
		fn = func() (*Outcome, error) {
			return d.join(c.seatID, c.name)
		}
	case "leave":
		fn = func() (*Outcome, error) {
			return d.leave(c.seatID)
		}
	case "start":
		fn = d.startHand
	default:
		act, err := action.FromString(msg.Action)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		amount, _ := msg.AdditionalData.GetInt("amount")
		fn = func() (*Outcome, error) {
			return d.act(c.seatID, act, amount)
		}
	}

	if c.seatID == 0 {
		c.Send(newErrorResponse(msg.Context, ErrNotSeated))
		return
	}

	d.enqueue(func() {
		out, err := d.command(fn)
		if err != nil {
			logrus.WithError(err).WithField("client", c.String()).Debug("could not perform action")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(&playable.Response{Key: "outcome", Data: out, Context: msg.Context})
		d.releaseIfIdle()
	})
}
