package room

import (
	"errors"
	"sort"
	"sync"

	"chatpoker/pkg/playable/poker/texasholdem"

	"github.com/sirupsen/logrus"
)

// ErrTableNotFound is returned when no dealer is running a table
var ErrTableNotFound = errors.New("table not found")

// PitBoss is responsible for dispatching players to tables
// A dealer is started the first time a table is used and is let go once
// nobody is seated or watching.
type PitBoss struct {
	logger  logrus.FieldLogger
	options texasholdem.Options
	dealers map[string]*Dealer
	lock    sync.Mutex
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, opts texasholdem.Options) *PitBoss {
	return &PitBoss{
		logger:  logger,
		options: opts,
		dealers: make(map[string]*Dealer),
	}
}

// Options returns the options new tables are created with
func (p *PitBoss) Options() texasholdem.Options {
	return p.options
}

// Dealer returns the dealer running the table, starting one if needed
func (p *PitBoss) Dealer(tableID string) (*Dealer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if dealer, ok := p.dealers[tableID]; ok {
		return dealer, nil
	}

	table, err := texasholdem.NewTable(p.logger, tableID, p.options)
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(p, table)
	dealer.StartShift()
	p.dealers[tableID] = dealer

	p.logger.WithField("table", tableID).Debug("dealer started")
	return dealer, nil
}

// FindDealer returns the dealer running the table without starting one
func (p *PitBoss) FindDealer(tableID string) (*Dealer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	dealer, ok := p.dealers[tableID]
	if !ok {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// TableIDs returns the IDs of every running table
func (p *PitBoss) TableIDs() []string {
	p.lock.Lock()
	defer p.lock.Unlock()

	ids := make([]string, 0, len(p.dealers))
	for id := range p.dealers {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids
}

// release ends the dealer's shift and forgets about its table
func (p *PitBoss) release(dealer *Dealer) {
	p.lock.Lock()
	if p.dealers[dealer.tableID] == dealer {
		delete(p.dealers, dealer.tableID)
	}
	p.lock.Unlock()

	dealer.EndShift()
	p.logger.WithField("table", dealer.tableID).Debug("dealer released")
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) error {
	logrus.WithField("client", client.String()).Debug("client connected")

	dealer, err := p.Dealer(client.tableID)
	if err != nil {
		return err
	}

	dealer.AddClient(client)
	return nil
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client disconnected")

	dealer, err := p.FindDealer(client.tableID)
	if err != nil {
		logrus.WithField("table", client.tableID).WithField("type", "exception").Error("table not found")
		return
	}

	dealer.RemoveClient(client)
}

// Close ends every dealer's shift
func (p *PitBoss) Close() {
	p.lock.Lock()
	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, dealer := range p.dealers {
		dealers = append(dealers, dealer)
	}

	p.dealers = make(map[string]*Dealer)
	p.lock.Unlock()

	for _, dealer := range dealers {
		dealer.EndShift()
	}
}
