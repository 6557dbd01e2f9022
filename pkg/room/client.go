package room

import (
	"fmt"

	"chatpoker/pkg/playable"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
// A client with a seat ID of zero is a spectator.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	tableID string
	seatID  int64
	name    string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, tableID string, seatID int64, name string) *Client {
	return &Client{
		send:    make(chan interface{}, 256),
		Close:   make(chan string),
		Conn:    conn,
		tableID: tableID,
		seatID:  seatID,
		name:    name,
	}
}

// TableID returns the table the client is watching
func (c *Client) TableID() string {
	return c.tableID
}

// SeatID returns the seat the client plays, or zero for a spectator
func (c *Client) SeatID() int64 {
	return c.seatID
}

// Send send a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the seat and table
func (c *Client) String() string {
	return fmt.Sprintf("%d:%s", c.seatID, c.tableID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
