package room

import (
	"context"
	"fmt"
	"time"

	"cashtable-server/pkg/holdem"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const clientActionTimeout = time.Second * 10

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer   *Dealer
	playerID string
}

// NewClient returns a new client object
// playerID may be empty for a spectator
func NewClient(conn *websocket.Conn, playerID string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		playerID: playerID,
	}
}

// Send send a message to the web client
// It never blocks, false is returned if the client's buffer is full
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

// PlayerID returns the player the client acts for
func (c *Client) PlayerID() string {
	return c.playerID
}

// String returns a traceable identifier for the player and table
func (c *Client) String() string {
	tableID := ""
	if c.dealer != nil {
		tableID = c.dealer.id
	}

	return fmt.Sprintf("%s:%s", c.playerID, tableID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	if c.playerID == "" && msg.Action != "view" {
		c.Send(newErrorResponse(msg.Context, holdem.ErrUnknownPlayer))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), clientActionTimeout)
	defer cancel()

	var err error
	switch msg.Action {
	case "join":
		_, err = c.dealer.Join(ctx, c.playerID)
	case "leave":
		_, err = c.dealer.Leave(ctx, c.playerID)
	case "bet":
		_, err = c.dealer.Bet(ctx, c.playerID, msg.Amount)
	case "call":
		_, err = c.dealer.Call(ctx, c.playerID)
	case "allIn":
		_, err = c.dealer.AllIn(ctx, c.playerID)
	case "fold":
		_, err = c.dealer.Fold(ctx, c.playerID)
	case "replay":
		_, err = c.dealer.RecordReplayDecision(ctx, c.playerID, msg.WantsToPlay)
	case "view":
		var view holdem.HandView
		if view, err = c.dealer.ViewFor(ctx, c.playerID); err == nil {
			c.Send(newViewResponse(view))
		}
	default:
		err = fmt.Errorf("unknown action: %s", msg.Action)
	}

	if err != nil {
		logrus.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
}
