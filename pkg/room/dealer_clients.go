package room

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

// AddClient subscribes the client to view updates
// The client is sent the current view straight away
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	select {
	case d.execInRunLoop <- func() {
		view := d.lastView
		if !d.faulted {
			view = d.hand.ViewFor(client.playerID)
		}

		client.Send(newViewResponse(view))
	}:
	case <-d.close:
	}
}

// RemoveClient unsubscribes the client
// Returns true if it was the last client
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

// broadcast sends every client the message built for their player
// A client with a full buffer misses the message
func (d *Dealer) broadcast(build func(playerID string) interface{}) {
	for _, client := range d.Clients() {
		if !client.Send(build(client.playerID)) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full, dropping message")
		}
	}
}
