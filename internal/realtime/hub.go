package realtime

import "log"

// Hub manages WebSocket clients and routes connection change events.
// Clients subscribe to a single connection ID or to the whole feed.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// connectionID -> set of subscribed clients
	subscriptions map[uint]map[*Client]bool

	// clients watching every connection
	watchAll map[*Client]bool

	register   chan *Client
	unregister chan *Client
	subscribe  chan subscribeMsg
	broadcast  chan broadcastMsg
}

type subscribeMsg struct {
	client *Client
	// 0 subscribes to all connections
	connectionID uint
}

type broadcastMsg struct {
	connectionID uint
	payload      []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:       make(map[*Client]bool),
		subscriptions: make(map[uint]map[*Client]bool),
		watchAll:      make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		subscribe:     make(chan subscribeMsg),
		broadcast:     make(chan broadcastMsg, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("client registered (total: %d)", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				log.Printf("client unregistered (total: %d)", len(h.clients))
			}

		case msg := <-h.subscribe:
			if msg.connectionID == 0 {
				h.watchAll[msg.client] = true
				log.Printf("client subscribed to all connections (watchers: %d)", len(h.watchAll))
				continue
			}
			if _, ok := h.subscriptions[msg.connectionID]; !ok {
				h.subscriptions[msg.connectionID] = make(map[*Client]bool)
			}
			h.subscriptions[msg.connectionID][msg.client] = true
			log.Printf("client subscribed to connection %d (subscribers: %d)", msg.connectionID, len(h.subscriptions[msg.connectionID]))

		case msg := <-h.broadcast:
			for client := range h.watchAll {
				h.send(client, msg.payload)
			}
			for client := range h.subscriptions[msg.connectionID] {
				h.send(client, msg.payload)
			}
		}
	}
}

func (h *Hub) send(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		// Client buffer full, remove it
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	delete(h.watchAll, client)
	close(client.send)
	for connectionID, subs := range h.subscriptions {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.subscriptions, connectionID)
		}
	}
}
