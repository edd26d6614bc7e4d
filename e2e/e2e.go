// Package e2e drives a real game loop through the spectator api.
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/neonsnake/engine/api"
	"github.com/pkg/errors"
)

type client struct {
	apiURL string
	client *http.Client
}

func newClient(url string) *client {
	return &client{
		apiURL: url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *client) state() (*api.Message, int, error) {
	resp, err := c.client.Get(fmt.Sprintf("%s/state", c.apiURL))
	if err != nil {
		return nil, 0, errors.Wrap(err, "get state")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}
	m := &api.Message{}
	if err := json.NewDecoder(resp.Body).Decode(m); err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "decode state")
	}
	return m, resp.StatusCode, nil
}

// spectate connects to the socket and returns once the hello message
// arrived, so every later broadcast is delivered.
func (c *client) spectate() (*websocket.Conn, error) {
	u := "ws" + strings.TrimPrefix(c.apiURL, "http") + "/socket"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial socket")
	}
	m, err := readMessage(conn)
	if err != nil {
		return nil, err
	}
	if m.Type != api.MessageHello {
		return nil, errors.Errorf("expected hello, got %s", m.Type)
	}
	return conn, nil
}

// collect reads messages until the game over message.
func collect(conn *websocket.Conn) ([]*api.Message, error) {
	messages := []*api.Message{}
	for {
		m, err := readMessage(conn)
		if err != nil {
			return messages, err
		}
		messages = append(messages, m)
		if m.Type == api.MessageGameOver {
			return messages, nil
		}
	}
}

func readMessage(conn *websocket.Conn) (*api.Message, error) {
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return nil, err
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, errors.Wrap(err, "read message")
	}
	m := &api.Message{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, errors.Wrap(err, "decode message")
	}
	return m, nil
}
