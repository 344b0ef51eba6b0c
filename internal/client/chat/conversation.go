package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ethiocareer/careercli/internal/logging"
	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID     string
	Sender Sender
	Text   string
	// Loading marks the placeholder shown while the AI reply is pending.
	Loading bool
}

// AIClient asks the remote text-generation service for a reply.
type AIClient interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Conversation is the message list of one chat window.
//
// Sends are serialized: a second Send blocks until the AI call of the
// previous one has resolved, so at most one placeholder exists at a time.
type Conversation struct {
	sendMu sync.Mutex

	mu       sync.Mutex
	messages []Message
	listener func(Message)

	ai      AIClient
	timeout time.Duration
	log     logging.Logger
}

// NewConversation creates an empty conversation. timeout bounds each AI
// call; zero means no bound.
func NewConversation(ai AIClient, timeout time.Duration, log logging.Logger) *Conversation {
	return &Conversation{ai: ai, timeout: timeout, log: log}
}

// OnMessage registers fn to be called for every appended or replaced
// message, including the loading placeholder.
func (c *Conversation) OnMessage(fn func(Message)) {
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
}

// Send appends the user's text and the bot's answer. Blank input is
// ignored and reports false. A local answer never touches the network.
func (c *Conversation) Send(ctx context.Context, text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}

	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.append(Message{ID: uuid.NewString(), Sender: SenderUser, Text: text})

	if reply, ok := Resolve(text); ok {
		m := Message{ID: uuid.NewString(), Sender: SenderBot, Text: reply}
		c.append(m)
		return m, true
	}

	placeholder := Message{ID: uuid.NewString(), Sender: SenderBot, Loading: true}
	c.append(placeholder)

	reply := c.askAI(ctx, text)
	final := Message{ID: placeholder.ID, Sender: SenderBot, Text: reply}
	c.replace(final)
	return final, true
}

// Messages returns a copy of the message list.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Reset discards every message. A reply still in flight is dropped.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
}

func (c *Conversation) askAI(ctx context.Context, text string) string {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reply, err := c.ai.Reply(ctx, text)
	if err != nil {
		c.log.Warn(ctx, "ai chat failed", "err", err)
		return UnavailableReply
	}
	return reply
}

func (c *Conversation) append(m Message) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	fn := c.listener
	c.mu.Unlock()

	if fn != nil {
		fn(m)
	}
}

func (c *Conversation) replace(m Message) {
	c.mu.Lock()
	found := false
	for i := range c.messages {
		if c.messages[i].ID == m.ID {
			c.messages[i] = m
			found = true
			break
		}
	}
	fn := c.listener
	c.mu.Unlock()

	if found && fn != nil {
		fn(m)
	}
}
