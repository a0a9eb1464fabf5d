package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records what handlers send.
// Methods it does not override panic when called.
type FakeContext struct {
	tele.Context

	User *tele.User
	Msg  *tele.Message
	Cb   *tele.Callback

	Sent      []interface{}
	Edited    []interface{}
	Texts     []string
	Responses []*tele.CallbackResponse
}

// NewFakeMessage creates a context for a text message
func NewFakeMessage(userID int64, text, payload string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID},
		Msg:  &tele.Message{Text: text, Payload: payload},
	}
}

// NewFakeCallback creates a context for an inline button press
func NewFakeCallback(userID int64, data string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID},
		Msg:  &tele.Message{},
		Cb:   &tele.Callback{ID: "cb", Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User      { return c.User }
func (c *FakeContext) Message() *tele.Message   { return c.Msg }
func (c *FakeContext) Callback() *tele.Callback { return c.Cb }

func (c *FakeContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	return c.Msg.Text
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what)
	c.Texts = append(c.Texts, fmt.Sprint(what))
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.Edited = append(c.Edited, what)
	c.Texts = append(c.Texts, fmt.Sprint(what))
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		resp = []*tele.CallbackResponse{{}}
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

// LastText returns the text of the last sent or edited message
func (c *FakeContext) LastText() string {
	if len(c.Texts) == 0 {
		return ""
	}
	return c.Texts[len(c.Texts)-1]
}
