package school

import (
	"github.com/trezcool/elimu/core"
)

const messageSender = "school"

type (
	NewMessage struct {
		Type MessageType `json:"type" validate:"required,msgtype"`
		// Recipients is a comma separated list of phone numbers or emails.
		Recipients string `json:"recipients" validate:"required"`
		Content    string `json:"content" validate:"required"`
	}

	NewEvent struct {
		Title       string `json:"title" validate:"required"`
		Date        string `json:"date" validate:"required,endate"`
		Type        string `json:"type" validate:"required"`
		Description string `json:"description"`
	}
)

// SendMessage stores an unread message from the school. Nothing is delivered here.
func (d Dataset) SendMessage(nm NewMessage) (Message, []Replacement) {
	id, seq := d.nextID(string(Messages))
	msg := Message{
		ID:        id,
		To:        core.SplitAndClean(nm.Recipients, ","),
		From:      messageSender,
		Content:   nm.Content,
		Type:      nm.Type,
		Timestamp: timestamp(),
	}
	return msg, []Replacement{ReplaceMessages(appended(d.Messages, msg)), seq}
}

func (d Dataset) MarkMessageRead(id string) ([]Replacement, error) {
	i := indexOf(d.Messages, id, Message.key)
	if i < 0 {
		return nil, ErrNotFound
	}
	msg := d.Messages[i]
	if msg.Read {
		return nil, nil
	}
	msg.Read = true
	return []Replacement{ReplaceMessages(replaced(d.Messages, i, msg))}, nil
}

func (d Dataset) AddEvent(ne NewEvent) (Event, []Replacement) {
	id, seq := d.nextID(string(Events))
	ev := Event{
		ID:          id,
		Title:       ne.Title,
		Date:        ne.Date,
		Type:        ne.Type,
		Description: ne.Description,
	}
	return ev, []Replacement{ReplaceEvents(appended(d.Events, ev)), seq}
}
