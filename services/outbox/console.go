package outbox

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
)

// ConsoleOutbox prints sent messages instead of delivering them.
type ConsoleOutbox struct {
	subjPrefix    string
	out           io.Writer
	sync          bool
	disableOutput bool

	mu   sync.Mutex
	sent []school.Message
	wg   sync.WaitGroup
}

var _ school.Dispatcher = (*ConsoleOutbox)(nil)

func NewConsoleOutbox(conf *core.Config) *ConsoleOutbox {
	return &ConsoleOutbox{
		subjPrefix: "[" + conf.AppName + "] ",
		out:        log.Writer(),
	}
}

// NewConsoleOutboxMock prints nothing and records messages synchronously.
func NewConsoleOutboxMock() *ConsoleOutbox {
	return &ConsoleOutbox{sync: true, disableOutput: true}
}

func (o *ConsoleOutbox) Dispatch(msgs ...school.Message) {
	for _, msg := range msgs {
		if o.sync {
			o.send(msg)
			continue
		}
		o.wg.Add(1)
		go func(msg school.Message) {
			defer o.wg.Done()
			o.send(msg)
		}(msg)
	}
}

// Wait blocks until every dispatched message was printed.
func (o *ConsoleOutbox) Wait() {
	o.wg.Wait()
}

// Sent returns the messages handed over so far.
func (o *ConsoleOutbox) Sent() []school.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]school.Message(nil), o.sent...)
}

func (o *ConsoleOutbox) send(msg school.Message) {
	if len(msg.To) == 0 || msg.Content == "" {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.disableOutput {
		_, _ = io.WriteString(o.out, o.render(msg))
	}
	o.sent = append(o.sent, msg)
}

func (o *ConsoleOutbox) render(msg school.Message) string {
	body := new(strings.Builder)
	switch msg.Type {
	case school.Email:
		_, _ = fmt.Fprintf(body, "From: %s\r\n", msg.From)
		_, _ = fmt.Fprint(body, "MIME-Version: 1.0\r\n")
		_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
		_, _ = fmt.Fprintf(body, "Subject: %sMessage %s\r\n", o.subjPrefix, msg.ID)
		_, _ = fmt.Fprintf(body, "To: %s\r\n", strings.Join(msg.To, ", "))
		_, _ = fmt.Fprint(body, "Content-Type: text/plain\r\n\r\n")
		_, _ = fmt.Fprintf(body, "%s\r\n", msg.Content)
	default:
		for _, to := range msg.To {
			_, _ = fmt.Fprintf(body, "SMS %s -> %s: %s\n", msg.From, to, msg.Content)
		}
	}
	return body.String()
}
