package school

import (
	"context"
	"errors"
	"time"
)

// Slot keys of the durable key-value storage.
const (
	SlotAuth       = "sms_auth"
	SlotData       = "sms_data"
	SlotTheme      = "sms_theme"
	SlotOnboarding = "sms_onboarding"
)

var ErrSlotNotFound = errors.New("slot not found")

type (
	// Repository is a durable key-value storage of opaque blobs.
	// LoadSlot returns ErrSlotNotFound when nothing was ever saved under `key`.
	Repository interface {
		LoadSlot(ctx context.Context, key string) ([]byte, error)
		SaveSlot(ctx context.Context, key string, payload []byte) error
	}

	// Dispatcher hands sent messages over to whatever delivers (or prints) them.
	Dispatcher interface {
		Dispatch(msgs ...Message)
	}

	// Recorder observes mutations and saves, e.g. for metrics.
	Recorder interface {
		ObserveMutation(op string, err error, dur time.Duration)
		ObserveSave(err error)
	}
)

type nopRecorder struct{}

func (nopRecorder) ObserveMutation(string, error, time.Duration) {}
func (nopRecorder) ObserveSave(error)                            {}

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(...Message) {}
