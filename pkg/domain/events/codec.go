package events

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEventType is returned by Decode for a type with no registered decoder.
var ErrUnknownEventType = errors.New("unknown event type")

var decoders = map[string]func([]byte) (Event, error){
	EventTypeAccountOpened.String():    decodeAs[AccountOpened],
	EventTypeAccountClosed.String():    decodeAs[AccountClosed],
	EventTypeFundsTransferred.String(): decodeAs[FundsTransferred],
	EventTypeUserRegistered.String():   decodeAs[UserRegistered],
	EventTypeKYCProfileSaved.String():  decodeAs[KYCProfileSaved],
}

// Decode rebuilds an event of the given type from its JSON payload.
// The returned event has the same value type that was emitted.
func Decode(eventType string, payload []byte) (Event, error) {
	decode, ok := decoders[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
	return decode(payload)
}

func decodeAs[T Event](payload []byte) (Event, error) {
	var e T
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.Type(), err)
	}
	return e, nil
}
