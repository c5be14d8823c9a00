package relay

import (
	"context"
	"fmt"
	"sync"

	"github.com/DIMO-Network/messenger-relay/internal/clients/sendapi"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// echoPrefix is prepended to the user's text when intent detection is disabled.
const echoPrefix = "You said: "

// IntentDetector turns user text into a reply within a per-sender session.
type IntentDetector interface {
	DetectIntent(ctx context.Context, sessionID, text string) (string, error)
}

// Sender delivers a reply to a Messenger user.
type Sender interface {
	Send(ctx context.Context, recipientID string, msg sendapi.Message) error
}

// Relay forwards user messages to the intent detector and sends the replies back.
// Each forwarded message runs on its own goroutine.
type Relay struct {
	intents  IntentDetector
	sender   Sender
	inFlight sync.WaitGroup
}

// New creates a Relay. A nil intents detector puts the relay in echo mode.
func New(intents IntentDetector, sender Sender) *Relay {
	return &Relay{
		intents: intents,
		sender:  sender,
	}
}

// Forward starts relaying text from senderID and returns without waiting for it to finish.
// Only the logger is carried over from ctx; the request context is recycled once the handler returns.
func (r *Relay) Forward(ctx context.Context, senderID, text string) *Delivery {
	d := newDelivery(uuid.New().String(), senderID)
	logger := zerolog.Ctx(ctx).With().Str("delivery_id", d.ID).Str("sender_id", senderID).Logger()
	ctx = logger.WithContext(context.Background())

	r.inFlight.Add(1)
	go func() {
		defer r.inFlight.Done()
		reply, err := r.relay(ctx, senderID, text)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to relay message")
		}
		d.finish(reply, err)
	}()
	return d
}

// Wait blocks until every forwarded message has finished or ctx is done.
func (r *Relay) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.inFlight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight deliveries: %w", ctx.Err())
	}
}

func (r *Relay) relay(ctx context.Context, senderID, text string) (string, error) {
	reply := echoPrefix + text
	if r.intents != nil {
		speech, err := r.intents.DetectIntent(ctx, senderID, text)
		if err != nil {
			return "", fmt.Errorf("failed to detect intent: %w", err)
		}
		reply = speech
	}

	if err := r.sender.Send(ctx, senderID, sendapi.Message{Text: reply}); err != nil {
		return "", fmt.Errorf("failed to send reply: %w", err)
	}
	zerolog.Ctx(ctx).Info().Msgf("The bot responded '%s'", reply)
	return reply, nil
}
