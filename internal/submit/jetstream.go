package submit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamEndpoint appends each build to the submissions stream, where the
// recommendation process consumes it.
type JetStreamEndpoint struct {
	js      jetstream.JetStream
	stream  jetstream.Stream
	profile string
}

// NewJetStreamEndpoint ensures the submissions stream exists.
func NewJetStreamEndpoint(ctx context.Context, js jetstream.JetStream, profile string) (*JetStreamEndpoint, error) {
	stream, err := nats.SetupStream(ctx, js)
	if err != nil {
		return nil, fmt.Errorf("setting up submissions stream: %w", err)
	}
	return &JetStreamEndpoint{js: js, stream: stream, profile: profile}, nil
}

// Submit publishes the build to rigwizard.{profile}.submission.
func (e *JetStreamEndpoint) Submit(ctx context.Context, build buildform.Build) error {
	sub := NewSubmission(e.profile, build)

	data, err := json.Marshal(sub)
	if err != nil {
		logger.Error("Failed to marshal submission: %v", err)
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	subject := nats.SubjectForEvent(e.profile, nats.EventTypeSubmission)
	logger.Debug("Publishing submission: profile=%s id=%s", e.profile, sub.ID)

	ack, err := e.js.Publish(ctx, subject, data, jetstream.WithMsgID(sub.ID))
	if err != nil {
		logger.Error("Failed to publish submission to subject %s: %v", subject, err)
		return fmt.Errorf("failed to publish submission: %w", err)
	}

	logger.Debug("Submission published successfully: seq=%d", ack.Sequence)
	return nil
}

// History reads every submission of the endpoint's profile, oldest first.
// Malformed messages are skipped.
func (e *JetStreamEndpoint) History(ctx context.Context) ([]Submission, error) {
	consumer, err := nats.CreateConsumer(ctx, e.stream, e.profile)
	if err != nil {
		logger.Error("Failed to create consumer for profile %s: %v", e.profile, err)
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	const batchSize = 1000
	var out []Submission
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var sub Submission
			if err := json.Unmarshal(msg.Data(), &sub); err != nil {
				malformed++
				meta, _ := msg.Metadata()
				if meta != nil {
					logger.Warn("Skipping malformed submission (seq=%d): %v", meta.Sequence.Stream, err)
				}
				_ = msg.Ack()
				continue
			}
			out = append(out, sub)
			_ = msg.Ack()
		}

		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed submissions", malformed)
	}
	logger.Debug("Loaded %d submissions for profile %s", len(out), e.profile)
	return out, nil
}
