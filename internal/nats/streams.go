package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// SubmissionStream records every accepted build.
	SubmissionStream = "rigwizard_submissions"
	// DraftBucket is the key-value bucket holding in-progress drafts.
	DraftBucket = "rigwizard_drafts"

	EventTypeSubmission = "submission"
)

// SubjectForProfile returns the wildcard subject for every event of a
// profile, e.g. "rigwizard.default.>".
func SubjectForProfile(profile string) string {
	return fmt.Sprintf("rigwizard.%s.>", profile)
}

// SubjectForEvent returns the subject of one event type in a profile,
// e.g. "rigwizard.default.submission".
func SubjectForEvent(profile, eventType string) string {
	return fmt.Sprintf("rigwizard.%s.%s", profile, eventType)
}

// SetupStream creates or updates the submissions stream. Submissions are
// kept for 90 days.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     SubmissionStream,
		Subjects: []string{"rigwizard.>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   90 * 24 * time.Hour,
	})
}

// SetupDraftBucket creates or updates the draft bucket, keeping a short
// history per key.
func SetupDraftBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	return js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      DraftBucket,
		Description: "In-progress build drafts",
		History:     5,
		Storage:     jetstream.FileStorage,
	})
}

// CreateConsumer creates a consumer reading a profile's events from the
// beginning.
func CreateConsumer(ctx context.Context, stream jetstream.Stream, profile string) (jetstream.Consumer, error) {
	return stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: SubjectForProfile(profile),
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
}
