package wizard

import (
	"time"

	"github.com/mark3labs/rigwizard/internal/notify"
)

var (
	msgRestored = notify.Notification{
		Kind:     notify.KindInfo,
		Title:    "Progress Restored",
		Message:  "Your previous progress has been restored.",
		Duration: 3 * time.Second,
	}
	msgAdvanceInvalid = notify.Notification{
		Kind:    notify.KindError,
		Title:   "Validation Error",
		Message: "Please fix the errors before proceeding.",
	}
	msgSubmitInvalid = notify.Notification{
		Kind:    notify.KindError,
		Title:   "Validation Error",
		Message: "Please fix the errors before submitting.",
	}
	msgRateLimited = notify.Notification{
		Kind:    notify.KindError,
		Title:   "Rate Limit Exceeded",
		Message: "Please wait before submitting again.",
	}
	msgSubmitted = notify.Notification{
		Kind:     notify.KindInfo,
		Title:    "Success!",
		Message:  "Your PC build recommendations are being generated. Check your email shortly!",
		Duration: 5 * time.Second,
	}
	msgSubmitFailed = notify.Notification{
		Kind:    notify.KindError,
		Title:   "Submission Failed",
		Message: "There was an error processing your request. Please try again.",
	}
)
