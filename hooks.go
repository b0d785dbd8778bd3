package gencache

const (
	GenActive   = "active"
	GenPrevious = "previous"
)

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them synchronously on hot paths, under its lock when locking is enabled.
// Hooks never receive keys or values.
type Hooks interface {
	// The active generation reached Max and replaced the previous one.
	// discarded is the number of entries the old previous generation held.
	Rotated(discarded int)

	// An entry older than TTL was dropped on read.
	// generation ∈ {GenActive, GenPrevious}
	Expired(generation string)

	// A live previous-generation hit was moved into the active generation.
	Promoted()

	// Clear dropped both generations; dropped counts entries in both.
	Cleared(dropped int)

	// Encoded could not decode a stored payload and deleted it.
	DecodeFailed(err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Rotated(int)        {}
func (NopHooks) Expired(string)     {}
func (NopHooks) Promoted()          {}
func (NopHooks) Cleared(int)        {}
func (NopHooks) DecodeFailed(error) {}
