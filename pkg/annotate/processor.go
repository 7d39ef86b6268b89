package annotate

import "context"

// Processor is the building block for post-processing stages chained
// after Annotate. A Processor takes a Segment sequence and returns a
// new one; implementations may rewrite readings or confidences but must
// preserve the partition invariant (Start/End spans untouched).
type Processor interface {
	Apply(segments []Segment) []Segment
}

// CancellableProcessor is the streaming / cancellable counterpart of
// Processor. Implementations typically emit a single sequence on the
// returned channel. The channel must be closed in all cases, including
// when ctx is canceled.
type CancellableProcessor interface {
	StreamApply(ctx context.Context, segments []Segment) <-chan []Segment
}
