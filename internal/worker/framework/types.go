package framework

import (
	"context"
	"time"
)

// Message is the queue-agnostic unit handed from Subscriber to Processor.
type Message struct {
	ID    string
	Queue string
	Data  []byte
	Extra map[string]interface{}
}

// MessageSource pulls messages from a queue. The lmstfy adapter in
// infra/mq implements it.
type MessageSource interface {
	Consume(queue string, timeout time.Duration, ttr time.Duration) (*Message, error)
	Ack(queue string, jobID string) error
}

// SubscriberConfig tunes the pull side of a worker.
type SubscriberConfig struct {
	QueueName    string
	Concurrency  int
	Rate         time.Duration
	Timeout      time.Duration
	TTR          time.Duration
	ErrorBackoff time.Duration
}

// ProcessorConfig tunes the processing side of a worker.
type ProcessorConfig struct {
	Concurrency int
	BufferSize  int
	Timeout     time.Duration
}

// JobAction tells the pipeline what to do with a finished job.
type JobAction int

const (
	// JobActionAck removes the job from the queue.
	JobActionAck JobAction = iota
	// JobActionBury drops the job after an unrecoverable failure.
	JobActionBury
	// JobActionRelease leaves the job for the TTR retry mechanism.
	JobActionRelease
)

// JobResult is a handler's verdict for one message.
type JobResult struct {
	Action JobAction
	Data   interface{}
}

// Proc is the business processing function injected into a Processor.
type Proc func(ctx context.Context, msg *Message) *JobResult
