package framework

import (
	"context"
	"sync"
	"time"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
)

// Subscriber pulls messages from the queue and forwards them to the
// Processor through inputChan.
type Subscriber struct {
	cfg        *SubscriberConfig
	source     MessageSource
	log        logger.Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

func NewSubscriber(cfg *SubscriberConfig, source MessageSource, log logger.Logger) *Subscriber {
	return &Subscriber{
		cfg:    cfg,
		source: source,
		log:    log,
	}
}

// Start launches the pull goroutines.
func (s *Subscriber) Start(parentCtx context.Context, inputChan chan<- *Message) error {
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel

	s.log.Infof(ctx, "[Subscriber] Starting with %d workers for queue: %s",
		s.cfg.Concurrency, s.cfg.QueueName)

	for i := 0; i < s.cfg.Concurrency; i++ {
		workerID := i
		s.wg.Add(1)
		go s.loop(ctx, workerID, inputChan)
	}

	return nil
}

// Stop cancels the pull loops. New messages are no longer consumed.
func (s *Subscriber) Stop() {
	s.log.Infof(context.Background(), "[Subscriber] Stopping...")
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
}

// Wait blocks until every pull goroutine has exited.
func (s *Subscriber) Wait() {
	s.wg.Wait()
	s.log.Infof(context.Background(), "[Subscriber] All workers exited")
}

func (s *Subscriber) loop(ctx context.Context, workerID int, inputChan chan<- *Message) {
	defer s.wg.Done()
	s.log.Infof(ctx, "[Subscriber-%d] Started", workerID)

	for {
		msg, err := s.source.Consume(s.cfg.QueueName, s.cfg.Timeout, s.cfg.TTR)
		if err != nil {
			// Network hiccups must not kill the loop.
			s.log.Warnf(ctx, "[Subscriber-%d] Consume error: %v, retrying...", workerID, err)

			select {
			case <-ctx.Done():
				s.log.Infof(ctx, "[Subscriber-%d] Context cancelled, exiting", workerID)
				return
			default:
				time.Sleep(s.cfg.ErrorBackoff)
				continue
			}
		}

		// nil message means the queue stayed empty for the whole timeout.
		if msg == nil {
			select {
			case <-ctx.Done():
				s.log.Infof(ctx, "[Subscriber-%d] Context cancelled, exiting", workerID)
				return
			default:
				continue
			}
		}

		// Forward without deadlocking against shutdown.
		select {
		case inputChan <- msg:
			s.log.Debugf(ctx, "[Subscriber-%d] Message sent: %s", workerID, msg.ID)

		case <-ctx.Done():
			// The job stays unacked, lmstfy re-delivers it after the TTR.
			s.log.Warnf(ctx, "[Subscriber-%d] Dropping message due to shutdown: %s", workerID, msg.ID)
			return
		}

		// Rate limit between pulls, still responsive to shutdown.
		select {
		case <-ctx.Done():
			s.log.Infof(ctx, "[Subscriber-%d] Context cancelled, exiting", workerID)
			return

		case <-time.After(s.cfg.Rate):
			continue
		}
	}
}
