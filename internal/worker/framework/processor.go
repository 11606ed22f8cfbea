package framework

import (
	"context"
	"sync"
	"time"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
)

// Processor drains inputChan and runs the injected business proc on
// each message, then settles the job with the queue.
type Processor struct {
	cfg        *ProcessorConfig
	proc       Proc
	source     MessageSource
	log        logger.Logger
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

func NewProcessor(cfg *ProcessorConfig, proc Proc, source MessageSource, log logger.Logger) *Processor {
	return &Processor{
		cfg:        cfg,
		proc:       proc,
		source:     source,
		log:        log,
		shutdownCh: make(chan struct{}),
	}
}

// Start launches the processing goroutines.
func (p *Processor) Start(ctx context.Context, inputChan <-chan *Message) error {
	p.log.Infof(ctx, "[Processor] Starting with %d workers", p.cfg.Concurrency)

	for i := 0; i < p.cfg.Concurrency; i++ {
		workerID := i
		p.wg.Add(1)
		go p.loop(ctx, workerID, inputChan)
	}

	return nil
}

// SignalShutdown switches the processors into drain mode: finish what is
// buffered, then exit.
func (p *Processor) SignalShutdown() {
	p.log.Infof(context.Background(), "[Processor] Shutdown signal received")
	close(p.shutdownCh)
}

// Wait blocks until every processing goroutine has exited.
func (p *Processor) Wait() {
	p.wg.Wait()
	p.log.Infof(context.Background(), "[Processor] All workers exited")
}

func (p *Processor) loop(ctx context.Context, workerID int, inputChan <-chan *Message) {
	defer p.wg.Done()
	p.log.Infof(ctx, "[Processor-%d] Started", workerID)

	for {
		select {
		case msg := <-inputChan:
			p.process(ctx, msg, workerID)

		case <-p.shutdownCh:
			p.log.Infof(ctx, "[Processor-%d] Entering DRAIN mode", workerID)
			count := 0
			for {
				select {
				case msg := <-inputChan:
					p.process(ctx, msg, workerID)
					count++
				default:
					p.log.Infof(ctx, "[Processor-%d] Drained %d messages, exiting", workerID, count)
					return
				}
			}
		}
	}
}

func (p *Processor) process(ctx context.Context, msg *Message, workerID int) {
	if msg == nil {
		return
	}

	startTime := time.Now()

	procCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()
	procCtx = logger.WithWorkerID(procCtx, workerID)

	p.log.Infof(procCtx, "[Processor-%d] Processing message: %s", workerID, msg.ID)

	result := p.proc(procCtx, msg)

	duration := time.Since(startTime)
	p.log.Infof(procCtx, "[Processor-%d] Message processed: %s, action: %d, duration: %v",
		workerID, msg.ID, result.Action, duration)

	p.settle(procCtx, msg, result, workerID)
}

// settle reports the verdict to the queue. A buried job is acked away.
// A released job needs no call: the queue re-delivers anything left
// unacked once its TTR expires.
func (p *Processor) settle(ctx context.Context, msg *Message, result *JobResult, workerID int) {
	switch result.Action {
	case JobActionAck:
		if err := p.source.Ack(msg.Queue, msg.ID); err != nil {
			p.log.Errorf(ctx, "[Processor-%d] Ack failed: %s, error: %v", workerID, msg.ID, err)
		}
	case JobActionBury:
		p.log.Warnf(ctx, "[Processor-%d] Burying message: %s", workerID, msg.ID)
		if err := p.source.Ack(msg.Queue, msg.ID); err != nil {
			p.log.Errorf(ctx, "[Processor-%d] Bury ack failed: %s, error: %v", workerID, msg.ID, err)
		}
	case JobActionRelease:
		p.log.Infof(ctx, "[Processor-%d] Releasing message for retry: %s", workerID, msg.ID)
	}
}
