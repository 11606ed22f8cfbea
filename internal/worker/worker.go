package worker

import (
	"context"

	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/worker/framework"
)

// Worker is one subscriber/processor pipeline bound to a queue.
type Worker interface {
	Start()
	Shutdown()
	GetName() string
}

// WorkerInstance wires a Subscriber to a Processor through a buffered
// channel.
type WorkerInstance struct {
	ctx        context.Context
	name       string
	subscriber *framework.Subscriber
	processor  *framework.Processor
	inputChan  chan *framework.Message
	shutdownCh chan struct{}
	log        logger.Logger
}

func NewWorkerInstance(
	ctx context.Context,
	name string,
	subscriberCfg *framework.SubscriberConfig,
	processorCfg *framework.ProcessorConfig,
	source framework.MessageSource,
	proc framework.Proc,
	log logger.Logger,
) (Worker, error) {
	inputChan := make(chan *framework.Message, processorCfg.BufferSize)

	subscriber := framework.NewSubscriber(subscriberCfg, source, log)
	processor := framework.NewProcessor(processorCfg, proc, source, log)

	return &WorkerInstance{
		ctx:        ctx,
		name:       name,
		subscriber: subscriber,
		processor:  processor,
		inputChan:  inputChan,
		shutdownCh: make(chan struct{}),
		log:        log,
	}, nil
}

// Start runs the pipeline and blocks until Shutdown.
func (w *WorkerInstance) Start() {
	w.log.Infof(w.ctx, "[Worker] %s started", w.name)

	w.processor.Start(w.ctx, w.inputChan)
	w.subscriber.Start(w.ctx, w.inputChan)

	<-w.shutdownCh
}

// Shutdown drains the pipeline in order: stop pulling, wait for the
// pullers, drain the processors, wait for them.
func (w *WorkerInstance) Shutdown() {
	w.log.Infof(w.ctx, "[Worker] %s began to close", w.name)

	w.subscriber.Stop()
	w.subscriber.Wait()
	w.processor.SignalShutdown()
	w.processor.Wait()

	close(w.shutdownCh)
	w.log.Infof(w.ctx, "[Worker] %s shutdown complete", w.name)
}

func (w *WorkerInstance) GetName() string {
	return w.name
}
