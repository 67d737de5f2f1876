package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/metrics"
	"github.com/sagnik22dey/RoasGuy/models"
)

// EnrollmentQueue is a bounded work queue consumed by background workers.
// Jobs are fire-and-forget: once enqueued they run detached from the
// request that produced them, there is no cancellation of in-flight work,
// and outcomes surface only through logs and metrics.
type EnrollmentQueue struct {
	jobs     chan models.EnrollmentJob
	enroller Enroller
	workers  int
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewEnrollmentQueue creates a queue holding up to size pending jobs,
// consumed by the given number of workers. A single worker preserves
// create-then-assign ordering within and across jobs; more workers keep
// per-job ordering only, which is all the flow requires.
func NewEnrollmentQueue(enroller Enroller, size, workers int, logger *zap.Logger) *EnrollmentQueue {
	if size < 1 {
		size = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &EnrollmentQueue{
		jobs:     make(chan models.EnrollmentJob, size),
		enroller: enroller,
		workers:  workers,
		logger:   logger,
	}
}

// Start launches the worker goroutines. ctx stops workers from picking up
// new jobs; a job already running always runs to completion.
func (q *EnrollmentQueue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.run(ctx)
	}
	q.logger.Info("Enrollment workers started",
		zap.Int("workers", q.workers),
		zap.Int("queue_size", cap(q.jobs)),
	)
}

func (q *EnrollmentQueue) run(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-q.jobs:
			if !ok {
				return
			}
			q.process(job)
		}
	}
}

func (q *EnrollmentQueue) process(job models.EnrollmentJob) {
	// Background jobs get their own context: nothing awaits them and the
	// originating request is long gone.
	result := q.enroller.CreateAndEnroll(context.Background(), job)

	if result.CourseAssigned {
		metrics.EnrollmentOutcomes.WithLabelValues("assigned").Inc()
	} else {
		metrics.EnrollmentOutcomes.WithLabelValues("failed").Inc()
	}
}

// Enqueue schedules an enrollment without blocking the caller. A full
// queue drops the job; support reconciles from logs in that case.
func (q *EnrollmentQueue) Enqueue(job models.EnrollmentJob) bool {
	select {
	case q.jobs <- job:
		q.logger.Info("Enrollment scheduled",
			zap.String("email", job.Email),
			zap.String("course_id", job.CourseID),
			zap.String("payment_id", job.PaymentID),
		)
		return true
	default:
		metrics.EnrollmentJobsDropped.Inc()
		q.logger.Error("Enrollment queue full, job dropped",
			zap.String("email", job.Email),
			zap.String("course_id", job.CourseID),
			zap.String("payment_id", job.PaymentID),
		)
		return false
	}
}

// Stop closes the queue and waits for pending jobs to finish.
func (q *EnrollmentQueue) Stop() {
	close(q.jobs)
	q.wg.Wait()
}
