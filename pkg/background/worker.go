// Package background гоняет периодические задачи обслуживания сервиса,
// например очистку просроченных черновиков мастеров.
package background

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"tracker/pkg/logger"
)

var (
	ErrTaskPanic   = errors.New("background task panicked")
	ErrInvalidTask = errors.New("invalid background task")
)

type Task interface {
	// TTL интервал между запусками, строго больше нуля.
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов и метрик.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log handlerLogger
	wg  sync.WaitGroup
}

// New один раз синхронно выполняет каждую задачу и, если все прошли,
// запускает их по расписанию до отмены ctx. Ошибка первого прогона
// возвращается, сервис с ней не стартует.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	for _, task := range tasks {
		if task.TTL() <= 0 {
			return nil, fmt.Errorf("%w: %s has interval %s", ErrInvalidTask, task.Info(), task.TTL())
		}
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() error {
			return run(warmupCtx, log, task)
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("warm up background tasks: %w", err)
	}

	w := &Worker{log: log}
	for _, task := range tasks {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx, task)
		}()
	}
	return w, nil
}

// Wait ждёт остановки всех задач после отмены контекста New.
func (w *Worker) Wait() {
	w.wg.Wait()
}

// loop отсчитывает интервал от конца предыдущего запуска, долгий
// прогон не порождает очередь из пропущенных тиков.
func (w *Worker) loop(ctx context.Context, task Task) {
	log := w.log.With(logger.NewField("task", task.Info()))
	log.Info("background task scheduled", logger.NewField("interval", task.TTL().String()))

	timer := time.NewTimer(task.TTL())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("background task stopped")
			return
		case <-timer.C:
			if err := run(ctx, log, task); err != nil {
				log.Error("background task failed", logger.NewField("error", err))
			}
			timer.Reset(task.TTL())
		}
	}
}

func run(ctx context.Context, log handlerLogger, task Task) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
			log.With(
				logger.NewField("task", task.Info()),
				logger.NewField("stack", string(debug.Stack())),
			).Error("background task panic")
		}
		observe(task.Info(), time.Since(start), err)
	}()

	return task.Do(ctx)
}
