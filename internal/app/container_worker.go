package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/TalentX-App/vacancies/internal/config"
	"github.com/TalentX-App/vacancies/internal/logx"
	"github.com/TalentX-App/vacancies/internal/metrics"
	"github.com/TalentX-App/vacancies/internal/repository"
	"github.com/TalentX-App/vacancies/internal/service/ingest"
	"github.com/TalentX-App/vacancies/internal/transport/kafka"
)

type ingestCountersIn struct {
	dig.In
	Logger   logx.Logger
	Repo     *repository.VacancyRepo
	Ingested prometheus.Counter `name:"postings_ingested_total"`
	Skipped  prometheus.Counter `name:"postings_skipped_total"`
}

// MustBuildWorkerContainer builds the ingest worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

// MustBuildWorker builds and returns the worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerIngest(container); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return container, nil
}

func registerIngest(container *dig.Container) error {
	if err := container.Provide(
		func() prometheus.Counter { return registerCollector(metrics.NewPostingsIngestedTotal()) },
		dig.Name("postings_ingested_total"),
	); err != nil {
		return err
	}
	if err := container.Provide(
		func() prometheus.Counter { return registerCollector(metrics.NewPostingsSkippedTotal()) },
		dig.Name("postings_skipped_total"),
	); err != nil {
		return err
	}
	return provideAll(container,
		repository.NewVacancyRepo,
		func(in ingestCountersIn) *ingest.Processor {
			return ingest.NewProcessor(in.Repo, in.Logger, in.Ingested, in.Skipped)
		},
		func(cfg *config.Config, logger logx.Logger, p *ingest.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger, p.Handle)
		},
	)
}
