package ingest

import (
	"context"

	"github.com/TalentX-App/vacancies/internal/domain"
	"github.com/TalentX-App/vacancies/internal/logx"
)

// Processor turns feed postings into stored vacancies. Postings that fail
// validation are skipped for good; postings whose source pair is already
// stored are skipped as duplicates; storage failures propagate so the
// message is redelivered.
type Processor struct {
	repo     sourceRepository
	logger   logx.Logger
	ingested counter
	skipped  counter
}

// NewProcessor creates a feed Processor. The counters may be nil.
func NewProcessor(repo sourceRepository, logger logx.Logger, ingested, skipped counter) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{repo: repo, logger: logger, ingested: ingested, skipped: skipped}
}

// Handle processes a single posting.
func (p *Processor) Handle(ctx context.Context, posting Posting) error {
	if err := domain.ValidateCreate(&posting.Vacancy); err != nil {
		p.logger.Warn("posting rejected",
			logx.String("channel", posting.Source.Channel),
			logx.Int64("message_id", posting.Source.MessageID),
			logx.Err(err),
		)
		p.count(p.skipped)
		return nil
	}

	inserted, err := p.repo.CreateFromSource(ctx, &posting.Vacancy, posting.Source)
	if err != nil {
		return err
	}
	if !inserted {
		p.logger.Debug("posting already ingested",
			logx.String("channel", posting.Source.Channel),
			logx.Int64("message_id", posting.Source.MessageID),
		)
		p.count(p.skipped)
		return nil
	}

	p.logger.Info("vacancy ingested",
		logx.String("id", posting.Vacancy.ID),
		logx.String("channel", posting.Source.Channel),
		logx.Int64("message_id", posting.Source.MessageID),
	)
	p.count(p.ingested)
	return nil
}

func (p *Processor) count(c counter) {
	if c != nil {
		c.Inc()
	}
}
