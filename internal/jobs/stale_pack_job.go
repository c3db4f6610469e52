package jobs

import (
	"context"
	"time"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/logger"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type StalePacksHandler interface {
	Handle(ctx context.Context, query queries.ListStalePacksQuery) ([]queries.StalePack, error)
}

// StalePackJob reports packs that stayed in progress longer than a threshold.
type StalePackJob struct {
	handler  StalePacksHandler
	schedule string
	after    time.Duration
	now      func() time.Time
	cron     *cron.Cron
	log      zerolog.Logger
}

func NewStalePackJob(handler StalePacksHandler, schedule string, after time.Duration) *StalePackJob {
	return &StalePackJob{
		handler:  handler,
		schedule: schedule,
		after:    after,
		now:      time.Now,
		cron:     cron.New(),
		log:      logger.Component("stale_pack_job"),
	}
}

func (j *StalePackJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info().
		Str("schedule", j.schedule).
		Dur("after", j.after).
		Msg("Stale pack job started")
	return nil
}

// Run logs every in-progress pack started before now minus the threshold and
// returns how many there were.
func (j *StalePackJob) Run(ctx context.Context) int {
	query, err := queries.NewListStalePacksQuery(j.now().Add(-j.after))
	if err != nil {
		j.log.Error().Err(err).Msg("Stale pack check failed")
		return 0
	}

	packs, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.log.Error().Err(err).Msg("Stale pack check failed")
		return 0
	}

	for _, p := range packs {
		event := j.log.Warn().
			Str("pack_id", p.PackID.String()).
			Str("order_no", p.OrderNo).
			Time("started_at", p.StartedAt).
			Int("boxes", p.BoxCount)
		if p.StartedBy != nil {
			event = event.Int64("started_by", *p.StartedBy)
		}
		event.Msg("Pack still in progress")
	}
	return len(packs)
}

func (j *StalePackJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("Stale pack job stopped")
}
