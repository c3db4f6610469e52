package jobs

import (
	"context"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/logger"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type LowStockCartonsHandler interface {
	Handle(ctx context.Context, query queries.GetLowStockCartonsQuery) ([]queries.CartonTypeView, error)
}

// LowStockJob reports active carton types whose stock fell below the minimum.
type LowStockJob struct {
	handler  LowStockCartonsHandler
	schedule string
	cron     *cron.Cron
	log      zerolog.Logger
}

// NewLowStockJob runs on a standard five-field cron schedule, e.g. "0 7 * * *".
func NewLowStockJob(handler LowStockCartonsHandler, schedule string) *LowStockJob {
	return &LowStockJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		log:      logger.Component("low_stock_job"),
	}
}

func (j *LowStockJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info().Str("schedule", j.schedule).Msg("Low stock job started")
	return nil
}

// Run logs one warning per short carton and returns how many were found.
func (j *LowStockJob) Run(ctx context.Context) int {
	cartons, err := j.handler.Handle(ctx, queries.NewGetLowStockCartonsQuery())
	if err != nil {
		j.log.Error().Err(err).Msg("Low stock check failed")
		return 0
	}

	for _, c := range cartons {
		j.log.Warn().
			Str("carton_type_id", c.ID.String()).
			Str("name", c.Name).
			Int("quantity_on_hand", c.QuantityOnHand).
			Int("minimum_stock", c.MinimumStock).
			Int("shortfall", c.Shortfall()).
			Msg("Carton stock below minimum")
	}
	return len(cartons)
}

func (j *LowStockJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("Low stock job stopped")
}
