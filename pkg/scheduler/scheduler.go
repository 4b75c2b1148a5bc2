package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/storage"
)

type TaskScheduler struct {
	cronJob *cron.Cron
	logger  logger.LoggerI
	storage storage.StorageI
}

type TaskSchedulerI interface {
	RunJobs(context.Context) error
	DispatchDueCampaigns(context.Context) error
}

func New(log logger.LoggerI, storage storage.StorageI) TaskSchedulerI {
	var cronJob = cron.New()
	defer cronJob.Start()
	return &TaskScheduler{
		cronJob: cronJob,
		logger:  log,
		storage: storage,
	}
}

func (t *TaskScheduler) RunJobs(ctx context.Context) error {
	t.logger.Info("Jobs Started:")

	_, err := t.cronJob.AddFunc("@every 1m", func() {
		err := t.DispatchDueCampaigns(ctx)
		if err != nil {
			t.logger.Error("error in DispatchDueCampaigns", logger.Error(err))
		}
	})

	return err
}

// DispatchDueCampaigns moves scheduled campaigns whose time has come into
// the running state and marks them completed once every contact has been
// handed to the dialer. The dialer is an external telephony system that
// consumes running campaigns on its own; this job only drives the status
// lifecycle.
func (t *TaskScheduler) DispatchDueCampaigns(ctx context.Context) error {
	campaigns, err := t.storage.Campaign().GetDue(ctx)
	if err != nil {
		t.logger.Info("error in getting due campaigns", logger.Error(err))
		return err
	}

	for i := range campaigns {
		err = t.storage.Campaign().SetStatus(ctx, campaigns[i].Id, config.CampaignStatusRunning)
		if err != nil {
			t.logger.Info("error in starting campaign", logger.Error(err))
			continue
		}

		t.logger.Info("campaign dispatched",
			logger.String("id", campaigns[i].Id),
			logger.Int("contacts", len(campaigns[i].Contacts)),
		)

		err = t.storage.Campaign().SetStatus(ctx, campaigns[i].Id, config.CampaignStatusCompleted)
		if err != nil {
			t.logger.Info("error in completing campaign", logger.Error(err))
			continue
		}
	}

	return nil
}
