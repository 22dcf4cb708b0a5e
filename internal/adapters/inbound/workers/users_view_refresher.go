package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/presentation"
)

// UsersViewRefresher is a runnable that loads the shared users list view on start
// and refreshes it periodically.
type UsersViewRefresher struct {
	UsersView           *presentation.UsersListModel `resolve:""`
	Logger              *log.Logger                  `resolve:""`
	Interval            time.Duration                `config:"USERS_VIEW_REFRESH_INTERVAL" default:"5m"`
	workerExecutionChan chan struct{}
}

// Run fetches the users once and then on every tick until ctx is done.
func (r UsersViewRefresher) Run(ctx context.Context) error {
	r.Logger.Println("UsersViewRefresher: running...")
	r.refresh(ctx)

	if r.Interval <= 0 {
		<-ctx.Done()
		r.Logger.Println("UsersViewRefresher: stopping...")
		return nil
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.refresh(ctx)
		case <-ctx.Done():
			r.Logger.Println("UsersViewRefresher: stopping...")
			return nil
		}
	}
}

func (r UsersViewRefresher) refresh(ctx context.Context) {
	state := r.UsersView.Refresh(ctx)
	if state.Status == presentation.ViewStatus_Error {
		r.Logger.Printf("UsersViewRefresher: refresh failed: %s", state.Message)
	}
	if r.workerExecutionChan != nil {
		r.workerExecutionChan <- struct{}{}
	}
}
