package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/schedule"
	"github.com/cityvent/events-api/internal/timezone"
)

// LiveStatusCache is a short-TTL snapshot store for liveness verdicts.
// A miss is never an error; the resolver is cheap enough to rerun.
type LiveStatusCache interface {
	GetLiveWindow(ctx context.Context, key string) (*schedule.LiveWindow, bool)
	SetLiveWindow(ctx context.Context, key string, win schedule.LiveWindow)
}

type LiveStatusOutput struct {
	PublicID  uuid.UUID  `json:"public_id"`
	Title     string     `json:"title"`
	IsLive    bool       `json:"is_live"`
	LiveUntil *time.Time `json:"live_until"`
}

type GetLiveStatus struct {
	repo  domain.Repository
	cache LiveStatusCache
}

func NewGetLiveStatus(
	repo domain.Repository,
	cache LiveStatusCache,
) *GetLiveStatus {
	return &GetLiveStatus{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetLiveStatus) Execute(
	ctx context.Context,
	publicID uuid.UUID,
) (*LiveStatusOutput, error) {

	ev, err := uc.repo.GetEventByPublicID(ctx, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	out := &LiveStatusOutput{
		PublicID: ev.PublicID,
		Title:    ev.Title,
	}

	key := publicID.String()
	if uc.cache != nil {
		if win, ok := uc.cache.GetLiveWindow(ctx, key); ok {
			out.IsLive = win.IsLive
			out.LiveUntil = win.LiveUntil
			return out, nil
		}
	}

	org, err := uc.repo.GetOrganizerByID(ctx, ev.OrganizerID)
	if err != nil {
		return nil, err
	}

	win := domain.ResolveLive(ev, timezone.NowIn(org.Timezone))
	if uc.cache != nil {
		uc.cache.SetLiveWindow(ctx, key, win)
	}

	out.IsLive = win.IsLive
	out.LiveUntil = win.LiveUntil
	return out, nil
}
