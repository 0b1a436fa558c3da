package notification

import (
	"context"
	"fmt"
)

type Service interface {
	List(ctx context.Context) ([]Notification, error)
	RecordEvent(ctx context.Context, ev Event) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service {
	return &service{repo}
}

func (s *service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.ListRecent(ctx, 100)
}

// RecordEvent translates a domain event into a notification row
func (s *service) RecordEvent(ctx context.Context, ev Event) error {
	var n Notification
	switch ev.Action {
	case ActionUserRegistered:
		n = Notification{
			Title:   "New member joined",
			Message: fmt.Sprintf("%s has registered a new profile.", displayName(ev)),
		}
	case ActionPhotoUploaded:
		n = Notification{
			Title:   "Profile updated",
			Message: fmt.Sprintf("%s added a new profile photo.", displayName(ev)),
		}
	default:
		// unknown events are dropped, not errors
		return nil
	}
	return s.repo.Create(ctx, &n)
}

func displayName(ev Event) string {
	if ev.Name != "" {
		return ev.Name
	}
	if ev.Mobile != "" {
		return ev.Mobile
	}
	return "A member"
}
