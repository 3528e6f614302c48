package services

import (
	"context"

	"curling-registry/internal/domain/user"
	"curling-registry/internal/events"
	"curling-registry/pkg/logger"

	"go.uber.org/zap"
)

type UserService struct {
	directory *UserDirectory
	publisher events.Publisher
	logger    *logger.Logger
}

func NewUserService(directory *UserDirectory, publisher events.Publisher, l *logger.Logger) *UserService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &UserService{directory: directory, publisher: publisher, logger: l}
}

// Register returns the created user and its locator.
func (s *UserService) Register(ctx context.Context, input user.RegisterInput) (user.User, string, error) {
	created, location, err := s.directory.Register(input)
	if err != nil {
		return user.User{}, "", err
	}
	s.logger.InfoContext(ctx, "user registered", zap.String("user_id", created.ID), zap.String("club", created.FavoriteClub))
	s.publish(ctx, events.EventTypeUserRegistered, created.ID, created)
	return created, location, nil
}

func (s *UserService) Remove(ctx context.Context, userID string) error {
	if err := s.directory.Remove(userID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user removed", zap.String("user_id", userID))
	s.publish(ctx, events.EventTypeUserDeleted, userID, map[string]string{"id": userID})
	return nil
}

func (s *UserService) ListAll(ctx context.Context) []user.User {
	return s.directory.ListAll()
}

// publish is best effort; a failed publish never fails the operation.
func (s *UserService) publish(ctx context.Context, eventType, aggregateID string, payload any) {
	envelope, err := events.NewEnvelope(eventType, aggregateID, payload)
	if err == nil {
		err = s.publisher.Publish(ctx, envelope)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", zap.String("event_type", eventType), zap.Error(err))
	}
}
