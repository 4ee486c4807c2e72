package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/clothes-catalog/internal/errs"
	"github.com/deppfellow/clothes-catalog/internal/logger"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClothStore is the persistence the cloth service needs.
// *repository.ClothRepository implements it.
type ClothStore interface {
	List(ctx context.Context, limit *int) ([]cloth.Cloth, error)
	ListOrdered(ctx context.Context, order cloth.Order, limit *int) ([]cloth.Cloth, error)
	GetByID(ctx context.Context, id uuid.UUID) (*cloth.Cloth, error)
	Create(ctx context.Context, data cloth.Data) (*cloth.Cloth, error)
	Update(ctx context.Context, id uuid.UUID, data cloth.Data) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ClothNotifier is told about every newly created cloth.
type ClothNotifier interface {
	NotifyClothCreated(ctx context.Context, c *cloth.Cloth) error
}

type ClothService struct {
	store    ClothStore
	notifier ClothNotifier
	log      *zerolog.Logger
}

// NewClothService wires the service. notifier may be nil.
func NewClothService(store ClothStore, notifier ClothNotifier, log *zerolog.Logger) *ClothService {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &ClothService{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

func clothNotFound(id uuid.UUID) error {
	code := "CLOTH_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("Cloth %s not found", id), true, &code)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
			{Field: "id", Error: "must be a valid UUID"},
		}, nil)
	}
	return id, nil
}

// ListAll fetches up to limit clothes in store order and, when tags are
// given, keeps only the clothes carrying all of them.
//
// The tag filter runs after the limit, so fewer than limit clothes may be
// returned even when more matches exist further in the table.
func (s *ClothService) ListAll(ctx context.Context, limit *int, tags []string) ([]cloth.Cloth, error) {
	clothes, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return cloth.FilterByTags(clothes, tags), nil
}

// ListNewest returns up to limit clothes, most recently created first.
func (s *ClothService) ListNewest(ctx context.Context, limit *int) ([]cloth.Cloth, error) {
	return s.store.ListOrdered(ctx, cloth.OrderNewest, limit)
}

// ListTrending returns up to limit clothes, highest trending score first.
func (s *ClothService) ListTrending(ctx context.Context, limit *int) ([]cloth.Cloth, error) {
	return s.store.ListOrdered(ctx, cloth.OrderTrending, limit)
}

func (s *ClothService) GetByID(ctx context.Context, rawID string) (*cloth.Cloth, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Create stores a new cloth and queues the owner notification. A failed
// enqueue is logged and does not fail the request.
func (s *ClothService) Create(ctx context.Context, data cloth.Data) (*cloth.Cloth, error) {
	created, err := s.store.Create(ctx, data)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, s.log)
	log.Info().
		Str("event", "cloth_created").
		Str("cloth_id", created.ID.String()).
		Msg("cloth created")

	if s.notifier != nil {
		if err := s.notifier.NotifyClothCreated(ctx, created); err != nil {
			log.Warn().
				Err(err).
				Str("cloth_id", created.ID.String()).
				Msg("failed to queue cloth created notification")
		}
	}

	return created, nil
}

// Update replaces the cloth's whole payload. Zero affected rows means the
// id does not exist.
func (s *ClothService) Update(ctx context.Context, rawID string, data cloth.Data) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	affected, err := s.store.Update(ctx, id, data)
	if err != nil {
		return err
	}
	if affected == 0 {
		return clothNotFound(id)
	}

	logger.FromContext(ctx, s.log).Info().
		Str("event", "cloth_updated").
		Str("cloth_id", id.String()).
		Msg("cloth updated")

	return nil
}

// Delete removes the cloth. Zero affected rows means the id does not exist.
func (s *ClothService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return clothNotFound(id)
	}

	logger.FromContext(ctx, s.log).Info().
		Str("event", "cloth_deleted").
		Str("cloth_id", id.String()).
		Msg("cloth deleted")

	return nil
}
