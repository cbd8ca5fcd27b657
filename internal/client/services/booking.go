package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

// ErrSlotTaken marks a reservation rejected because the requested time range
// overlaps an existing booking.
var ErrSlotTaken = errors.New("time slot already booked")

// BookingService is the client for campus resource reservations.
type BookingService interface {
	Resources(ctx context.Context) ([]models.Resource, error)
	Reserve(ctx context.Context, resourceID string, start, end time.Time) (models.Reservation, error)
}

type bookingService struct {
	api *api.Client
}

func NewBookingService(client *api.Client) BookingService {
	return &bookingService{api: client}
}

type reservationRequest struct {
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func (b *bookingService) Resources(ctx context.Context) ([]models.Resource, error) {
	var resources []models.Resource
	if err := b.api.Get(ctx, "/booking/resources", &resources); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// Reserve requests the given time range. A 409 from the booking service
// means a scheduling clash and is reported as ErrSlotTaken.
func (b *bookingService) Reserve(ctx context.Context, resourceID string, start, end time.Time) (models.Reservation, error) {
	req := reservationRequest{
		ResourceID: resourceID,
		StartTime:  start.UTC().Format(time.RFC3339),
		EndTime:    end.UTC().Format(time.RFC3339),
	}
	var created models.Reservation
	if err := b.api.Post(ctx, "/booking/reservations", req, &created); err != nil {
		if api.StatusOf(err) == http.StatusConflict {
			return models.Reservation{}, ErrSlotTaken
		}
		return models.Reservation{}, fmt.Errorf("create reservation: %w", err)
	}
	return created, nil
}
