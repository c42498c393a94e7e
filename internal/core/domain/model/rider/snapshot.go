package rider

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// Snapshot is the flat, serializable state of a Rider.
type Snapshot struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone,omitempty"`
	Status    Status            `json:"status"`
	Location  *LocationSnapshot `json:"location,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// LocationSnapshot is the serializable form of kernel.Location.
type LocationSnapshot struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Snapshot captures the current state.
func (r *Rider) Snapshot() Snapshot {
	s := Snapshot{
		ID:        r.id.String(),
		Name:      r.name,
		Phone:     r.phone,
		Status:    r.status,
		CreatedAt: r.createdAt,
		UpdatedAt: r.updatedAt,
	}
	if r.location != nil {
		s.Location = &LocationSnapshot{Lat: r.location.Latitude(), Lng: r.location.Longitude()}
	}
	return s
}

// Restore rebuilds a Rider from a snapshot, re-validating every field.
func Restore(s Snapshot) (*Rider, error) {
	r := &Rider{
		phone:     s.Phone,
		status:    Available,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	id, idErr := kernel.IDFromString(s.ID)
	var (
		loc    *kernel.Location
		locErr error
	)
	if s.Location != nil {
		l, err := kernel.NewLocation(s.Location.Lat, s.Location.Lng)
		loc, locErr = &l, err
	}
	if err := errors.Join(idErr, locErr); err != nil {
		return nil, err
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(s.Name),
		s.Status.Validate(),
		r.setLocation(loc),
	); err != nil {
		return nil, err
	}
	r.status = s.Status

	return r, nil
}
