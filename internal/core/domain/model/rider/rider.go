package rider

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not created through
	// NewRider or Restore.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrNameIsRequired is returned for an empty rider name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Profile carries the optional fields supplied when a rider registers.
// A zero Status means available; a nil Location means unknown.
type Profile struct {
	Phone    string
	Status   Status
	Location *kernel.Location
}

// Patch describes a partial update of a rider. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Phone    *string
	Location *kernel.Location
}

// Rider is a delivery agent. It is the aggregate root owned by the rider registry.
//
// Rider follows these invariants:
//   - id and name are always set
//   - status is one of available, busy, offline
//   - location, when known, holds valid coordinates
type Rider struct {
	id        kernel.ID
	name      string
	phone     string
	status    Status
	location  *kernel.Location
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewRider registers a rider.
//
// Example:
//
//	r, err := rider.NewRider(kernel.NewID(), "Aidos", rider.Profile{Phone: "+7 701 000 0000"}, time.Now())
//	if err != nil {
//	    // missing name or invalid status
//	}
func NewRider(id kernel.ID, name string, profile Profile, now time.Time) (*Rider, error) {
	r := &Rider{
		phone:     strings.TrimSpace(profile.Phone),
		status:    Available,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setStatus(profile.Status),
		r.setLocation(profile.Location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rider was built by NewRider or Restore.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider identifier.
func (r *Rider) ID() kernel.ID {
	return r.id
}

// Name returns the display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the contact phone, possibly empty.
func (r *Rider) Phone() string {
	return r.phone
}

// Status returns the availability status.
func (r *Rider) Status() Status {
	return r.status
}

// IsAvailable reports whether the rider can take new work.
func (r *Rider) IsAvailable() bool {
	return r.status == Available
}

// Location returns the last known location, or nil.
func (r *Rider) Location() *kernel.Location {
	if r.location == nil {
		return nil
	}
	loc := *r.location
	return &loc
}

// CreatedAt returns the registration time.
func (r *Rider) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (r *Rider) UpdatedAt() time.Time {
	return r.updatedAt
}

// ChangeStatus sets the availability status. Any known status may follow any
// other. Returns whether the status actually changed.
func (r *Rider) ChangeStatus(status Status, now time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if status == r.status {
		return false, nil
	}
	r.status = status
	r.updatedAt = now
	return true, nil
}

// Update applies a partial profile update. A failing patch leaves the rider untouched.
func (r *Rider) Update(patch Patch, now time.Time) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return ErrNameIsRequired
	}
	if patch.Location != nil {
		if err := patch.Location.Validate(); err != nil {
			return err
		}
	}

	if patch.Name != nil {
		r.name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		r.phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Location != nil {
		loc := *patch.Location
		r.location = &loc
	}
	r.updatedAt = now
	return nil
}

func (r *Rider) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setStatus(status Status) error {
	if status == "" {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Rider) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	r.location = &loc
	return nil
}
