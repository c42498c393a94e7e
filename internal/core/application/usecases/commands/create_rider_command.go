package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// Position is a latitude/longitude pair as supplied by a client.
type Position struct {
	Lat float64
	Lng float64
}

func (p *Position) location() (*kernel.Location, error) {
	if p == nil {
		return nil, nil
	}
	loc, err := kernel.NewLocation(p.Lat, p.Lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// NewRiderInput is the registration data of a rider. ID, Phone, Status and
// Location are optional; an empty ID gets a generated one.
type NewRiderInput struct {
	ID       string
	Name     string
	Phone    string
	Status   string
	Location *Position
}

// CreateRiderCommand registers a rider.
//
// Example:
//
//	cmd, err := NewCreateRiderCommand(NewRiderInput{ID: "R1", Name: "Aidos"})
//	if err != nil {
//	    return err
//	}
//	r, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // R1 is taken
//	}
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.ID
	name    string
	profile rider.Profile

	guard guard.ConstructorGuard
}

func NewCreateRiderCommand(in NewRiderInput) (CreateRiderCommand, error) {
	cmd := CreateRiderCommand{
		name:    in.Name,
		profile: rider.Profile{Phone: in.Phone},
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(in.ID),
		cmd.setName(in.Name),
		cmd.setStatus(in.Status),
		cmd.setLocation(in.Location),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return cmd, nil
}

func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

func (c CreateRiderCommand) RiderID() kernel.ID {
	return c.riderID
}

func (c CreateRiderCommand) Name() string {
	return c.name
}

func (c CreateRiderCommand) Profile() rider.Profile {
	return c.profile
}

func (c *CreateRiderCommand) setRiderID(id string) error {
	if strings.TrimSpace(id) == "" {
		c.riderID = kernel.NewID()
		return nil
	}
	parsed, err := kernel.IDFromString(id)
	if err != nil {
		return err
	}
	c.riderID = parsed
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return rider.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateRiderCommand) setStatus(status string) error {
	if status == "" {
		return nil
	}
	parsed, err := rider.ParseStatus(status)
	if err != nil {
		return err
	}
	c.profile.Status = parsed
	return nil
}

func (c *CreateRiderCommand) setLocation(p *Position) error {
	loc, err := p.location()
	if err != nil {
		return err
	}
	c.profile.Location = loc
	return nil
}
