package courier

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New(
		"Courier must be created via NewCourier or RestoreCourier")
)

// Courier is the roster entry for a delivery person. The delivery-task
// lifecycle references couriers only by id; this aggregate exists so operators
// can register couriers and maintain their availability.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// mobileNo is the courier's contact number; optional
	mobileNo string
	// status is the courier's availability
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in the Available status.
// The name is required; the mobile number is optional.
func NewCourier(id kernel.UUID, name string, mobileNo string) (*Courier, error) {
	c := &Courier{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.mobileNo = mobileNo
	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
func RestoreCourier(id kernel.UUID, name string, mobileNo string, status Status) (*Courier, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Courier{
		id:       id,
		name:     name,
		mobileNo: mobileNo,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier was properly constructed through a factory function.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's human-readable name.
func (c *Courier) Name() string { return c.name }

// MobileNo returns the courier's contact number, or "".
func (c *Courier) MobileNo() string { return c.mobileNo }

// Status returns the courier's availability status.
func (c *Courier) Status() Status { return c.status }

// Rename changes the courier's name. The new name must be non-empty.
func (c *Courier) Rename(name string) error {
	return c.setName(name)
}

// SetMobileNo changes the courier's contact number.
func (c *Courier) SetMobileNo(mobileNo string) {
	c.mobileNo = mobileNo
}

// SetStatus changes the courier's availability status.
func (c *Courier) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// Status represents the availability of a courier on the roster.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota
	// StatusAvailable means the courier can accept deliveries.
	StatusAvailable
	// StatusDelivering means the courier is currently out on a delivery.
	StatusDelivering
	// StatusUnavailable means the courier is temporarily unable to deliver.
	StatusUnavailable
	// StatusOffline means the courier is not on shift.
	StatusOffline
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:   "AVAILABLE",
		StatusDelivering:  "DELIVERING",
		StatusUnavailable: "UNAVAILABLE",
		StatusOffline:     "OFFLINE",
	}
}

// StatusFromString parses a courier status from its persisted/API representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"courierStatus", fmt.Errorf("%q is not a valid courier status", s))
}

// Validate checks if the Status is one of the valid availability values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"courierStatus", fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
