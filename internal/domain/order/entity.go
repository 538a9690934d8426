package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestID      = errors.New("guest id cannot be empty")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidRating     = errors.New("invalid rating")
	ErrNotRatable        = errors.New("only completed orders can be rated")
	ErrNotOwner          = errors.New("order belongs to a different guest")
)

const defaultGuestName = "Guest"

// Customizations are guest tweaks attached at creation time and immutable
// afterwards.
type Customizations struct {
	LessSugar          bool
	LessIce            bool
	ExcludeIngredients []string
	Memo               string
}

// Order is a single drink request inside one session. The cocktail name is
// denormalized at creation so the host queue stays readable even if the menu
// changes later.
type Order struct {
	id             uuid.UUID
	sessionID      uuid.UUID
	guestID        string
	guestName      string
	cocktailID     uuid.UUID
	cocktailName   string
	customizations Customizations
	status         Status
	rating         *Rating
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOrder(
	sessionID uuid.UUID,
	guestID, guestName string,
	cocktailID uuid.UUID,
	cocktailName string,
	customizations Customizations,
	now time.Time,
) (*Order, error) {
	if strings.TrimSpace(guestID) == "" {
		return nil, ErrEmptyGuestID
	}

	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		guestName = defaultGuestName
	}

	if customizations.ExcludeIngredients == nil {
		customizations.ExcludeIngredients = []string{}
	}

	return &Order{
		id:             uuid.New(),
		sessionID:      sessionID,
		guestID:        guestID,
		guestName:      guestName,
		cocktailID:     cocktailID,
		cocktailName:   cocktailName,
		customizations: customizations,
		status:         StatusPending,
		rating:         nil,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructOrder(
	id, sessionID uuid.UUID,
	guestID, guestName string,
	cocktailID uuid.UUID,
	cocktailName string,
	customizations Customizations,
	status Status,
	rating *Rating,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Order{
		id:             id,
		sessionID:      sessionID,
		guestID:        guestID,
		guestName:      guestName,
		cocktailID:     cocktailID,
		cocktailName:   cocktailName,
		customizations: customizations,
		status:         status,
		rating:         rating,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// TransitionTo advances the state machine. Host-only; callers enforce the
// credential, the entity enforces legality.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.status = next
	o.updatedAt = now
	return nil
}

// Rate records the owning guest's verdict. Permitted only once the order is
// done, and freely overwritable afterwards.
func (o *Order) Rate(guestID string, rating Rating, now time.Time) error {
	if o.guestID != guestID {
		return ErrNotOwner
	}
	if !rating.IsValid() {
		return ErrInvalidRating
	}
	if o.status != StatusDone {
		return ErrNotRatable
	}
	o.rating = &rating
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID                  { return o.id }
func (o *Order) SessionID() uuid.UUID           { return o.sessionID }
func (o *Order) GuestID() string                { return o.guestID }
func (o *Order) GuestName() string              { return o.guestName }
func (o *Order) CocktailID() uuid.UUID          { return o.cocktailID }
func (o *Order) CocktailName() string           { return o.cocktailName }
func (o *Order) Customizations() Customizations { return o.customizations }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) Rating() *Rating                { return o.rating }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
