package order

type Status string

const (
	StatusPending Status = "pending"
	StatusMaking  Status = "making"
	StatusDone    Status = "done"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusMaking, StatusDone:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the linear pending → making → done machine.
// No skipping, no regression, done is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusMaking
	case StatusMaking:
		return next == StatusDone
	default:
		return false
	}
}

type Rating string

const (
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
)

func (r Rating) String() string {
	return string(r)
}

func (r Rating) IsValid() bool {
	return r == RatingLike || r == RatingDislike
}
