package boost

import "time"

type Boost struct {
	id      int64
	postID  int64
	endTime time.Time
}

// NewBoost starts a window at now lasting the given number of calendar days.
// maxDays <= 0 disables the upper bound.
func NewBoost(postID int64, days, maxDays int, now time.Time) (*Boost, error) {
	if postID <= 0 {
		return nil, ErrInvalidPost
	}
	if err := ValidateDuration(days, maxDays); err != nil {
		return nil, err
	}
	return &Boost{
		postID:  postID,
		endTime: EndTime(now, days),
	}, nil
}

func ValidateDuration(days, maxDays int) error {
	if days < 1 {
		return ErrInvalidDuration
	}
	if maxDays > 0 && days > maxDays {
		return ErrDurationTooLong
	}
	return nil
}

func Reconstruct(id, postID int64, endTime time.Time) *Boost {
	return &Boost{id: id, postID: postID, endTime: endTime}
}

func (b *Boost) ID() int64          { return b.id }
func (b *Boost) PostID() int64      { return b.postID }
func (b *Boost) EndTime() time.Time { return b.endTime }

func (b *Boost) ActiveAt(t time.Time) bool {
	return IsActive(b.endTime, t)
}

func EndTime(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, days)
}

// IsActive reports whether a window ending at endTime is still open at t.
// The window is open-ended on the right: at exactly endTime it is over.
func IsActive(endTime, t time.Time) bool {
	return endTime.After(t)
}

// Admit enforces the single active boost rule across the whole system.
func Admit(activeBoostExists bool) error {
	if activeBoostExists {
		return ErrWindowOccupied
	}
	return nil
}
