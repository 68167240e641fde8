package domain

import "time"

type Review struct {
	ID        uint64
	MemberID  uint64
	OrderID   uint64
	ProductID uint64
	Content   string
	Rating    int
	Height    int
	Weight    int
	ImageURL  string
	CreatedAt time.Time
}

// HasBodyInfo reports whether the review carries usable body
// measurements, which raises the review reward.
func (r *Review) HasBodyInfo() bool {
	return r.Height > 0 && r.Weight > 0
}

// HasImage reports whether a photo is attached to the review.
func (r *Review) HasImage() bool {
	return r.ImageURL != ""
}
