package service

import "sync"

// LikeState is a user's like on one loadout together with the loadout rating
type LikeState struct {
	Liked  bool `json:"liked"`
	Rating int  `json:"rating"`
}

// LikeProjection is the optimistic view of one like button. The displayed
// state is the confirmed state plus the rating delta of unsettled toggles.
// Only the settlement of the latest request clears the pending delta.
type LikeProjection struct {
	mu        sync.Mutex
	confirmed LikeState
	pending   int
	requestID uint64
	settledID uint64
}

// NewLikeProjection creates a projection with no pending toggle
func NewLikeProjection(confirmed LikeState) *LikeProjection {
	return &LikeProjection{confirmed: confirmed}
}

// Begin records a toggle and returns the id of its request
func (p *LikeProjection) Begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.displayed().Liked {
		p.pending--
	} else {
		p.pending++
	}
	p.requestID++
	return p.requestID
}

// Settle installs the server's confirmed state for requestID. A response to
// a superseded request is ignored and reported false.
func (p *LikeProjection) Settle(requestID uint64, confirmed LikeState) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if requestID != p.requestID {
		return false
	}
	p.confirmed = confirmed
	p.pending = 0
	p.settledID = requestID
	return true
}

// Fail drops the pending delta when the latest request did not commit
func (p *LikeProjection) Fail(requestID uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if requestID != p.requestID {
		return false
	}
	p.pending = 0
	p.settledID = requestID
	return true
}

// InFlight reports whether the latest request has not settled yet. Toggles
// whose deltas cancel out still count.
func (p *LikeProjection) InFlight() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requestID != p.settledID
}

// Confirmed returns the last state the server confirmed
func (p *LikeProjection) Confirmed() LikeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.confirmed
}

// Pending returns the unsettled rating delta
func (p *LikeProjection) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// RequestID returns the id of the latest request
func (p *LikeProjection) RequestID() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requestID
}

// Displayed returns confirmed plus pending
func (p *LikeProjection) Displayed() LikeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.displayed()
}

func (p *LikeProjection) displayed() LikeState {
	return LikeState{
		Liked:  p.confirmed.Liked != (p.pending%2 != 0),
		Rating: p.confirmed.Rating + p.pending,
	}
}
