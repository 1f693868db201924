package services

import "time"

// Test hooks for pinning the clock.

func (s *ActivationService) SetNow(now func() time.Time) { s.now = now }

func (s *MembershipService) SetNow(now func() time.Time) { s.now = now }

func (s *DonationService) SetNow(now func() time.Time) { s.now = now }

func (r *ContactResolver) SetNow(now func() time.Time) { r.now = now }

// ConsumptionFraction exposes the consumed-share computation.
var ConsumptionFraction = consumptionFraction
