package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Status is the approval state of a member or ledger record. Only the
// exact lowercase tokens are accepted; case variants are rejected at
// the boundary instead of being normalized.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrInvalidStatus = errors.New("invalid status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Final reports whether the status is terminal. Records leave pending
// exactly once and are never mutated afterwards.
func (s Status) Final() bool {
	return s == StatusApproved || s == StatusRejected
}

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ID is an opaque record/member identifier. Zero is never a valid ID.
type ID int64

var ErrInvalidID = errors.New("invalid id")

func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
