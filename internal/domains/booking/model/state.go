package model

import (
	"errors"
	"fmt"
	gDto "shareit/shared/dto"
	"strings"
	"time"
)

// State is a query-time view over bookings. It is not persisted.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = errors.New("unknown state")

var states = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// States lists every state in declaration order.
func States() []State {
	return append([]State(nil), states...)
}

// ParseState is case-insensitive. An empty value means ALL.
func ParseState(value string) (State, error) {
	if strings.TrimSpace(value) == "" {
		return StateAll, nil
	}

	candidate := State(strings.ToUpper(strings.TrimSpace(value)))
	for _, state := range states {
		if state == candidate {
			return state, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownState, value)
}

// Matches evaluates the state against a single booking.
// Only CURRENT looks at the status as well as the window.
func (s State) Matches(b Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now) && b.Status == StatusApproved
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return false
	}
}

// Filter renders the same predicate as Matches for the SQL repository.
func (s State) Filter(now time.Time) gDto.FilterGroup {
	startsBefore := gDto.Filter{ArgName: "state_start_before", Field: FieldStartDate, Value: now, Operator: gDto.FilterOperatorLess, Table: TableName}
	endsAfter := gDto.Filter{ArgName: "state_end_after", Field: FieldEndDate, Value: now, Operator: gDto.FilterOperatorGreater, Table: TableName}
	hasStatus := func(status Status) gDto.Filter {
		return gDto.Filter{ArgName: "state_status", Field: FieldStatus, Value: status.String(), Operator: gDto.FilterOperatorEq, Table: TableName}
	}

	switch s {
	case StateAll:
		return gDto.FilterGroup{}
	case StateCurrent:
		return gDto.And(startsBefore, endsAfter, hasStatus(StatusApproved))
	case StatePast:
		return gDto.And(gDto.Filter{ArgName: "state_end_before", Field: FieldEndDate, Value: now, Operator: gDto.FilterOperatorLess, Table: TableName})
	case StateFuture:
		return gDto.And(gDto.Filter{ArgName: "state_start_after", Field: FieldStartDate, Value: now, Operator: gDto.FilterOperatorGreater, Table: TableName})
	case StateWaiting:
		return gDto.And(hasStatus(StatusWaiting))
	case StateRejected:
		return gDto.And(hasStatus(StatusRejected))
	default:
		// Unknown states match nothing rather than everything.
		return gDto.And(gDto.Filter{Operator: gDto.FilterPlainQuery, Value: "1 = 0"})
	}
}
