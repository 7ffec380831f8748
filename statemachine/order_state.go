package statemachine

import (
	"fmt"

	"food-order-api/models"
)

// statusRank orders the linear fulfilment path
// pending → processing → ready → completed. Cancelled carries no rank:
// it is only reachable from pending.
var statusRank = map[models.OrderStatus]int{
	models.StatusPending:    0,
	models.StatusProcessing: 1,
	models.StatusReady:      2,
	models.StatusCompleted:  3,
}

// AllStatuses lists every recognized order status.
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusProcessing,
	models.StatusReady,
	models.StatusCompleted,
	models.StatusCancelled,
}

// IsValid reports whether s is one of the recognized statuses.
func IsValid(s models.OrderStatus) bool {
	if s == models.StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal reports whether no further transition is permitted out of s.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusCompleted || s == models.StatusCancelled
}

// CanAdvance checks whether a restaurant may move an order from one status
// to another. Moves are forward-only along the fulfilment path (skipping
// ahead is allowed); cancellation is permitted only while the order is
// still pending; terminal statuses admit no move at all.
func CanAdvance(from, to models.OrderStatus) error {
	if IsTerminal(from) {
		return fmt.Errorf("order is already %s", from)
	}
	if to == models.StatusCancelled {
		if from != models.StatusPending {
			return fmt.Errorf("only pending orders can be cancelled, current status is %s", from)
		}
		return nil
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return fmt.Errorf("unknown status %q", from)
	}
	toRank, ok := statusRank[to]
	if !ok {
		return fmt.Errorf("unknown status %q", to)
	}
	if toRank <= fromRank {
		return fmt.Errorf(
			"invalid transition: %s → %s. Valid next statuses from %s are: %s",
			from, to, from, describeNext(from),
		)
	}
	return nil
}

// CanCancel checks whether a user may cancel an order in the given status.
// Cancellation is disallowed once processing has begun.
func CanCancel(from models.OrderStatus) error {
	if from != models.StatusPending {
		return fmt.Errorf("cannot cancel an order whose status is %s", from)
	}
	return nil
}

// NextStatuses returns every status reachable from the given one.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	fromRank, ok := statusRank[from]
	if !ok || IsTerminal(from) {
		return nil
	}
	var nexts []models.OrderStatus
	for _, s := range AllStatuses {
		if s == models.StatusCancelled {
			if from == models.StatusPending {
				nexts = append(nexts, s)
			}
			continue
		}
		if statusRank[s] > fromRank {
			nexts = append(nexts, s)
		}
	}
	return nexts
}

func describeNext(from models.OrderStatus) string {
	nexts := NextStatuses(from)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// StatusNames returns the recognized statuses as a comma-separated string,
// for validation error messages.
func StatusNames() string {
	result := ""
	for i, s := range AllStatuses {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
