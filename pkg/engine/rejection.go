package engine

import "errors"

// RejectCode classifies a recoverable, user-facing rejection. A
// rejection never mutates state and never consumes budget; issuing
// the same command twice against identical state yields an identical
// rejection.
type RejectCode string

const (
	RejectNoCharacter  RejectCode = "no_character"
	RejectExists       RejectCode = "exists"
	RejectEnded        RejectCode = "ended"
	RejectStageGate    RejectCode = "stage_gate"
	RejectRequirements RejectCode = "requirements"
	RejectCooldown     RejectCode = "cooldown"
	RejectNeedsConfirm RejectCode = "needs_confirm"
	RejectDailyBudget  RejectCode = "daily_budget"
	RejectActionPoints RejectCode = "action_points"
	RejectCoins        RejectCode = "coins"
	RejectBadChoice    RejectCode = "bad_choice"
	RejectChoiceLocked RejectCode = "choice_locked"
	RejectNothingOpen  RejectCode = "nothing_open"
	RejectExpired      RejectCode = "expired"
	RejectUnknown      RejectCode = "unknown_input"
)

// Rejection is a local, recoverable failure carrying a user-facing
// explanation with remediation hints.
type Rejection struct {
	Code    RejectCode
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(code RejectCode, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}

// AsRejection unwraps a rejection from an error chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
