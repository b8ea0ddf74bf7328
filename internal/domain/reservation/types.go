package reservation

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaid          PaymentStatus = "paid"
	PaymentPartialRefund PaymentStatus = "partial refund"
	PaymentCanceled      PaymentStatus = "canceled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartialRefund, PaymentCanceled:
		return true
	default:
		return false
	}
}

type CancellationStatus string

const (
	CancellationNone           CancellationStatus = "none"
	CancellationPaymentExpired CancellationStatus = "payment-expired"
	CancellationCanceled       CancellationStatus = "canceled"
	CancellationStormRefund    CancellationStatus = "storm refund"
)

func (s CancellationStatus) String() string {
	return string(s)
}

func (s CancellationStatus) IsValid() bool {
	switch s {
	case CancellationNone, CancellationPaymentExpired, CancellationCanceled, CancellationStormRefund:
		return true
	default:
		return false
	}
}

type Action string

const (
	ActionMarkPaid    Action = "mark-paid"
	ActionCancel      Action = "cancel"
	ActionStormRefund Action = "storm-refund"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionMarkPaid, ActionCancel, ActionStormRefund:
		return true
	default:
		return false
	}
}

// Prompt is the question the caller must explicitly confirm before the
// action is sent.
func (a Action) Prompt() string {
	switch a {
	case ActionMarkPaid:
		return "Confirm that this reservation has been paid?"
	case ActionCancel:
		return "Cancel this reservation? This cannot be undone."
	case ActionStormRefund:
		return "Issue a storm refund of 50% for this reservation?"
	default:
		return ""
	}
}

type DeadlineStatus string

const (
	DeadlineNone        DeadlineStatus = ""
	DeadlinePast        DeadlineStatus = "past"
	DeadlineApproaching DeadlineStatus = "approaching"
)
