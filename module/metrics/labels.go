package metrics

const (
	LabelResource  = "resource"
	LabelState     = "state"
	LabelOutcome   = "outcome"
	LabelKind      = "kind"
	LabelParameter = "parameter"
	LabelResult    = "result"
)

const (
	ResourceUndefined    = "undefined"
	ResourceRoundOutcome = "round_outcome"
)

const (
	ChallengeAccepted = "accepted"
	ChallengeRejected = "rejected"
)
