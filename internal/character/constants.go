package character

// Error message constants
const (
	ErrMsgUnknownEntityKind = "unknown entity kind"
	ErrMsgUnknownArchetype  = "unknown archetype"
)

// Log message constants
const (
	LogMsgBudgetsComputed    = "Progression budgets computed"
	LogMsgAbilityCheckFailed = "Ability adjustment rejected"
)
