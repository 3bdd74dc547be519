package project

// Distribution mode codes describing how a project's content is handed out.
const (
	ModeOneCodePerUse = 0
	ModeLottery       = 1
	ModeInvitation    = 2
)

var distributionModeNames = map[int]string{
	ModeOneCodePerUse: "一码一用",
	ModeLottery:       "抽奖",
	ModeInvitation:    "邀请",
}

// DistributionModeName returns the display label for a distribution mode,
// or the empty string for an unknown code.
func DistributionModeName(mode int) string {
	return distributionModeNames[mode]
}

var trustLevelNames = map[int]string{
	0: "新用户",
	1: "基本用户",
	2: "成员",
	3: "活跃用户",
	4: "领导者",
}

// Badge gradients per trust level, used by the form UI for claimer styling.
var trustLevelGradients = map[int]string{
	0: "linear-gradient(135deg, #9ca3af 0%, #6b7280 100%)",
	1: "linear-gradient(135deg, #34d399 0%, #059669 100%)",
	2: "linear-gradient(135deg, #60a5fa 0%, #2563eb 100%)",
	3: "linear-gradient(135deg, #a78bfa 0%, #7c3aed 100%)",
	4: "linear-gradient(135deg, #fbbf24 0%, #d97706 100%)",
}

// TrustLevelName returns the display label for a trust level code.
// Unknown codes fall back to the level-0 label.
func TrustLevelName(level int) string {
	if name, ok := trustLevelNames[level]; ok {
		return name
	}
	return trustLevelNames[0]
}

// TrustLevelGradient returns the badge gradient for a trust level code.
// Unknown codes fall back to the level-0 gradient.
func TrustLevelGradient(level int) string {
	if gradient, ok := trustLevelGradients[level]; ok {
		return gradient
	}
	return trustLevelGradients[0]
}
