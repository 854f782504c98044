package domain

// Category classifies what part of the user's life a habit serves.
type Category string

const (
	CategoryMental   Category = "mental"
	CategoryPhysical Category = "physical"
	CategoryHybrid   Category = "hybrid"
)

// ValidCategories is the canonical set of accepted habit categories.
var ValidCategories = map[Category]bool{
	CategoryMental: true, CategoryPhysical: true, CategoryHybrid: true,
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var ValidPriorities = map[Priority]bool{
	PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

var ValidTimesOfDay = map[TimeOfDay]bool{
	TimeMorning: true, TimeAfternoon: true, TimeEvening: true,
}

// CoachingTone is how the AI coach should talk to this user.
type CoachingTone string

const (
	ToneGentle        CoachingTone = "gentle"
	ToneDirect        CoachingTone = "direct"
	ToneEmpowering    CoachingTone = "empowering"
	ToneAnalytical    CoachingTone = "analytical"
	ToneCollaborative CoachingTone = "collaborative"
)

var ValidCoachingTones = map[CoachingTone]bool{
	ToneGentle: true, ToneDirect: true, ToneEmpowering: true,
	ToneAnalytical: true, ToneCollaborative: true,
}

// AccountabilityType is the kind of accountability that keeps this user going.
type AccountabilityType string

const (
	AccountabilitySelf             AccountabilityType = "self"
	AccountabilityCommunity        AccountabilityType = "community"
	AccountabilityExternal         AccountabilityType = "external"
	AccountabilityProgressTracking AccountabilityType = "progress-tracking"
)

var ValidAccountabilityTypes = map[AccountabilityType]bool{
	AccountabilitySelf: true, AccountabilityCommunity: true,
	AccountabilityExternal: true, AccountabilityProgressTracking: true,
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

var ValidRiskLevels = map[RiskLevel]bool{
	RiskLow: true, RiskMedium: true, RiskHigh: true,
}

// InsightKind tags a behavior-analysis insight.
type InsightKind string

const (
	InsightSuccess     InsightKind = "success"
	InsightStruggle    InsightKind = "struggle"
	InsightPattern     InsightKind = "pattern"
	InsightOpportunity InsightKind = "opportunity"
)

var ValidInsightKinds = map[InsightKind]bool{
	InsightSuccess: true, InsightStruggle: true,
	InsightPattern: true, InsightOpportunity: true,
}

// RecommendationAction is what the analysis suggests doing with a habit.
type RecommendationAction string

const (
	ActionContinue RecommendationAction = "continue"
	ActionAdjust   RecommendationAction = "adjust"
	ActionPause    RecommendationAction = "pause"
	ActionRemove   RecommendationAction = "remove"
	ActionAdd      RecommendationAction = "add"
)

var ValidRecommendationActions = map[RecommendationAction]bool{
	ActionContinue: true, ActionAdjust: true, ActionPause: true,
	ActionRemove: true, ActionAdd: true,
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

var ValidChatRoles = map[ChatRole]bool{
	RoleUser: true, RoleAssistant: true,
}
