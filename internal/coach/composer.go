package coach

import (
	"fmt"
	"strings"

	"github.com/stridehq/stride/internal/domain"
)

// ChatContext is the optional habit context spliced into the coaching prompt.
type ChatContext struct {
	ActiveHabits   int
	CompletedToday int
	CurrentStreak  int
	RecentInsights []string
}

// tonePhrases maps every coaching tone to its phrasing directive. The map is
// total over domain.ValidCoachingTones; composeSystemPrompt fails on any tone
// it does not cover rather than falling back to a default voice.
var tonePhrases = map[domain.CoachingTone]string{
	domain.ToneGentle:        "Speak softly and with patience. Normalize setbacks before suggesting anything. Never pressure.",
	domain.ToneDirect:        "Be straightforward and concrete. Skip cushioning language and say exactly what to do next.",
	domain.ToneEmpowering:    "Remind the user of their own agency and past wins. Frame every suggestion as something they are capable of.",
	domain.ToneAnalytical:    "Lead with the numbers. Tie every suggestion to their completion data and observable patterns.",
	domain.ToneCollaborative: "Think out loud together. Offer options and ask which fits rather than prescribing.",
}

// accountabilityPhrases maps every accountability type to its directive,
// total over domain.ValidAccountabilityTypes.
var accountabilityPhrases = map[domain.AccountabilityType]string{
	domain.AccountabilitySelf:             "Anchor accountability in their own commitments: reflect their stated intentions back to them.",
	domain.AccountabilityCommunity:        "Suggest involving others: sharing goals, training partners, telling a friend.",
	domain.AccountabilityExternal:         "Position yourself as the check-in partner: reference what they said last time and follow up on it.",
	domain.AccountabilityProgressTracking: "Lean on the tracked data: streaks, completion rates, and visible trends are the accountability.",
}

// ComposeSystemPrompt builds the coaching system prompt for one conversation
// turn. Without a profile it is the static persona plus the context block.
// With a profile it splices in tone and accountability phrasing, a profile
// summary, and risk warnings. The result is deterministic for identical
// inputs. An unrecognized tone or accountability value is a contract
// violation: upstream data is corrupt and must not be silently defaulted.
func ComposeSystemPrompt(chatCtx *ChatContext, profile *domain.PsychologyProfile) (string, error) {
	var b strings.Builder
	b.WriteString(chatSystemPrompt)

	if profile != nil {
		tone, ok := tonePhrases[profile.CoachingTone]
		if !ok {
			return "", fmt.Errorf("unrecognized coaching tone %q", profile.CoachingTone)
		}
		accountability, ok := accountabilityPhrases[profile.AccountabilityType]
		if !ok {
			return "", fmt.Errorf("unrecognized accountability type %q", profile.AccountabilityType)
		}

		b.WriteString("\n\nCoaching style for this user:\n- ")
		b.WriteString(tone)
		b.WriteString("\n- ")
		b.WriteString(accountability)

		b.WriteString("\n\nWhat you know about this user:")
		b.WriteString("\n- Self-talk under failure: ")
		b.WriteString(profile.SelfTalkPattern)
		writeProfileList(&b, "Core values", profile.CoreValues)
		writeProfileList(&b, "Motivators", profile.Motivators)
		writeProfileList(&b, "Strengths", profile.Strengths)
		writeProfileList(&b, "Barriers", profile.Barriers)

		if profile.BurnoutRisk == domain.RiskHigh {
			b.WriteString("\n\nIMPORTANT: This user shows high burnout risk. Watch for overcommitment and actively suggest rest before they ask for it.")
		}
		if profile.Perfectionism == domain.RiskHigh {
			b.WriteString("\n\nNOTE: This user leans perfectionist. Emphasize that partial completion counts and guard against all-or-nothing framing.")
		}
	}

	if chatCtx != nil {
		fmt.Fprintf(&b, "\n\nUser Context:\n- Active Habits: %d\n- Completed Today: %d\n- Current Streak: %d days",
			chatCtx.ActiveHabits, chatCtx.CompletedToday, chatCtx.CurrentStreak)
		if len(chatCtx.RecentInsights) > 0 {
			b.WriteString("\n- Recent insights: ")
			b.WriteString(strings.Join(chatCtx.RecentInsights, "; "))
		}
	}

	return b.String(), nil
}

func writeProfileList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n- ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(strings.Join(items, ", "))
}
