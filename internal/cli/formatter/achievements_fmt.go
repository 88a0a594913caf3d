package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/app"
)

// FormatAchievements lists the catalog with unlocked entries highlighted.
func FormatAchievements(views []app.AchievementView) string {
	var b strings.Builder

	unlocked := 0
	for _, v := range views {
		if v.Unlocked {
			unlocked++
		}
	}
	b.WriteString(Header(fmt.Sprintf("Achievements %d/%d", unlocked, len(views))))
	b.WriteString("\n")

	for _, v := range views {
		a := v.Achievement
		reward := ""
		if a.XPReward > 0 {
			reward = fmt.Sprintf("+%d XP", a.XPReward)
		}
		if v.Unlocked {
			b.WriteString(fmt.Sprintf("%s %s %s\n", IconGlyph(a.Icon), StyleGreen.Render(a.Name), Dim(reward)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("🔒"), StyleDim.Render(a.Name), Dim(reward)))
		}
		b.WriteString(fmt.Sprintf("   %s\n", Dim(a.Description)))
	}
	return b.String()
}
