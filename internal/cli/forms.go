package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fittrackHuhTheme returns a custom huh theme using the Gruvbox palette.
func fittrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateRepList accepts empty or comma-separated rep counts.
func validateRepList(s string) error {
	if _, err := parseRepList(s); err != nil {
		return fmt.Errorf("use comma-separated reps, e.g. 5,5,4,4")
	}
	return nil
}

// initFormValues holds the string-backed fields of the init wizard.
type initFormValues struct {
	Start string
	Maxes map[domain.ExerciseKind]*string
}

func newInitFormValues(maxes domain.UserMaxes, start domain.Date) *initFormValues {
	v := &initFormValues{Start: start.String(), Maxes: make(map[domain.ExerciseKind]*string)}
	for _, kind := range domain.ExerciseKinds {
		s := strconv.Itoa(maxes.For(kind))
		v.Maxes[kind] = &s
	}
	return v
}

func (v *initFormValues) parse(fallback domain.Date) (domain.UserMaxes, domain.Date, error) {
	start := fallback
	if v.Start != "" {
		d, err := domain.ParseDate(v.Start)
		if err != nil {
			return domain.UserMaxes{}, domain.Date{}, err
		}
		start = d
	}

	values := make(map[domain.ExerciseKind]int, len(v.Maxes))
	for kind, s := range v.Maxes {
		if *s == "" {
			continue
		}
		n, err := strconv.Atoi(*s)
		if err != nil {
			return domain.UserMaxes{}, domain.Date{}, fmt.Errorf("%s max: %w", kind, err)
		}
		values[kind] = n
	}
	maxes := domain.UserMaxes{
		Pullups: values[domain.ExercisePullups],
		Squats:  values[domain.ExerciseSquats],
		Abs:     values[domain.ExerciseAbs],
		Pushups: values[domain.ExercisePushups],
	}
	return maxes, start, nil
}

// wizardInit creates the init form: plan start date and one max per exercise.
func wizardInit(v *initFormValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Plan start date").
			Description("YYYY-MM-DD; training days are Mon/Wed/Fri").
			Validate(validateOptionalDate).
			Value(&v.Start),
	}
	for _, kind := range domain.ExerciseKinds {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Max %s in one set", strings.ToLower(formatter.ExerciseLabel(kind)))).
			Validate(validateNonNegativeInt).
			Value(v.Maxes[kind]))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(fittrackHuhTheme()).WithShowHelp(false)
}

// wizardLogSets creates the log form with one rep-list input per planned
// exercise, prefilled with the plan's targets.
func wizardLogSets(w domain.WorkoutDay, values map[domain.ExerciseKind]*string) *huh.Form {
	fields := make([]huh.Field, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		targets := make([]int, len(ex.Sets))
		for i, s := range ex.Sets {
			targets[i] = s.TargetReps
		}
		planned := strings.ReplaceAll(formatter.FormatReps(targets), " · ", ",")
		s := planned
		values[ex.Kind] = &s
		fields = append(fields, huh.NewInput().
			Title(formatter.ExerciseLabel(ex.Kind)).
			Description("planned "+planned).
			Validate(validateRepList).
			Value(&s))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(fittrackHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(fittrackHuhTheme()).WithShowHelp(false)
}
