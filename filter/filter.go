// Package filter provides client-side filtering of match results using the
// expr expression language. The server already supports coarse filtering
// through FilterCriteria; this package covers the finer conditions the API
// cannot express, like combining category scores with tag checks.
package filter

import (
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/talentwire/talentctl/talentwire"
)

// MatchFilter is a compiled filter over match results. A compiled filter is
// safe for concurrent use.
type MatchFilter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable match filter.
//
// Expressions see the fields of one match result (Score, WeightedScore,
// IndexID, Tags and the per-category scores) plus helper functions:
//
//	Score > 75 and hasTag("shortlisted")
//	SkillsScore >= 80 or contains(IndexID, "senior")
func Compile(expression string) (*MatchFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // match result properties
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &MatchFilter{expression: expression, program: program}, nil
}

// Evaluate reports whether the match result passes the filter. Results that
// make the expression fail at runtime are treated as non-matching.
func (f *MatchFilter) Evaluate(m talentwire.MatchResult) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(m))
	if err != nil {
		return false
	}
	// Guaranteed bool by the AsBool compile option.
	return result.(bool)
}

// Apply returns the subset of matches that pass the filter, preserving order.
func (f *MatchFilter) Apply(matches []talentwire.MatchResult) []talentwire.MatchResult {
	kept := make([]talentwire.MatchResult, 0, len(matches))
	for _, m := range matches {
		if f.Evaluate(m) {
			kept = append(kept, m)
		}
	}
	return kept
}

// Expression returns the original expression.
func (f *MatchFilter) Expression() string {
	return f.expression
}

func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

func runtimeEnvironment(m talentwire.MatchResult) map[string]any {
	env := make(map[string]any, 24)
	addHelperFunctions(env)

	env["Match"] = m
	env["hasTag"] = hasTagFunc(m.UserDefinedTags)

	// Direct result properties for convenience.
	env["ID"] = m.ID
	env["IndexID"] = m.IndexID
	env["Score"] = m.Score
	env["WeightedScore"] = m.WeightedScore
	env["Tags"] = m.UserDefinedTags

	scores := m.CategoryScores
	if scores == nil {
		scores = &talentwire.CategoryWeights{}
	}
	env["EducationScore"] = scores.Education
	env["JobTitlesScore"] = scores.JobTitles
	env["SkillsScore"] = scores.Skills
	env["IndustriesScore"] = scores.Industries
	env["LanguagesScore"] = scores.Languages
	env["CertificationsScore"] = scores.Certifications

	return env
}

func hasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		return slices.Contains(lowerTags, strings.ToLower(tag))
	}
}
