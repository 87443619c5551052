package plan

// Defaults for the built-in FAQ schema cleanup.
const (
	DefaultTarget  = "index.html"
	DefaultContent = "merged-faq.json"
	FAQTitle       = "Fixed duplicate FAQPage schemas"
)

// FAQSteps returns the built-in plan for index.html: drop the second and
// third FAQPage JSON-LD blocks and swap the first for the merged block.
// The order is the order the confirmation lines are printed in.
//
// Ranges are 0-based and half-open. remove-faqpage-2 starts one line early to
// take the "<!-- FAQ Schema -->" comment with it; that is a literal of this
// file, not a rule.
func FAQSteps() []Step {
	return []Step{
		{
			Name:        "remove-faqpage-2",
			Description: "Removed FAQPage #2 (7 questions)",
			Action:      ActionDelete,
			Start:       812,
			End:         878,
		},
		{
			Name:        "remove-faqpage-3",
			Description: "Removed FAQPage #3 (10 questions)",
			Action:      ActionDelete,
			Start:       931,
			End:         1022,
		},
		{
			Name:        "merge-faqpage-1",
			Description: "Replaced FAQPage #1 with merged 22 questions",
			Action:      ActionReplace,
			Start:       153,
			End:         200,
		},
	}
}
