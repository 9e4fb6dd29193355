package game

// Case is one difficulty card on the landing screen.
type Case struct {
	Mode     Mode
	Title    string
	Duration string
	Summary  string
}

// Subtitle is the card's second line, e.g. "5-8m | Quick Investigation".
func (c Case) Subtitle() string {
	return c.Duration + " | " + c.Summary
}

var cases = []Case{
	{Mode: ModeQuick, Title: "Quick Case", Duration: "5-8m", Summary: "Quick Investigation"},
	{Mode: ModeStandard, Title: "Standard Case", Duration: "10-15m", Summary: "Detailed Investigation"},
	{Mode: ModeComplex, Title: "Complex Case", Duration: "20m+", Summary: "Complex Investigation"},
}

// Cases returns the three cards in Quick, Standard, Complex order.
func Cases() []Case {
	out := make([]Case, len(cases))
	copy(out, cases)
	return out
}

// CaseFor returns the card for a mode.
func CaseFor(m Mode) (Case, bool) {
	for _, c := range cases {
		if c.Mode == m {
			return c, true
		}
	}
	return Case{}, false
}

// Step is one numbered "How to Play" instruction.
type Step struct {
	Number  int
	Heading string
	Body    string
}

var steps = []Step{
	{1, "Select a Case Difficulty", "Choose from Quick, Standard, or Complex based on your experience."},
	{2, "Examine the Crime Scene", "Review the initial evidence and circumstances."},
	{3, "Interrogate Suspects", "Question each suspect to find inconsistencies."},
	{4, "Investigate Evidence", "Examine each piece of evidence for clues."},
	{5, "Make an Arrest", "When confident, make an arrest and solve the case."},
	{6, "Case Resolution", "Learn if you arrested the right suspect."},
}

// Instructions returns the six fixed steps.
func Instructions() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Description is the one-paragraph pitch shown under the large logo.
const Description = "Play as a detective solving procedurally generated murder mysteries. " +
	"Examine evidence, interrogate suspects, and solve cases."

// Attribution is the footer text.
const Attribution = "@Parasmani Skill Pvt"
