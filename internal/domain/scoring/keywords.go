package scoring

// Career-progression signals are scanned out of the posting description with
// static keyword tables so every bonus stays auditable. Matching is a
// lowercase substring check.
const (
	careerBase          = 50.0
	advancementBonus    = 20.0
	growthLanguageBonus = 15.0
	equityBonus         = 15.0
	bonusPotentialBonus = 10.0
)

var advancementKeywords = []string{
	"senior",
	"lead",
	"principal",
	"director",
	"manager",
}

var growthLanguageKeywords = []string{
	"growth",
	"advancement",
	"career path",
	"promotion",
	"professional development",
	"mentorship",
}

var equityKeywords = []string{
	"equity",
	"stock options",
	"rsu",
}

var bonusKeywords = []string{
	"bonus",
	"performance incentive",
}
