package contradiction

import "github.com/pms06-ai/phronesis-lex-sub000/internal/model"

// narrative holds the human-readable convention fields attached to every
// contradiction of a given type
type narrative struct {
	explanation  string
	significance string
	action       string
	caseLaw      string
}

var narratives = map[model.ContradictionType]narrative{
	model.ContradictionSelf: {
		explanation:  "The same author has made two statements that cannot both be true.",
		significance: "Internal inconsistency by a single author goes directly to credibility and may support a Lucas direction.",
		action:       "Put both statements to the author in cross-examination and seek an explanation for the change of account.",
		caseLaw:      "R v Lucas [1981] QB 720",
	},
	model.ContradictionDirect: {
		explanation:  "Two documents assert directly opposing versions of the same fact.",
		significance: "Opposing factual accounts across documents require the tribunal to prefer one account over the other.",
		action:       "Identify which account is corroborated by independent evidence before the fact-finding hearing.",
		caseLaw:      "Onassis v Vergottis [1968] 2 Lloyd's Rep 403",
	},
	model.ContradictionModalityShift: {
		explanation:  "An allegation is restated elsewhere as an established fact without intervening proof.",
		significance: "Treating untested allegations as findings risks contaminating later assessments and decisions.",
		action:       "Trace the allegation to its origin and verify whether any finding was actually made.",
		caseLaw:      "Re H-N [2021] EWCA Civ 448",
	},
	model.ContradictionTemporal: {
		explanation:  "Two accounts of the same event carry different time references.",
		significance: "Divergent timelines can undermine an account's reliability or reveal conflated events.",
		action:       "Reconstruct the timeline from contemporaneous records and resolve which date is supported.",
		caseLaw:      "",
	},
	model.ContradictionValue: {
		explanation:  "Two claims report materially different quantities for the same matter.",
		significance: "Numeric divergence beyond rounding suggests at least one record is inaccurate.",
		action:       "Check the primary records behind each figure.",
		caseLaw:      "",
	},
	model.ContradictionAttribution: {
		explanation:  "The same act or statement is credited to different people in different claims.",
		significance: "Misattribution can shift responsibility and distort the factual matrix.",
		action:       "Establish from primary sources who actually performed the act or made the statement.",
		caseLaw:      "",
	},
	model.ContradictionQuotation: {
		explanation:  "The same speaker is quoted with materially altered wording.",
		significance: "Altered quotations can change the meaning attributed to a witness or party.",
		action:       "Compare both renderings against the original record or transcript.",
		caseLaw:      "",
	},
	model.ContradictionOmission: {
		explanation:  "A materially related document omits a fact that another document states.",
		significance: "Selective omission may indicate incomplete disclosure or one-sided reporting.",
		action:       "Ask the omitting author whether the fact was known and why it was not addressed.",
		caseLaw:      "",
	},
}
