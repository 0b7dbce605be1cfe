package catalog

// countries is the built-in dataset, maintained by hand against published fee
// and immigration figures. All monetary values are in lakhs. Order matters:
// it is the stable tie-break baseline for ranking.
var countries = []Country{
	{
		Name:      "Germany",
		Flag:      "🇩🇪",
		Archetype: ArchetypeSafeBet,
		Tagline:   "Zero Tuition, High Security",
		Costs: Costs{
			Tuition:   0,
			Living:    12,
			VisaFees:  0.4,
			Insurance: 1.1,
		},
		TotalCost:       13.5,
		MinGPA:          7.0,
		AvgSalary:       65,
		BreakEvenMonths: 3,
		VisaRisk:        VisaRiskLow,
		PRTimeline:      "Fast (21 Months)",
		PRRiskColor:     RiskColorGreen,
		PRSuccessRate:   90,
		TimelineSteps:   []string{"Masters (2y)", "Job Search (18m)", "PR (Guaranteed)"},
		PRBranches: []PRBranch{
			{Path: "EU Blue Card", Timeline: "21 months", Success: "90%", Color: RiskColorGreen},
			{Path: "Chancenkarte Job Seeker", Timeline: "12 months", Success: "70%", Color: RiskColorYellow},
		},
		PolicyAlerts: []PolicyAlert{
			{Type: AlertPositive, Text: "Chancenkarte points system lowers the bar for job-seeker visas"},
			{Type: AlertNeutral, Text: "Public universities remain tuition-free for international Masters students"},
		},
		ActionDeadlines: map[string][]Deadline{
			"Fall 2026": {
				{Task: "Shortlist universities and check uni-assist requirements", Date: "Oct 2025"},
				{Task: "APS certificate application", Date: "Dec 2025"},
				{Task: "Applications close for most programs", Date: "Mar 2026"},
				{Task: "Blocked account and visa appointment", Date: "Jun 2026"},
			},
			"Spring 2027": {
				{Task: "Shortlist universities", Date: "Mar 2026"},
				{Task: "Applications close", Date: "Aug 2026"},
				{Task: "Visa appointment", Date: "Nov 2026"},
			},
		},
		InsiderInsight: "APS verification is the slowest step for Indian applicants; start it before shortlisting closes.",
		ROIVerdict:     "Highest Safety",
		TrendAlert:     "New 'Chancenkarte' (Opportunity Card) makes job seeking easier.",
		TechShortage:   true,
	},
	{
		Name:      "Australia",
		Flag:      "🇦🇺",
		Archetype: ArchetypeSafeBet,
		Tagline:   "Points-Based PR System",
		Costs: Costs{
			Tuition:   25,
			Living:    18,
			VisaFees:  0.6,
			Insurance: 1.9,
		},
		TotalCost:       45.5,
		MinGPA:          6.5,
		AvgSalary:       70,
		BreakEvenMonths: 8,
		VisaRisk:        VisaRiskMedium,
		PRTimeline:      "Medium (2-3 Years)",
		PRRiskColor:     RiskColorYellow,
		PRSuccessRate:   72,
		TimelineSteps:   []string{"Masters (2y)", "Job Search (1y)", "Points Test"},
		PRBranches: []PRBranch{
			{Path: "189 Skilled Independent", Timeline: "2-3 years", Success: "65%", Color: RiskColorYellow},
			{Path: "190 State Nominated", Timeline: "2 years", Success: "78%", Color: RiskColorGreen},
		},
		PolicyAlerts: []PolicyAlert{
			{Type: AlertNegative, Text: "Genuine Student test raises refusal risk for borderline applications"},
			{Type: AlertNeutral, Text: "Post-study work rights unchanged at 2-4 years depending on degree"},
		},
		ActionDeadlines: map[string][]Deadline{
			"Fall 2026": {
				{Task: "Book English test (target 7.0+ bands)", Date: "Nov 2025"},
				{Task: "University applications close", Date: "Feb 2026"},
				{Task: "GTE/Genuine Student statement drafts", Date: "Apr 2026"},
			},
		},
		InsiderInsight: "State-nominated 190 routes clear faster than 189 for tech occupations; pick state-aligned unis.",
		ROIVerdict:     "Balanced Option",
		TrendAlert:     "Stricter English tests and Genuine Student tests introduced in 2024.",
		TechShortage:   true,
	},
	{
		Name:      "Ireland",
		Flag:      "🇮🇪",
		Archetype: ArchetypeFastTrack,
		Tagline:   "Tech Hub, 1-Year Masters",
		Costs: Costs{
			Tuition:   18,
			Living:    15,
			VisaFees:  0.5,
			Insurance: 1.0,
		},
		TotalCost:       34.5,
		MinGPA:          7.0,
		AvgSalary:       65,
		BreakEvenMonths: 7,
		VisaRisk:        VisaRiskLow,
		PRTimeline:      "Fast (2 Years)",
		PRRiskColor:     RiskColorGreen,
		PRSuccessRate:   85,
		TimelineSteps:   []string{"Masters (1y)", "Job Search (1y)", "PR (Stamp 4)"},
		PRBranches: []PRBranch{
			{Path: "Critical Skills Permit", Timeline: "21 months", Success: "85%", Color: RiskColorGreen},
			{Path: "Stamp 4 after permit", Timeline: "2 years", Success: "82%", Color: RiskColorGreen},
		},
		PolicyAlerts: []PolicyAlert{
			{Type: AlertPositive, Text: "Critical Skills list keeps software and data roles fast-tracked"},
		},
		ActionDeadlines: map[string][]Deadline{
			"Fall 2026": {
				{Task: "Applications open, apply early for scholarships", Date: "Nov 2025"},
				{Task: "Rolling admissions close", Date: "May 2026"},
				{Task: "Visa and proof-of-funds file", Date: "Jul 2026"},
			},
		},
		InsiderInsight: "One-year Masters compresses the budget to a single year of living costs; factor Dublin rent early.",
		ROIVerdict:     "Speed Leader",
		TrendAlert:     "Growing tech sector with Google, Meta, Amazon presence.",
		TechShortage:   true,
	},
	{
		Name:      "UK",
		Flag:      "🇬🇧",
		Archetype: ArchetypeFastTrack,
		Tagline:   "1-Year Masters, Established Universities",
		Costs: Costs{
			Tuition:   30,
			Living:    18,
			VisaFees:  0.5,
			Insurance: 1.5,
		},
		TotalCost:       50,
		MinGPA:          6.5,
		AvgSalary:       60,
		BreakEvenMonths: 10,
		VisaRisk:        VisaRiskMedium,
		PRTimeline:      "Long (5 Years)",
		PRRiskColor:     RiskColorYellow,
		PRSuccessRate:   60,
		TimelineSteps:   []string{"Masters (1y)", "Work Visa (5y)", "ILR"},
		PRBranches: []PRBranch{
			{Path: "Skilled Worker to ILR", Timeline: "5 years", Success: "60%", Color: RiskColorYellow},
			{Path: "Global Talent", Timeline: "3 years", Success: "35%", Color: RiskColorRed},
		},
		PolicyAlerts: []PolicyAlert{
			{Type: AlertNegative, Text: "Dependant visas withdrawn for taught Masters students"},
			{Type: AlertNeutral, Text: "Graduate Route retained at 2 years after review"},
		},
		ActionDeadlines: map[string][]Deadline{
			"Fall 2026": {
				{Task: "UCAS/direct applications open", Date: "Oct 2025"},
				{Task: "Popular programs close", Date: "Jan 2026"},
				{Task: "CAS issued, visa application", Date: "Jul 2026"},
			},
			"Spring 2027": {
				{Task: "January-intake applications close", Date: "Oct 2026"},
				{Task: "CAS and visa window", Date: "Nov 2026"},
			},
		},
		InsiderInsight: "The 5-year ILR clock only starts on the Skilled Worker visa, not on the Graduate Route.",
		ROIVerdict:     "Brand Value",
		TrendAlert:     "Restrictions on bringing dependents (family) enforced.",
		TechShortage:   false,
	},
	{
		Name:      "USA",
		Flag:      "🇺🇸",
		Archetype: ArchetypeMoonshot,
		Tagline:   "Highest Salaries, H1B Lottery",
		Costs: Costs{
			Tuition:   40,
			Living:    20,
			VisaFees:  1.0,
			Insurance: 2.0,
		},
		TotalCost:       63,
		MinGPA:          7.5,
		AvgSalary:       110,
		BreakEvenMonths: 7,
		VisaRisk:        VisaRiskHigh,
		PRTimeline:      "Very Long (7+ Years)",
		PRRiskColor:     RiskColorRed,
		PRSuccessRate:   35,
		TimelineSteps:   []string{"Masters (2y)", "OPT (3y)", "H1B (Lottery)"},
		PRBranches: []PRBranch{
			{Path: "H-1B Lottery", Timeline: "1-3 attempts", Success: "35%", Color: RiskColorRed},
			{Path: "O-1 Extraordinary Ability", Timeline: "varies", Success: "10%", Color: RiskColorRed},
		},
		PolicyAlerts: []PolicyAlert{
			{Type: AlertNegative, Text: "H-1B registration fee and wage-level weighting under discussion"},
			{Type: AlertNeutral, Text: "STEM OPT extension keeps 3 years of work authorization"},
		},
		ActionDeadlines: map[string][]Deadline{
			"Fall 2026": {
				{Task: "GRE/TOEFL scores finalized", Date: "Nov 2025"},
				{Task: "Most university deadlines", Date: "Dec 2025"},
				{Task: "I-20 and F-1 visa interview", Date: "Jun 2026"},
			},
		},
		InsiderInsight: "Three H-1B lottery attempts fit inside STEM OPT; non-STEM majors get a single shot.",
		ROIVerdict:     "High Risk, High Reward",
		TrendAlert:     "H-1B Lottery remains highly competitive.",
		TechShortage:   true,
	},
}
