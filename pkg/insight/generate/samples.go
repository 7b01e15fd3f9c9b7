package generate

type sampleText struct {
	Content    string
	Confidence float64
}

type sampleSet struct {
	Patterns       []sampleText
	ProgressTrends []sampleText
	RiskIndicators []sampleText
	TreatmentGaps  []sampleText
}

var englishSamples = sampleSet{
	Patterns: []sampleText{
		{Content: "Recurring sleep disturbance reported across sessions, typically worsening during periods of elevated stress", Confidence: 0.88},
		{Content: "Avoidance of social situations appears consistently in the subjective reports", Confidence: 0.81},
		{Content: "Somatic complaints such as headaches and muscle tension accompany spikes in anxiety", Confidence: 0.73},
	},
	ProgressTrends: []sampleText{
		{Content: "Gradual improvement in anxiety management, with increasing independent use of learned coping strategies", Confidence: 0.85},
		{Content: "Engagement in treatment has strengthened and homework completion is more consistent over time", Confidence: 0.78},
	},
	RiskIndicators: []sampleText{
		{Content: "Passive suicidal ideation was noted early in treatment; no plan or intent has been reported since", Confidence: 0.91},
		{Content: "Ongoing sleep deprivation may amplify mood instability and should be monitored", Confidence: 0.72},
	},
	TreatmentGaps: []sampleText{
		{Content: "Family dynamics surface repeatedly but have not been addressed directly in session", Confidence: 0.8},
		{Content: "No structured relapse-prevention plan has been documented yet", Confidence: 0.76},
	},
}

var hebrewSamples = sampleSet{
	Patterns: []sampleText{
		{Content: "הפרעות שינה חוזרות מדווחות לאורך הפגישות, לרוב מחמירות בתקופות של לחץ מוגבר", Confidence: 0.88},
		{Content: "הימנעות ממצבים חברתיים עולה באופן עקבי בדיווח הסובייקטיבי", Confidence: 0.81},
		{Content: "תלונות גופניות כגון כאבי ראש ומתח שרירים מלוות עליות ברמת החרדה", Confidence: 0.73},
	},
	ProgressTrends: []sampleText{
		{Content: "שיפור הדרגתי בוויסות החרדה, עם שימוש עצמאי גובר בכלים שנלמדו בטיפול", Confidence: 0.85},
		{Content: "המעורבות בטיפול מתחזקת וההתמדה במשימות הבית משתפרת לאורך זמן", Confidence: 0.78},
	},
	RiskIndicators: []sampleText{
		{Content: "מחשבות אובדניות פסיביות צוינו בתחילת הטיפול; לא דווחו תוכנית או כוונה מאז", Confidence: 0.91},
		{Content: "חסך שינה מתמשך עלול להחריף חוסר יציבות במצב הרוח ומחייב מעקב", Confidence: 0.72},
	},
	TreatmentGaps: []sampleText{
		{Content: "דינמיקה משפחתית עולה שוב ושוב אך טרם טופלה באופן ישיר בפגישות", Confidence: 0.8},
		{Content: "טרם תועדה תוכנית מובנית למניעת הישנות", Confidence: 0.76},
	},
}
