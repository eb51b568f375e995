package diagnostic

import "strings"

// TriggerRule pairs an ordered set of question-text substrings with the
// template emitted when any of them matches. Rules are evaluated in order;
// the first match wins.
type TriggerRule struct {
	Keywords []string `yaml:"keywords"`
	Text     string   `yaml:"text"`
}

// Card is a titled insight shown on the pre-email partial report.
type Card struct {
	Keywords    []string `yaml:"keywords"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
}

// KeyInsight is a static long-form insight used in the composed document.
type KeyInsight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// TopicRules is the per-topic slice of the library.
type TopicRules struct {
	InsightRules    []TriggerRule `yaml:"insightRules"`
	InsightFallback string        `yaml:"insightFallback"`
	Cards           []Card        `yaml:"cards"`
	KeyInsights     []KeyInsight  `yaml:"keyInsights"`
	Recommendations []string      `yaml:"recommendations"`
	Metrics         []string      `yaml:"metrics"`
}

// Library holds every rule table the synthesizer and composer consume.
// Challenge action rules are shared across topics; everything else is
// keyed by topic with a generic fallback.
type Library struct {
	Topics         map[Topic]TopicRules `yaml:"topics"`
	ActionRules    []TriggerRule        `yaml:"actionRules"`
	ActionFallback string               `yaml:"actionFallback"`
}

// TopicRules returns the rules for a tool, falling back to the generic set.
func (l *Library) TopicRules(toolName string) TopicRules {
	if rules, ok := l.Topics[TopicFor(toolName)]; ok {
		return rules
	}
	return l.Topics[TopicGeneric]
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func (r TriggerRule) matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// DefaultLibrary returns the built-in rule tables. The trigger-to-template
// mappings are load-bearing product copy; tests pin them.
func DefaultLibrary() *Library {
	return &Library{
		ActionRules: []TriggerRule{
			{Keywords: []string{"centralized", "one place"}, Text: "Pick one tool and start keeping all your info in one place."},
			{Keywords: []string{"communicate", "talk"}, Text: "Set up regular team meetings to share updates."},
			{Keywords: []string{"reports", "mistakes"}, Text: "Start using simple checklists for important tasks."},
			{Keywords: []string{"ads", "emails"}, Text: "Start tracking which marketing efforts bring in customers."},
			{Keywords: []string{"target", "customers"}, Text: "Write down who your best customers are and what they like."},
			{Keywords: []string{"feedback", "reviews"}, Text: "Ask customers for their honest opinion regularly."},
			{Keywords: []string{"profit", "money"}, Text: "Start tracking your income and expenses more closely."},
			{Keywords: []string{"cost", "expense"}, Text: "Calculate your costs and set clear pricing."},
			{Keywords: []string{"goal", "sales"}, Text: "Set clear monthly goals for your business."},
		},
		ActionFallback: "Take one small step this week to improve this area.",
		Topics: map[Topic]TopicRules{
			TopicDataHygiene: {
				InsightRules: []TriggerRule{
					{Keywords: []string{"customer", "info"}, Text: "You have good systems for managing customer information and business data."},
					{Keywords: []string{"track", "system"}, Text: "Your business has organized tracking systems in place."},
				},
				InsightFallback: "You have some good data management practices that you can build upon.",
				Cards: []Card{
					{Keywords: []string{"centralized", "one place"}, Title: "CRM System Missing", Description: "Leading to fragmented data access and inefficient customer management."},
					{Keywords: []string{"communicate", "talk to each other"}, Title: "System Integration Gap", Description: "Your business tools need better integration to streamline operations."},
					{Keywords: []string{"reports", "mistakes"}, Title: "Data Quality Issues", Description: "Manual processes are creating errors in your business reports."},
				},
				KeyInsights: []KeyInsight{
					{Title: "Data Fragmentation Risk", Description: "Multiple disconnected systems are creating data silos, leading to inefficiencies and decision-making delays."},
					{Title: "Manual Process Overhead", Description: "Excessive manual data entry is consuming valuable time and introducing errors into business processes."},
					{Title: "Integration Opportunities", Description: "Your business tools lack proper integration, missing opportunities for automation and efficiency gains."},
				},
				Recommendations: []string{
					"Implement a centralized Customer Relationship Management (CRM) system",
					"Establish automated data synchronization between key business systems",
					"Create standardized data entry procedures and training protocols",
					"Set up automated reporting dashboards for real-time business metrics",
					"Implement data backup and security protocols",
					"Schedule monthly data audits to maintain accuracy",
				},
				Metrics: []string{
					"Data accuracy rate (target: 95%+)",
					"Time spent on manual data entry (reduce by 50%)",
					"Report generation time (reduce by 60%)",
					"System integration completion rate",
				},
			},
			TopicMarketing: {
				InsightRules: []TriggerRule{
					{Keywords: []string{"customer", "feedback"}, Text: "You understand your customers and gather feedback effectively."},
					{Keywords: []string{"ads", "marketing"}, Text: "You have good marketing practices and customer engagement strategies."},
				},
				InsightFallback: "You have some effective marketing approaches that are working well.",
				Cards: []Card{
					{Keywords: []string{"ads", "emails"}, Title: "Marketing Attribution Missing", Description: "You can't track which marketing efforts drive actual results."},
					{Keywords: []string{"target", "customers"}, Title: "Audience Targeting Needs Work", Description: "Better customer segmentation could improve your marketing ROI."},
					{Keywords: []string{"feedback", "reviews"}, Title: "Customer Feedback Gap", Description: "Missing systematic feedback collection from your customers."},
				},
				KeyInsights: []KeyInsight{
					{Title: "Attribution Gap", Description: "You're missing critical insights about which marketing channels and campaigns drive actual business results."},
					{Title: "Audience Targeting Inefficiency", Description: "Broad targeting is diluting your marketing impact and reducing return on advertising spend."},
					{Title: "Customer Feedback Loop Missing", Description: "Limited customer feedback collection is preventing optimization of offerings and customer experience."},
				},
				Recommendations: []string{
					"Implement marketing attribution tracking using Google Analytics 4",
					"Develop detailed buyer personas based on your best customers",
					"Set up automated customer feedback collection systems",
					"Create consistent brand messaging across all marketing channels",
					"Establish A/B testing protocols for campaigns and website elements",
					"Implement marketing automation to nurture leads",
				},
				Metrics: []string{
					"Marketing ROI improvement (target: 25% increase)",
					"Lead conversion rate optimization",
					"Customer acquisition cost reduction",
					"Campaign attribution accuracy (target: 90%+)",
				},
			},
			TopicCashFlow: {
				InsightRules: []TriggerRule{
					{Keywords: []string{"profit", "money"}, Text: "You have a good understanding of your business finances and profitability."},
					{Keywords: []string{"track", "system"}, Text: "You have systems in place to track your business finances."},
				},
				InsightFallback: "You have some good financial practices that provide a solid foundation.",
				Cards: []Card{
					{Keywords: []string{"forecast", "3 months"}, Title: "Cash Flow Forecasting Missing", Description: "You're making financial decisions without visibility into future cash needs."},
					{Keywords: []string{"overdue", "follow up"}, Title: "Payment Collection Process Needed", Description: "Automated follow-up could significantly improve cash flow timing."},
					{Keywords: []string{"buffer", "emergencies"}, Title: "Emergency Fund Missing", Description: "Your business lacks financial reserves for unexpected situations."},
				},
				KeyInsights: []KeyInsight{
					{Title: "Cash Flow Visibility Gap", Description: "Lack of forward-looking cash flow forecasting is creating uncertainty in business planning and decision-making."},
					{Title: "Collections Process Weakness", Description: "Inefficient payment collection processes are extending cash conversion cycles and impacting working capital."},
					{Title: "Financial Resilience Risk", Description: "Insufficient emergency reserves leave your business vulnerable to unexpected disruptions or opportunities."},
				},
				Recommendations: []string{
					"Create rolling 13-week cash flow forecasts updated weekly",
					"Implement automated invoicing and payment reminder systems",
					"Establish business emergency fund equal to 3-6 months operating expenses",
					"Set up weekly financial dashboards with key metrics",
					"Negotiate better payment terms with suppliers and customers",
					"Consider invoice factoring or business lines of credit for flexibility",
				},
				Metrics: []string{
					"Cash flow forecast accuracy (target: 95%+)",
					"Days sales outstanding reduction",
					"Emergency fund target achievement",
					"Payment collection efficiency improvement",
				},
			},
			TopicGeneric: {
				InsightFallback: "You have several areas where your business is performing well.",
				KeyInsights: []KeyInsight{
					{Title: "Process Visibility Gap", Description: "Key business processes lack the structure needed for consistent, repeatable results."},
					{Title: "Measurement Opportunity", Description: "Without clear metrics, it is difficult to know which improvements actually move the business forward."},
					{Title: "Automation Potential", Description: "Manual work in recurring tasks is taking time away from higher-value activities."},
				},
				Recommendations: []string{
					"Implement systematic processes to address identified operational gaps",
					"Establish regular review cycles to monitor progress",
					"Consider automation tools to reduce manual work",
					"Set up clear metrics and KPIs to track improvement",
					"Schedule quarterly business health assessments",
				},
				Metrics: []string{
					"Overall operational efficiency improvement",
					"Process automation implementation rate",
					"Team productivity metrics",
					"Customer satisfaction scores",
				},
			},
		},
	}
}
