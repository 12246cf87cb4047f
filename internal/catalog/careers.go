package catalog

import "career-compass/internal/domain"

// careerTable es el catalogo de referencia: 44 carreras en 6 dominios.
// Los vectores requeridos son dispersos; las dimensiones ausentes cuentan
// como 0 en la similitud. SalaryRange, CoreSkills y GrowthPaths alimentan
// las plantillas estaticas de insight.
var careerTable = []domain.CareerProfile{
	// --- Tech ---
	{
		ID: "software-engineer", Name: "Software Engineer", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.9, domain.TraitTechLearning: 0.9, domain.TraitOrganization: 0.5},
		SalaryRange:    "$70,000 - $150,000",
		CoreSkills:     []string{"Data structures and algorithms", "Version control and code review", "Testing and debugging"},
		GrowthPaths:    []string{"Senior engineer and tech lead", "Engineering management"},
	},
	{
		ID: "ai-engineer", Name: "AI Engineer", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 1.0, domain.TraitTechLearning: 1.0},
		SalaryRange:    "$100,000 - $200,000",
		CoreSkills:     []string{"Machine learning frameworks", "Model evaluation and tuning", "Python and data pipelines"},
		GrowthPaths:    []string{"ML platform architect", "Research engineering lead"},
	},
	{
		ID: "devops-engineer", Name: "DevOps Engineer", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitTechLearning: 0.9, domain.TraitOrganization: 0.8, domain.TraitHandsOn: 0.6},
		SalaryRange:    "$80,000 - $160,000",
		CoreSkills:     []string{"CI/CD pipelines", "Infrastructure as code", "Monitoring and incident response"},
		GrowthPaths:    []string{"Platform engineering lead", "Site reliability architect"},
	},
	{
		ID: "mobile-developer", Name: "Mobile Developer", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitTechLearning: 0.8, domain.TraitAnalytical: 0.7, domain.TraitCreative: 0.5},
		SalaryRange:    "$70,000 - $140,000",
		CoreSkills:     []string{"iOS or Android SDKs", "UI performance tuning", "App store release management"},
		GrowthPaths:    []string{"Senior mobile engineer", "Cross-platform architecture"},
	},
	{
		ID: "security-analyst", Name: "Security Analyst", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.9, domain.TraitOrganization: 0.7, domain.TraitRiskTaking: 0.4},
		SalaryRange:    "$75,000 - $145,000",
		CoreSkills:     []string{"Threat modeling", "Network and endpoint monitoring", "Incident forensics"},
		GrowthPaths:    []string{"Security engineering", "CISO track"},
	},
	{
		ID: "cloud-architect", Name: "Cloud Architect", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitTechLearning: 0.9, domain.TraitLeadership: 0.6},
		SalaryRange:    "$120,000 - $200,000",
		CoreSkills:     []string{"Cloud service design", "Cost and capacity planning", "Distributed systems patterns"},
		GrowthPaths:    []string{"Principal architect", "Head of infrastructure"},
	},
	{
		ID: "qa-engineer", Name: "QA Engineer", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitOrganization: 0.9, domain.TraitAnalytical: 0.7, domain.TraitHandsOn: 0.4},
		SalaryRange:    "$55,000 - $110,000",
		CoreSkills:     []string{"Test automation", "Regression planning", "Defect triage and reporting"},
		GrowthPaths:    []string{"QA lead", "Software engineer in test"},
	},
	{
		ID: "embedded-engineer", Name: "Embedded Systems Engineer", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitHandsOn: 0.9, domain.TraitAnalytical: 0.8, domain.TraitTechLearning: 0.7},
		SalaryRange:    "$80,000 - $150,000",
		CoreSkills:     []string{"C/C++ for constrained targets", "Hardware-software debugging", "Real-time operating systems"},
		GrowthPaths:    []string{"Firmware architect", "Robotics engineering"},
	},

	// --- Data ---
	{
		ID: "data-scientist", Name: "Data Scientist", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 1.0, domain.TraitTechLearning: 0.8},
		SalaryRange:    "$90,000 - $170,000",
		CoreSkills:     []string{"Statistical modeling", "Experiment design", "Data storytelling"},
		GrowthPaths:    []string{"Staff data scientist", "Head of data science"},
	},
	{
		ID: "data-engineer", Name: "Data Engineer", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitTechLearning: 0.9, domain.TraitOrganization: 0.6},
		SalaryRange:    "$85,000 - $160,000",
		CoreSkills:     []string{"Pipeline orchestration", "Data warehousing", "SQL at scale"},
		GrowthPaths:    []string{"Data platform lead", "Analytics architecture"},
	},
	{
		ID: "data-analyst", Name: "Data Analyst", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.9, domain.TraitOrganization: 0.6, domain.TraitEmpathy: 0.3},
		SalaryRange:    "$55,000 - $100,000",
		CoreSkills:     []string{"SQL and spreadsheets", "Dashboard design", "Business metric definition"},
		GrowthPaths:    []string{"Senior analyst", "Analytics engineering"},
	},
	{
		ID: "bi-developer", Name: "Business Intelligence Developer", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitOrganization: 0.7, domain.TraitCreative: 0.3},
		SalaryRange:    "$65,000 - $120,000",
		CoreSkills:     []string{"Reporting platforms", "Dimensional modeling", "Stakeholder requirements"},
		GrowthPaths:    []string{"BI lead", "Data product management"},
	},
	{
		ID: "ml-ops-engineer", Name: "MLOps Engineer", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitTechLearning: 0.9, domain.TraitOrganization: 0.8, domain.TraitAnalytical: 0.6},
		SalaryRange:    "$95,000 - $175,000",
		CoreSkills:     []string{"Model deployment pipelines", "Feature stores", "Monitoring model drift"},
		GrowthPaths:    []string{"ML platform lead", "Head of ML infrastructure"},
	},
	{
		ID: "quant-analyst", Name: "Quantitative Analyst", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 1.0, domain.TraitRiskTaking: 0.6},
		SalaryRange:    "$110,000 - $220,000",
		CoreSkills:     []string{"Stochastic modeling", "Backtesting", "Numerical programming"},
		GrowthPaths:    []string{"Senior quant", "Portfolio strategy"},
	},
	{
		ID: "research-analyst", Name: "Market Research Analyst", Domain: domain.DomainData,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitEmpathy: 0.5, domain.TraitOrganization: 0.5},
		SalaryRange:    "$50,000 - $95,000",
		CoreSkills:     []string{"Survey design", "Segmentation analysis", "Insight reporting"},
		GrowthPaths:    []string{"Research manager", "Consumer insights lead"},
	},

	// --- Design ---
	{
		ID: "graphics-designer", Name: "Graphics Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 1.0},
		SalaryRange:    "$45,000 - $90,000",
		CoreSkills:     []string{"Typography and layout", "Brand systems", "Design tooling"},
		GrowthPaths:    []string{"Art director", "Brand design lead"},
	},
	{
		ID: "ux-designer", Name: "UX Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.8, domain.TraitEmpathy: 0.9, domain.TraitAnalytical: 0.5},
		SalaryRange:    "$65,000 - $130,000",
		CoreSkills:     []string{"User research", "Wireframing and prototyping", "Usability testing"},
		GrowthPaths:    []string{"Principal UX designer", "Head of design"},
	},
	{
		ID: "ui-designer", Name: "UI Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.9, domain.TraitOrganization: 0.5, domain.TraitTechLearning: 0.4},
		SalaryRange:    "$55,000 - $110,000",
		CoreSkills:     []string{"Visual design systems", "Interaction patterns", "Design handoff"},
		GrowthPaths:    []string{"Senior product designer", "Design systems lead"},
	},
	{
		ID: "motion-designer", Name: "Motion Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.9, domain.TraitHandsOn: 0.5, domain.TraitTechLearning: 0.4},
		SalaryRange:    "$50,000 - $105,000",
		CoreSkills:     []string{"Animation principles", "Compositing tools", "Storyboarding"},
		GrowthPaths:    []string{"Creative director", "3D/VFX specialization"},
	},
	{
		ID: "industrial-designer", Name: "Industrial Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.8, domain.TraitHandsOn: 0.8, domain.TraitAnalytical: 0.4},
		SalaryRange:    "$55,000 - $115,000",
		CoreSkills:     []string{"CAD modeling", "Materials and manufacturing constraints", "Prototyping"},
		GrowthPaths:    []string{"Senior product designer", "Design engineering lead"},
	},
	{
		ID: "game-designer", Name: "Game Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.9, domain.TraitAnalytical: 0.6, domain.TraitRiskTaking: 0.5},
		SalaryRange:    "$55,000 - $120,000",
		CoreSkills:     []string{"Systems and level design", "Playtesting", "Game engine scripting"},
		GrowthPaths:    []string{"Lead designer", "Creative director"},
	},
	{
		ID: "interior-designer", Name: "Interior Designer", Domain: domain.DomainDesign,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.8, domain.TraitEmpathy: 0.6, domain.TraitOrganization: 0.5},
		SalaryRange:    "$45,000 - $95,000",
		CoreSkills:     []string{"Space planning", "Material selection", "Client presentations"},
		GrowthPaths:    []string{"Studio lead", "Independent practice"},
	},

	// --- Manufacturing ---
	{
		ID: "mechanical-engineer", Name: "Mechanical Engineer", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitHandsOn: 0.8, domain.TraitOrganization: 0.5},
		SalaryRange:    "$65,000 - $125,000",
		CoreSkills:     []string{"Mechanical design and CAD", "Tolerance analysis", "Failure testing"},
		GrowthPaths:    []string{"Senior design engineer", "Engineering management"},
	},
	{
		ID: "process-engineer", Name: "Process Engineer", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitOrganization: 0.8, domain.TraitHandsOn: 0.6},
		SalaryRange:    "$65,000 - $120,000",
		CoreSkills:     []string{"Process mapping", "Lean manufacturing", "Root cause analysis"},
		GrowthPaths:    []string{"Plant engineering lead", "Operations excellence"},
	},
	{
		ID: "production-manager", Name: "Production Manager", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitLeadership: 0.9, domain.TraitOrganization: 0.8, domain.TraitExtroversion: 0.5},
		SalaryRange:    "$70,000 - $130,000",
		CoreSkills:     []string{"Production scheduling", "Team supervision", "Safety compliance"},
		GrowthPaths:    []string{"Plant manager", "Director of operations"},
	},
	{
		ID: "quality-inspector", Name: "Quality Control Inspector", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitOrganization: 0.9, domain.TraitHandsOn: 0.6, domain.TraitAnalytical: 0.5},
		SalaryRange:    "$40,000 - $75,000",
		CoreSkills:     []string{"Inspection instruments", "Specification reading", "Non-conformance reporting"},
		GrowthPaths:    []string{"Quality supervisor", "Quality engineering"},
	},
	{
		ID: "supply-chain-analyst", Name: "Supply Chain Analyst", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitOrganization: 0.7, domain.TraitEmpathy: 0.3},
		SalaryRange:    "$55,000 - $105,000",
		CoreSkills:     []string{"Demand forecasting", "Inventory optimization", "Supplier scorecards"},
		GrowthPaths:    []string{"Supply chain manager", "Logistics strategy"},
	},
	{
		ID: "automation-technician", Name: "Automation Technician", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitHandsOn: 0.9, domain.TraitTechLearning: 0.7, domain.TraitOrganization: 0.5},
		SalaryRange:    "$50,000 - $95,000",
		CoreSkills:     []string{"PLC programming", "Robotic cell maintenance", "Electrical troubleshooting"},
		GrowthPaths:    []string{"Controls engineer", "Automation project lead"},
	},
	{
		ID: "maintenance-engineer", Name: "Maintenance Engineer", Domain: domain.DomainManufacturing,
		RequiredTraits: map[string]float64{domain.TraitHandsOn: 0.9, domain.TraitOrganization: 0.6, domain.TraitAnalytical: 0.5},
		SalaryRange:    "$55,000 - $100,000",
		CoreSkills:     []string{"Preventive maintenance planning", "Equipment diagnostics", "Spare parts management"},
		GrowthPaths:    []string{"Reliability engineer", "Maintenance manager"},
	},

	// --- Marketing ---
	{
		ID: "digital-marketer", Name: "Digital Marketing Specialist", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.7, domain.TraitAnalytical: 0.6, domain.TraitExtroversion: 0.5},
		SalaryRange:    "$45,000 - $90,000",
		CoreSkills:     []string{"Campaign management", "SEO/SEM", "Performance analytics"},
		GrowthPaths:    []string{"Marketing manager", "Growth lead"},
	},
	{
		ID: "content-strategist", Name: "Content Strategist", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.8, domain.TraitOrganization: 0.6, domain.TraitEmpathy: 0.6},
		SalaryRange:    "$50,000 - $100,000",
		CoreSkills:     []string{"Editorial planning", "Audience research", "Copywriting"},
		GrowthPaths:    []string{"Head of content", "Brand strategy"},
	},
	{
		ID: "brand-manager", Name: "Brand Manager", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitCreative: 0.7, domain.TraitLeadership: 0.7, domain.TraitExtroversion: 0.6},
		SalaryRange:    "$65,000 - $125,000",
		CoreSkills:     []string{"Positioning and messaging", "Campaign orchestration", "Market tracking"},
		GrowthPaths:    []string{"Senior brand manager", "Marketing director"},
	},
	{
		ID: "social-media-manager", Name: "Social Media Manager", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitExtroversion: 0.8, domain.TraitCreative: 0.7, domain.TraitRiskTaking: 0.4},
		SalaryRange:    "$40,000 - $85,000",
		CoreSkills:     []string{"Community management", "Content calendars", "Platform analytics"},
		GrowthPaths:    []string{"Head of social", "Digital marketing management"},
	},
	{
		ID: "seo-specialist", Name: "SEO Specialist", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitTechLearning: 0.6, domain.TraitOrganization: 0.5},
		SalaryRange:    "$45,000 - $95,000",
		CoreSkills:     []string{"Keyword research", "Technical site audits", "Link strategy"},
		GrowthPaths:    []string{"SEO lead", "Organic growth management"},
	},
	{
		ID: "pr-specialist", Name: "Public Relations Specialist", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitExtroversion: 0.8, domain.TraitEmpathy: 0.7, domain.TraitCreative: 0.5},
		SalaryRange:    "$45,000 - $95,000",
		CoreSkills:     []string{"Media relations", "Press writing", "Crisis communication"},
		GrowthPaths:    []string{"Communications manager", "PR agency leadership"},
	},
	{
		ID: "product-marketer", Name: "Product Marketing Manager", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.6, domain.TraitCreative: 0.6, domain.TraitLeadership: 0.6, domain.TraitExtroversion: 0.5},
		SalaryRange:    "$70,000 - $140,000",
		CoreSkills:     []string{"Go-to-market planning", "Competitive analysis", "Sales enablement"},
		GrowthPaths:    []string{"Director of product marketing", "VP marketing"},
	},
	{
		ID: "email-marketer", Name: "Email Marketing Specialist", Domain: domain.DomainMarketing,
		RequiredTraits: map[string]float64{domain.TraitOrganization: 0.7, domain.TraitCreative: 0.6, domain.TraitAnalytical: 0.5},
		SalaryRange:    "$40,000 - $80,000",
		CoreSkills:     []string{"Lifecycle campaigns", "A/B testing", "Deliverability management"},
		GrowthPaths:    []string{"CRM manager", "Lifecycle marketing lead"},
	},

	// --- Sales ---
	{
		ID: "account-executive", Name: "Account Executive", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitExtroversion: 0.9, domain.TraitEmpathy: 0.6, domain.TraitRiskTaking: 0.5},
		SalaryRange:    "$50,000 - $140,000",
		CoreSkills:     []string{"Pipeline management", "Discovery and qualification", "Negotiation"},
		GrowthPaths:    []string{"Senior AE and enterprise sales", "Sales management"},
	},
	{
		ID: "sales-engineer", Name: "Sales Engineer", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitTechLearning: 0.7, domain.TraitExtroversion: 0.7, domain.TraitAnalytical: 0.6},
		SalaryRange:    "$80,000 - $160,000",
		CoreSkills:     []string{"Technical demos", "Solution architecture", "Proof-of-concept delivery"},
		GrowthPaths:    []string{"Principal solutions engineer", "Presales leadership"},
	},
	{
		ID: "customer-success-manager", Name: "Customer Success Manager", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitEmpathy: 0.9, domain.TraitExtroversion: 0.7, domain.TraitOrganization: 0.5},
		SalaryRange:    "$55,000 - $110,000",
		CoreSkills:     []string{"Onboarding and adoption", "Renewal management", "Escalation handling"},
		GrowthPaths:    []string{"CS team lead", "Head of customer success"},
	},
	{
		ID: "sales-development-rep", Name: "Sales Development Representative", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitExtroversion: 0.9, domain.TraitRiskTaking: 0.6, domain.TraitOrganization: 0.4},
		SalaryRange:    "$40,000 - $80,000",
		CoreSkills:     []string{"Cold outreach", "Lead qualification", "CRM hygiene"},
		GrowthPaths:    []string{"Account executive", "SDR team lead"},
	},
	{
		ID: "key-account-manager", Name: "Key Account Manager", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitEmpathy: 0.8, domain.TraitLeadership: 0.6, domain.TraitExtroversion: 0.7},
		SalaryRange:    "$65,000 - $130,000",
		CoreSkills:     []string{"Strategic account planning", "Executive relationships", "Contract negotiation"},
		GrowthPaths:    []string{"Director of accounts", "Regional sales leadership"},
	},
	{
		ID: "sales-operations-analyst", Name: "Sales Operations Analyst", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitOrganization: 0.8},
		SalaryRange:    "$55,000 - $105,000",
		CoreSkills:     []string{"Forecast modeling", "Territory design", "CRM reporting"},
		GrowthPaths:    []string{"RevOps manager", "Sales strategy"},
	},
	{
		ID: "retail-manager", Name: "Retail Store Manager", Domain: domain.DomainSales,
		RequiredTraits: map[string]float64{domain.TraitLeadership: 0.8, domain.TraitExtroversion: 0.7, domain.TraitOrganization: 0.6},
		SalaryRange:    "$40,000 - $85,000",
		CoreSkills:     []string{"Staff scheduling and coaching", "Merchandising", "P&L ownership"},
		GrowthPaths:    []string{"District manager", "Retail operations"},
	},
}
