package content

// Canned content pools for the template provider. Opening scenarios are
// tiered by difficulty; turn narratives and option sets are banded by
// crisis phase. Narrative templates take (name, age, gender, role) and
// turn templates take (turn, choice) in that order.

type openingScenario struct {
	narrative string
	options   [5]string
}

var openingScenarios = [5][]openingScenario{
	// Difficulty 1: entry level, local and departmental issues.
	{
		{
			narrative: "You're %s, a %d-year-old %s working as %s at TechStart Inc., a small startup. A minor data glitch has exposed 500 customer email addresses to a marketing partner. Your manager asks you to draft an apology email while the CEO handles the technical fix. The local news is asking questions, and a few customers have called complaining. You need to craft appropriate communication.",
			options: [5]string{
				"A) Draft a simple apology email acknowledging the minor issue",
				"B) Wait for technical team to provide more details first",
				"C) Consult with legal team about appropriate language",
				"D) Prepare FAQ document for customer service team",
				"E) Research best practices for similar situations online",
			},
		},
		{
			narrative: "Welcome %s! As a %d-year-old %s serving as %s at LocalManu Corp, you're dealing with a workplace safety incident. A worker slipped and was injured due to a wet floor that wasn't properly marked. The injury is minor, but HR wants you to help coordinate communication with the worker's family and document lessons learned for future prevention.",
			options: [5]string{
				"A) Contact the injured worker's family with a personal call",
				"B) Focus on documenting the incident for internal records",
				"C) Work with facilities to improve safety signage immediately",
				"D) Coordinate with HR on worker support and communication",
				"E) Research workplace safety communication best practices",
			},
		},
	},
	// Difficulty 2: intermediate, regional and multi-department impact.
	{
		{
			narrative: "You're %s, a %d-year-old %s working as %s at MidSize Solutions. A cybersecurity breach has compromised 15,000 customer accounts across three states. Local media outlets are covering the story, state regulators have opened an investigation, and your customer service lines are overwhelmed. The CEO expects you to coordinate the communication response while IT works on containment.",
			options: [5]string{
				"A) Issue immediate public statement acknowledging breach scope and response actions",
				"B) Coordinate with state regulators first to ensure compliance with disclosure requirements",
				"C) Focus on customer notification and support before public communications",
				"D) Engage cybersecurity experts to provide technical credibility to communications",
				"E) Develop comprehensive multi-channel communication strategy for different stakeholder groups",
			},
		},
		{
			narrative: "Welcome %s! As a %d-year-old %s in the role of %s at Regional Foods Corp, you're facing a serious challenge. E. coli contamination has been traced to your company's lettuce supply, affecting customers in 5 states with 8 hospitalizations. The CDC is investigating, grocery chains are pulling products, and national news crews are gathering outside your facilities. You must coordinate a complex multi-stakeholder response.",
			options: [5]string{
				"A) Implement immediate voluntary recall across all affected regions",
				"B) Coordinate closely with CDC and health authorities on investigation timeline",
				"C) Focus communication efforts on supporting affected families first",
				"D) Engage with retail partners to coordinate messaging and supply chain response",
				"E) Establish crisis communication center to manage multiple stakeholder communications",
			},
		},
	},
	// Difficulty 3: advanced, national and industry-wide implications.
	{
		{
			narrative: "You're %s, a %d-year-old %s serving as %s at NationTech Corp, a major technology firm. A sophisticated nation-state cyber attack has breached your cloud infrastructure, potentially accessing sensitive data from millions of users including government contractors. The FBI has launched an investigation, Congress is demanding hearings, international partners are questioning security protocols, and your stock has dropped 25%%. This crisis has national security implications.",
			options: [5]string{
				"A) Coordinate with federal authorities while maintaining transparency with affected stakeholders",
				"B) Implement comprehensive security overhaul and communicate progress publicly",
				"C) Focus on supporting affected government and enterprise clients with priority response",
				"D) Engage with international partners and industry leaders on coordinated security response",
				"E) Develop strategic communications addressing national security concerns and business continuity",
			},
		},
		{
			narrative: "Welcome %s! As a %d-year-old %s working as %s at GlobalManufacturing Inc., you're managing a catastrophic situation. An explosion at your primary chemical plant has killed 3 workers and released toxic clouds affecting nearby communities. EPA is conducting emergency response, international environmental groups are mobilizing, class-action lawsuits are being filed, and regulatory agencies in multiple countries are suspending operations. This crisis threatens the company's global operations.",
			options: [5]string{
				"A) Coordinate comprehensive response addressing worker families, community safety, and environmental impact",
				"B) Establish international crisis response center with regulatory agencies and environmental experts",
				"C) Focus on immediate community evacuation and health support before addressing business implications",
				"D) Engage with global environmental organizations and regulatory bodies on remediation strategy",
				"E) Develop integrated crisis response addressing legal, environmental, operational, and reputational challenges",
			},
		},
	},
	// Difficulty 4: expert, global and transformational impact.
	{
		{
			narrative: "As %s, a %d-year-old %s in your executive role as %s at GlobalSocial Corp, you're confronting an unprecedented crisis. Your platform's AI algorithm has been systematically promoting extremist content leading to real-world violence in 12 countries. Whistleblower documents reveal internal knowledge dating back years. The UN is calling for investigation, governments are threatening regulation, advertisers representing $5 billion have suspended campaigns, and employee walkouts are spreading globally. This crisis threatens the future of social media governance.",
			options: [5]string{
				"A) Implement immediate AI algorithm shutdown and engage with international regulatory bodies",
				"B) Establish global transparency initiative with external oversight and regular public accountability",
				"C) Focus on supporting affected communities worldwide and funding violence prevention programs",
				"D) Lead industry transformation by creating new ethical AI standards and governance frameworks",
				"E) Develop comprehensive global response addressing regulatory, ethical, operational, and societal implications",
			},
		},
		{
			narrative: "You're %s, a %d-year-old %s serving as %s at PharmaGlobal Inc. A critical medication manufactured at your facilities has been linked to serious side effects affecting patients worldwide. Internal documents suggest possible cover-up of early warning signs. Health agencies in 30+ countries are launching investigations, medical professionals are questioning prescription practices, patient advocacy groups are organizing international litigation, and your research integrity is under global scrutiny. This crisis could reshape pharmaceutical industry standards.",
			options: [5]string{
				"A) Establish global patient safety response with full transparency and independent medical review",
				"B) Coordinate with international health agencies on comprehensive safety assessment and regulatory compliance",
				"C) Focus on supporting affected patients worldwide with medical care and compensation programs",
				"D) Lead industry transformation in safety standards and transparent reporting protocols",
				"E) Develop integrated global response addressing medical, regulatory, legal, and ethical dimensions",
			},
		},
	},
	// Difficulty 5: master, civilization-scale impact.
	{
		{
			narrative: "You're %s, a %d-year-old %s serving as %s at QuantumCorp, the world's leading quantum computing company. A critical security flaw in your quantum encryption technology has been discovered, potentially compromising global financial systems, military communications, and state secrets. The vulnerability affects every major government and corporation using your technology. Markets are crashing, international diplomatic relations are strained, cyber warfare capabilities are questioned, and the fundamental trust in digital security is collapsing. This crisis could reshape global information security paradigms.",
			options: [5]string{
				"A) Coordinate with world governments and international bodies on global security infrastructure protection",
				"B) Lead international consortium to develop next-generation security standards and implementation protocols",
				"C) Focus on immediate protection of critical infrastructure while developing long-term solutions",
				"D) Pioneer new paradigm in quantum security with open-source collaboration and transparency",
				"E) Orchestrate civilization-level response addressing national security, economic stability, and technological trust",
			},
		},
		{
			narrative: "Welcome %s! As a %d-year-old %s in your role as %s at BioGenesis Corp, you're facing humanity's greatest crisis. Your genetically modified organisms, released globally to address climate change, have begun mutating unpredictably. Environmental systems worldwide are destabilizing, food chains are collapsing, and some mutations pose existential threats to ecosystems. The UN Security Council is in emergency session, scientific communities are calling for unprecedented global intervention, and humanity's survival may depend on your crisis response. This is a civilization-defining moment.",
			options: [5]string{
				"A) Coordinate global scientific response with immediate environmental containment and reversal strategies",
				"B) Establish international crisis response with world governments, UN, and scientific institutions",
				"C) Focus on immediate ecosystem protection and food security while developing long-term solutions",
				"D) Lead unprecedented global collaboration on environmental restoration and species protection",
				"E) Orchestrate humanity's response to existential threat requiring complete paradigm shift in environmental stewardship",
			},
		},
	},
}

// turnNarratives[phase][variation] takes (turn, choice).
var turnNarratives = [3][3]string{
	// Early phase (turns 2-4): immediate crisis response.
	{
		"Turn %d: Your decision to %s has triggered immediate reactions across all stakeholder groups. Social media sentiment is shifting rapidly as news outlets pick up the story. Your legal team reports that regulatory agencies are requesting detailed documentation while your HR department is fielding calls from concerned employees. The CEO has scheduled an emergency board meeting for tomorrow morning.",
		"Turn %d: The crisis escalates as your choice to %s becomes public knowledge. Competitor companies are distancing themselves while industry analysts debate the long-term implications. Your customer service department reports a 300%% increase in calls, and the IT security team has discovered additional vulnerabilities. Key investors are demanding an immediate strategy meeting.",
		"Turn %d: Following your decision to %s, the crisis has attracted international attention. Multiple government agencies are launching investigations while consumer advocacy groups organize boycotts. Your supply chain partners are reconsidering contracts, and your stock price has fluctuated by 15%%. Emergency protocols are now in effect across all departments.",
	},
	// Mid phase (turns 5-7): stakeholder management.
	{
		"Turn %d: Your strategic choice to %s has begun showing measurable results. Key stakeholders are responding differently - some with increased confidence, others with lingering skepticism. Media coverage is evolving from breaking news to analysis pieces. Your communications team has tracked sentiment across 50+ platforms, revealing complex public opinion patterns that require sophisticated management.",
		"Turn %d: The implementation of your %s strategy has reached a critical juncture. Internal teams are reporting mixed feedback from focus groups while external analysts publish conflicting assessments. Your crisis response has become a case study in real-time, with business schools requesting interviews. The next decision will likely determine the long-term trajectory of recovery.",
		"Turn %d: Your approach to %s has established new industry precedents. Competitors are adopting similar strategies while regulatory bodies use your response as a benchmark for future guidelines. Employee morale surveys show improvement, but customer trust metrics remain volatile. The crisis has evolved into a complex ecosystem requiring nuanced navigation.",
	},
	// Late phase (turns 8-10): resolution and consequences.
	{
		"Turn %d: As you implement %s, the crisis enters its final phase. Long-term implications are becoming clear as quarterly reports reflect the full impact. Your leadership during this crisis has been noted by industry publications, and headhunters are making unsolicited contact. The board of directors is preparing their final assessment of the crisis management effectiveness.",
		"Turn %d: Your decision to %s represents the culminating moment of the crisis response. Stakeholder confidence is stabilizing at new levels while your personal reputation has been fundamentally shaped by this experience. The crisis has transformed from an emergency into a defining chapter of your career and the company's history.",
		"Turn %d: The final implementation of %s concludes this crisis management scenario. All stakeholders have reached their positions on the company's handling of the situation. Your leadership style has been tested under extreme pressure, and the outcomes will influence industry best practices for years to come. This experience has become a defining moment in your professional development.",
	},
}

// turnOptions[phase] is the fixed option set for that phase band.
var turnOptions = [3][5]string{
	{
		"A) Launch comprehensive stakeholder communication campaign across all channels",
		"B) Implement immediate operational changes to address root causes",
		"C) Engage external crisis management consultants for strategic guidance",
		"D) Focus on damage control while preparing long-term recovery strategy",
		"E) Coordinate with industry leaders to establish unified response protocols",
	},
	{
		"A) Develop transparent progress reporting system for all stakeholders",
		"B) Initiate innovative solutions that could transform the industry standard",
		"C) Build strategic partnerships to strengthen recovery efforts",
		"D) Implement advanced monitoring systems to prevent future crises",
		"E) Create comprehensive training programs based on lessons learned",
	},
	{
		"A) Establish permanent organizational changes based on crisis learnings",
		"B) Develop thought leadership content to share insights with industry",
		"C) Create crisis preparedness framework for other organizations",
		"D) Focus on reputation rebuilding through strategic community engagement",
		"E) Document comprehensive case study for future crisis management reference",
	},
}

// Fallback assessment pools, indexed by tier-1.
var fallbackOutcomes = [4]string{
	"Crisis managed with significant learning opportunities",
	"Crisis handled with adequate results",
	"Crisis successfully managed with positive outcomes",
	"Crisis excellently resolved with industry recognition",
}

var fallbackCareers = [4]string{
	"Role maintained with additional crisis management training",
	"Position secured with enhanced responsibilities",
	"Promoted to Senior %s",
	"Promoted to executive leadership position",
}

// assessmentTheories rotates by tier when the generator cannot name one.
var assessmentTheories = []string{
	"Situational Crisis Communication Theory (SCCT): Your responses show pattern recognition and context-appropriate communication strategies.",
	"Stakeholder Theory: Your approach prioritized balanced stakeholder engagement and relationship management throughout the crisis.",
	"Image Restoration Theory: Your communication strategy focused on reputation protection and organizational image repair techniques.",
	"Excellence Theory: Your crisis response emphasized two-way symmetric communication and relationship building with key stakeholders.",
	"Contingency Theory: Your approach adapted communication strategies based on situational factors and stakeholder dynamics.",
	"Systems Theory: Your crisis management recognized the interconnected nature of organizational relationships and external factors.",
	"Discourse of Renewal: Your communication style aimed to transform the crisis into opportunities for organizational growth and learning.",
	"Crisis & Emergency Risk Communication (CERC): Your approach balanced transparency with risk management in public communication.",
	"Organizational Learning Theory: Your responses demonstrated capacity for adapting strategies based on crisis feedback and outcomes.",
	"Attribution Theory: Your communication addressed responsibility assignment while managing stakeholder perceptions of causation.",
	"Resilience Theory: Your approach focused on organizational adaptability and recovery rather than just crisis containment.",
	"Issues Management Theory: Your strategy showed proactive identification and management of emerging crisis-related issues.",
}

// scenarioTypes feed the final-narrative template.
var scenarioTypes = []string{"technology", "manufacturing", "healthcare", "social media", "food safety"}
