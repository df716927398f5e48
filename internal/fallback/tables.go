package fallback

import "github.com/jonathan/personality-quiz/internal/types"

// traitRecord is the pre-authored personality record for one category
type traitRecord struct {
	Type        string
	Description string
	Strengths   []string
	Careers     []types.CareerRecommendation
}

// traitRecords is the single canonical trait-indexed table. Earlier revisions
// carried two near-identical copies of this data in separate services; keeping
// one table removes the drift.
var traitRecords = map[types.Category]traitRecord{
	types.CategoryAnalytical: {
		Type:        "The Logical Innovator",
		Description: "You have a brilliant analytical mind that excels at solving complex problems systematically. Your ability to see patterns and think strategically makes you a natural problem-solver who can turn chaos into clarity.",
		Strengths: []string{
			"Exceptional analytical and logical reasoning",
			"Strategic problem-solving abilities",
			"Detail-oriented with high accuracy",
			"Data-driven decision making",
			"Pattern recognition and systems thinking",
		},
		Careers: []types.CareerRecommendation{
			{Title: "Machine Learning Engineer", Description: "Build AI systems that learn and improve", WhyGoodFit: "Your analytical skills help you design algorithms that solve real-world problems"},
			{Title: "Product Analyst", Description: "Use data to guide product decisions", WhyGoodFit: "Your logical thinking translates user behavior into actionable insights"},
			{Title: "Cybersecurity Specialist", Description: "Protect systems from threats", WhyGoodFit: "Your problem-solving mindset helps you think like both defender and attacker"},
			{Title: "Quantitative Researcher", Description: "Develop mathematical models for finance or science", WhyGoodFit: "Your analytical rigor helps you create predictive models"},
			{Title: "Data Engineer", Description: "Build infrastructure for data-driven companies", WhyGoodFit: "Your systematic thinking creates efficient, scalable data pipelines"},
		},
	},
	types.CategoryCreative: {
		Type:        "The Creative Catalyst",
		Description: "You possess a vibrant imagination that transforms ordinary into extraordinary. Your creative vision and innovative thinking allow you to see possibilities others miss, making you a natural innovator in any field you pursue.",
		Strengths: []string{
			"Innovative and original thinking",
			"Strong visual and aesthetic sensibility",
			"Creative problem-solving approach",
			"Storytelling and narrative abilities",
			"Ability to inspire and engage others",
		},
		Careers: []types.CareerRecommendation{
			{Title: "Creative Technologist", Description: "Blend code and creativity to build experiences", WhyGoodFit: "Your imagination paired with technical skills creates magical digital experiences"},
			{Title: "Brand Strategist", Description: "Shape how companies tell their stories", WhyGoodFit: "Your creative vision helps brands connect emotionally with audiences"},
			{Title: "Experience Designer", Description: "Design immersive physical or digital experiences", WhyGoodFit: "Your imagination creates memorable moments for users"},
			{Title: "Creative Director", Description: "Lead creative vision for projects and teams", WhyGoodFit: "Your innovative thinking inspires teams to push boundaries"},
			{Title: "Innovation Consultant", Description: "Help companies think differently", WhyGoodFit: "Your creative approaches unlock new possibilities for organizations"},
		},
	},
	types.CategorySocial: {
		Type:        "The Empathetic Leader",
		Description: "You have an extraordinary ability to understand and connect with people on a deep level. Your emotional intelligence and genuine care for others make you someone people naturally trust and turn to for guidance.",
		Strengths: []string{
			"Exceptional emotional intelligence",
			"Natural relationship building",
			"Effective communication across contexts",
			"Conflict resolution and mediation",
			"Ability to inspire and motivate others",
		},
		Careers: []types.CareerRecommendation{
			{Title: "Organizational Psychologist", Description: "Improve workplace culture and performance", WhyGoodFit: "Your people skills help organizations unlock human potential"},
			{Title: "Talent Partner", Description: "Build teams and develop people", WhyGoodFit: "Your empathy helps you match people to roles where they thrive"},
			{Title: "Product Researcher", Description: "Understand user needs through qualitative research", WhyGoodFit: "Your connection with people uncovers insights others miss"},
			{Title: "Change Management Consultant", Description: "Guide organizations through transformation", WhyGoodFit: "Your people skills help teams navigate uncertainty"},
			{Title: "Executive Coach", Description: "Develop leadership capabilities in others", WhyGoodFit: "Your empathy and insight help leaders grow"},
		},
	},
	types.CategoryActive: {
		Type:        "The Dynamic Builder",
		Description: "You are energized by action and thrive when turning ideas into reality. Your bias toward execution and comfort with ambiguity make you someone who ships, iterates, and improves while others are still planning.",
		Strengths: []string{
			"Bias toward action and execution",
			"Comfort with ambiguity and change",
			"Quick learning through experimentation",
			"High energy and enthusiasm",
			"Resilience and adaptability",
		},
		Careers: []types.CareerRecommendation{
			{Title: "Founder/Entrepreneur", Description: "Build companies from zero to one", WhyGoodFit: "Your action-orientation helps you ship products and iterate based on feedback"},
			{Title: "Growth Product Manager", Description: "Drive rapid product experimentation", WhyGoodFit: "Your energy and execution speed help you test ideas quickly"},
			{Title: "Venture Builder", Description: "Launch new ventures within organizations", WhyGoodFit: "Your hands-on approach brings concepts to market fast"},
			{Title: "Startup Operations Lead", Description: "Build systems in fast-growing companies", WhyGoodFit: "Your adaptability helps you tackle diverse challenges"},
			{Title: "Performance Marketing Manager", Description: "Drive growth through rapid testing", WhyGoodFit: "Your action bias enables quick experimentation cycles"},
		},
	},
	types.CategoryLeader: {
		Type:        "The Visionary Architect",
		Description: "You have a natural ability to see the big picture while managing complex details. Your strategic thinking combined with your ability to inspire others makes you someone who can envision ambitious futures and rally people to build them.",
		Strengths: []string{
			"Strategic vision and planning",
			"Ability to align teams around goals",
			"Confident decision-making",
			"Systems-level thinking",
			"Inspiring and motivating others",
		},
		Careers: []types.CareerRecommendation{
			{Title: "Head of Strategy", Description: "Define and execute company direction", WhyGoodFit: "Your strategic thinking helps organizations win in their markets"},
			{Title: "Platform Product Lead", Description: "Build products that enable ecosystems", WhyGoodFit: "Your vision helps you see how pieces connect into powerful platforms"},
			{Title: "Chief of Staff", Description: "Partner with executives on key initiatives", WhyGoodFit: "Your strategic mind and organizational skills drive impact"},
			{Title: "Investment Partner", Description: "Evaluate and support portfolio companies", WhyGoodFit: "Your ability to see potential helps you pick winners"},
			{Title: "General Manager", Description: "Run a business unit or product line", WhyGoodFit: "Your leadership and strategic skills drive business results"},
		},
	},
}

// bookTables holds the trait-indexed book recommendations
var bookTables = map[types.Category][]types.BookRecommendation{
	types.CategoryAnalytical: {
		{Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman", Reason: "Understand the dual systems that drive how we think and make decisions"},
		{Title: "Range", Author: "David Epstein", Reason: "Learn why generalists triumph in a specialized world"},
		{Title: "The Mom Test", Author: "Rob Fitzpatrick", Reason: "Master asking the right questions to validate ideas"},
		{Title: "Algorithms to Live By", Author: "Brian Christian", Reason: "Apply computer science to everyday decisions"},
		{Title: "Superforecasting", Author: "Philip Tetlock", Reason: "Improve your ability to predict future events"},
	},
	types.CategoryCreative: {
		{Title: "The Creative Act", Author: "Rick Rubin", Reason: "Timeless wisdom on creativity from a legendary producer"},
		{Title: "Show Your Work", Author: "Austin Kleon", Reason: "Build an audience by sharing your creative process"},
		{Title: "The Practice", Author: "Seth Godin", Reason: "Make creativity a daily habit, not a lightning strike"},
		{Title: "Bird by Bird", Author: "Anne Lamott", Reason: "Practical guidance on the creative writing process"},
		{Title: "Creative Confidence", Author: "Tom & David Kelley", Reason: "Unlock your creative potential in any field"},
	},
	types.CategorySocial: {
		{Title: "Never Split the Difference", Author: "Chris Voss", Reason: "Master negotiation through tactical empathy"},
		{Title: "The Culture Map", Author: "Erin Meyer", Reason: "Navigate cultural differences in global teams"},
		{Title: "Radical Candor", Author: "Kim Scott", Reason: "Give feedback that helps people grow"},
		{Title: "Thanks for the Feedback", Author: "Douglas Stone", Reason: "Learn to receive feedback effectively"},
		{Title: "Dare to Lead", Author: "Brené Brown", Reason: "Lead with vulnerability and courage"},
	},
	types.CategoryActive: {
		{Title: "The Lean Startup", Author: "Eric Ries", Reason: "Build products through rapid experimentation"},
		{Title: "Sprint", Author: "Jake Knapp", Reason: "Solve big problems in just five days"},
		{Title: "Traction", Author: "Gabriel Weinberg", Reason: "Get real customers through systematic testing"},
		{Title: "The Mom Test", Author: "Rob Fitzpatrick", Reason: "Validate ideas through customer conversations"},
		{Title: "Amp It Up", Author: "Frank Slootman", Reason: "Drive execution and results at high speed"},
	},
	types.CategoryLeader: {
		{Title: "Good Strategy Bad Strategy", Author: "Richard Rumelt", Reason: "Master strategic thinking and planning"},
		{Title: "High Output Management", Author: "Andy Grove", Reason: "Practical frameworks for effective management"},
		{Title: "The Hard Thing About Hard Things", Author: "Ben Horowitz", Reason: "Real talk about building and leading companies"},
		{Title: "Amp It Up", Author: "Frank Slootman", Reason: "Drive execution at the highest levels"},
		{Title: "Measure What Matters", Author: "John Doerr", Reason: "Set and achieve ambitious goals with OKRs"},
	},
}

// courseTables holds the trait-indexed course recommendations
var courseTables = map[types.Category][]types.CourseRecommendation{
	types.CategoryAnalytical: {
		{Title: "CS50", Platform: "Harvard (edX)", Description: "Learn computational thinking through programming", Level: "Beginner"},
		{Title: "Machine Learning", Platform: "Andrew Ng (Coursera)", Description: "Build intelligent systems", Level: "Intermediate"},
		{Title: "SQL for Data Science", Platform: "UC Davis (Coursera)", Description: "Query and analyze data", Level: "Beginner"},
		{Title: "Deep Learning Specialization", Platform: "deeplearning.ai", Description: "Master neural networks and AI", Level: "Advanced"},
		{Title: "Data Structures & Algorithms", Platform: "Princeton (Coursera)", Description: "Master fundamental CS concepts", Level: "Intermediate"},
	},
	types.CategoryCreative: {
		{Title: "Design Thinking", Platform: "IDEO U", Description: "Solve problems through human-centered design", Level: "Beginner"},
		{Title: "Creative Coding", Platform: "Processing Foundation", Description: "Create art and experiences with code", Level: "Beginner"},
		{Title: "Storytelling & Influence", Platform: "MasterClass", Description: "Craft narratives that move people", Level: "Intermediate"},
		{Title: "Brand Strategy", Platform: "Futur Academy", Description: "Build brands that resonate", Level: "Intermediate"},
		{Title: "Service Design", Platform: "Interaction Design Foundation", Description: "Design end-to-end experiences", Level: "Advanced"},
	},
	types.CategorySocial: {
		{Title: "Organizational Leadership", Platform: "Northwestern (Coursera)", Description: "Lead teams effectively", Level: "Intermediate"},
		{Title: "The Science of Well-Being", Platform: "Yale (Coursera)", Description: "Understand human flourishing", Level: "Beginner"},
		{Title: "Coaching Skills", Platform: "UC Davis (Coursera)", Description: "Develop people through coaching", Level: "Intermediate"},
		{Title: "User Research", Platform: "Interaction Design Foundation", Description: "Understand users deeply", Level: "Intermediate"},
		{Title: "Crucial Conversations", Platform: "VitalSmarts", Description: "Navigate difficult discussions", Level: "Beginner"},
	},
	types.CategoryActive: {
		{Title: "How to Build a Startup", Platform: "Steve Blank (Udacity)", Description: "Launch and validate new ventures", Level: "Intermediate"},
		{Title: "Product Management", Platform: "Product School", Description: "Ship products customers love", Level: "Beginner"},
		{Title: "Growth Hacking", Platform: "Reforge", Description: "Drive rapid, scalable growth", Level: "Advanced"},
		{Title: "Agile Development", Platform: "University of Virginia (Coursera)", Description: "Build iteratively with feedback", Level: "Beginner"},
		{Title: "Performance Marketing", Platform: "CXL Institute", Description: "Run profitable marketing campaigns", Level: "Intermediate"},
	},
	types.CategoryLeader: {
		{Title: "Strategic Leadership", Platform: "Harvard Business School Online", Description: "Lead organizations effectively", Level: "Advanced"},
		{Title: "Platform Strategy", Platform: "MIT (edX)", Description: "Build network-effect businesses", Level: "Advanced"},
		{Title: "Business Strategy", Platform: "Darden (Coursera)", Description: "Develop competitive advantage", Level: "Intermediate"},
		{Title: "Financial Management", Platform: "Wharton (Coursera)", Description: "Make data-driven financial decisions", Level: "Intermediate"},
		{Title: "Leading Teams", Platform: "University of Michigan (Coursera)", Description: "Build high-performing teams", Level: "Intermediate"},
	},
}
